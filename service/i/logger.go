package i

// Logger is the leveled logging surface shared across subsystems.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
