// Package logging provides the zap-backed implementation of the Logger
// interface shared by every subsystem.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abenik/maze-sim/config"
)

// Logger is a named, leveled logger. One instance per subsystem (APP,
// RUNNER, API) keeps log lines attributable.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a logger whose lines carry the given subsystem prefix, wrapped
// in the given ANSI color (see the config color constants).
func New(prefix, color string) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if color != "" {
		prefix = color + prefix + config.ColorReset
	}
	return &Logger{s: base.Named(prefix).Sugar()}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) { l.s.Info(msg) }

// Warning logs a warning.
func (l *Logger) Warning(msg string) { l.s.Warn(msg) }

// Error logs an error.
func (l *Logger) Error(msg string) { l.s.Error(msg) }
