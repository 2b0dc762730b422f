package maze

// Direction is one of the four cardinal headings, stored as its render glyph.
type Direction byte

const (
	North Direction = 'N'
	South Direction = 'S'
	East  Direction = 'E'
	West  Direction = 'W'
)

// Directions lists the cardinal headings in the fixed iteration order shared
// by every planner. Expanding neighbors in this order keeps breadth-first
// tie-breaking deterministic across runs.
var Directions = [4]Direction{North, South, East, West}

var vectors = map[Direction][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	_, ok := vectors[d]
	return ok
}

// Vector returns the (row, col) delta of one step along the heading.
func (d Direction) Vector() (dr, dc int) {
	v := vectors[d]
	return v[0], v[1]
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

func (d Direction) String() string {
	return string(byte(d))
}

// Position is a (row, col) cell coordinate. It is a value type: equality and
// map keys work by coordinate.
type Position struct {
	Row int
	Col int
}

// Neighbor returns the adjacent position one step along the given heading.
func (p Position) Neighbor(d Direction) Position {
	dr, dc := d.Vector()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// ManhattanTo returns the Manhattan distance between two positions.
func (p Position) ManhattanTo(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
