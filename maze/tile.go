package maze

// Tile is the semantic content of a single grid cell. Tiles are stored as
// their ASCII map glyph so grids, sensor windows, and renders share one
// representation.
type Tile byte

const (
	Wall  Tile = 'X'
	Open  Tile = '_'
	Food  Tile = 'o'
	Entry Tile = 'E'
	Exit  Tile = 'S'
)

// Passable reports whether an agent may occupy the tile.
func (t Tile) Passable() bool {
	switch t {
	case Open, Entry, Exit, Food:
		return true
	default:
		return false
	}
}

// Valid reports whether the glyph is a known map tile.
func (t Tile) Valid() bool {
	switch t {
	case Wall, Open, Food, Entry, Exit:
		return true
	default:
		return false
	}
}

func (t Tile) String() string {
	return string(byte(t))
}
