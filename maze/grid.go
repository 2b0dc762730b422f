/*
Package maze models the rectangular tile grid a simulation runs on.

A grid is parsed from the plain-text map format (one line per row, `X` wall,
`_` open, `o` food, `E` entry, `S` exit) and is immutable in shape. The only
mutation it allows is consuming a food tile, which turns it into an open tile.
*/
package maze

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrEmptyGrid      = errors.New("maze grid must be a non-empty rectangle")
	ErrNotRectangular = errors.New("maze grid rows must all have the same length")
)

// Grid is an ordered 2-D array of tiles.
type Grid struct {
	tiles [][]Tile
	rows  int
	cols  int
}

// New validates the tile matrix and wraps it in a Grid. The matrix must be
// non-empty and rectangular; every glyph must be a known tile.
func New(tiles [][]Tile) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(tiles[0])
	for r, row := range tiles {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrNotRectangular, r, len(row), cols)
		}
		for c, tile := range row {
			if !tile.Valid() {
				return nil, fmt.Errorf("unknown tile %q at row %d col %d", byte(tile), r, c)
			}
		}
	}

	return &Grid{tiles: tiles, rows: len(tiles), cols: cols}, nil
}

// Parse builds a grid from map file lines, skipping trailing blank lines.
func Parse(lines []string) (*Grid, error) {
	tiles := make([][]Tile, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		row := make([]Tile, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = Tile(line[i])
		}
		tiles = append(tiles, row)
	}
	return New(tiles)
}

// FromFile reads an ASCII map from disk and parses it.
func FromFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	return Parse(strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"))
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Inside reports whether the position lies within the grid bounds.
func (g *Grid) Inside(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// TileAt returns the tile stored at the position. Out-of-bounds positions
// read as walls.
func (g *Grid) TileAt(p Position) Tile {
	if !g.Inside(p) {
		return Wall
	}
	return g.tiles[p.Row][p.Col]
}

// ConsumeFood converts a food tile to open, reporting whether food was there.
// This is the only mutation a grid supports.
func (g *Grid) ConsumeFood(p Position) bool {
	if !g.Inside(p) || g.tiles[p.Row][p.Col] != Food {
		return false
	}
	g.tiles[p.Row][p.Col] = Open
	return true
}

// Find returns the first position holding the tile in row-major order.
func (g *Grid) Find(t Tile) (Position, bool) {
	for r, row := range g.tiles {
		for c, tile := range row {
			if tile == t {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// FindAll returns every position holding the tile in row-major order.
func (g *Grid) FindAll(t Tile) []Position {
	var found []Position
	for r, row := range g.tiles {
		for c, tile := range row {
			if tile == t {
				found = append(found, Position{Row: r, Col: c})
			}
		}
	}
	return found
}

// Count returns how many cells hold the tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.rows)
	for r, row := range g.tiles {
		tiles[r] = make([]Tile, g.cols)
		copy(tiles[r], row)
	}
	return &Grid{tiles: tiles, rows: g.rows, cols: g.cols}
}

// String renders the grid in the map file format.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.tiles {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, tile := range row {
			b.WriteByte(byte(tile))
		}
	}
	return b.String()
}
