package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid map", func(t *testing.T) {
		grid, err := Parse([]string{
			"XXXXX",
			"XE_oX",
			"X__SX",
			"XXXXX",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, grid.Rows())
		assert.Equal(t, 5, grid.Cols())
		assert.Equal(t, Food, grid.TileAt(Position{Row: 1, Col: 3}))
		assert.Equal(t, 1, grid.Count(Food))
	})

	t.Run("skips trailing blank lines", func(t *testing.T) {
		grid, err := Parse([]string{"ES", ""})
		require.NoError(t, err)
		assert.Equal(t, 1, grid.Rows())
	})

	t.Run("empty map", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := Parse([]string{"XXX", "XX"})
		assert.ErrorIs(t, err, ErrNotRectangular)
	})

	t.Run("unknown glyph", func(t *testing.T) {
		_, err := Parse([]string{"X?X"})
		assert.Error(t, err)
	})
}

func TestGrid(t *testing.T) {
	newGrid := func(t *testing.T) *Grid {
		grid, err := Parse([]string{
			"XXXX",
			"XEoX",
			"XSoX",
			"XXXX",
		})
		require.NoError(t, err)
		return grid
	}

	t.Run("out of bounds reads as wall", func(t *testing.T) {
		grid := newGrid(t)
		assert.Equal(t, Wall, grid.TileAt(Position{Row: -1, Col: 0}))
		assert.Equal(t, Wall, grid.TileAt(Position{Row: 0, Col: 99}))
		assert.False(t, grid.Inside(Position{Row: 4, Col: 0}))
	})

	t.Run("consume food opens the tile", func(t *testing.T) {
		grid := newGrid(t)
		p := Position{Row: 1, Col: 2}

		assert.True(t, grid.ConsumeFood(p))
		assert.Equal(t, Open, grid.TileAt(p))
		assert.False(t, grid.ConsumeFood(p))
		assert.Equal(t, 1, grid.Count(Food))
	})

	t.Run("consume food rejects non-food cells", func(t *testing.T) {
		grid := newGrid(t)
		assert.False(t, grid.ConsumeFood(Position{Row: 1, Col: 1}))
		assert.Equal(t, Entry, grid.TileAt(Position{Row: 1, Col: 1}))
	})

	t.Run("find and find all", func(t *testing.T) {
		grid := newGrid(t)
		entry, ok := grid.Find(Entry)
		assert.True(t, ok)
		assert.Equal(t, Position{Row: 1, Col: 1}, entry)

		foods := grid.FindAll(Food)
		assert.Equal(t, []Position{{Row: 1, Col: 2}, {Row: 2, Col: 2}}, foods)

		_, ok = grid.Find(Tile('?'))
		assert.False(t, ok)
	})

	t.Run("clone is independent", func(t *testing.T) {
		grid := newGrid(t)
		clone := grid.Clone()
		require.True(t, clone.ConsumeFood(Position{Row: 1, Col: 2}))

		assert.Equal(t, Food, grid.TileAt(Position{Row: 1, Col: 2}))
		assert.Equal(t, Open, clone.TileAt(Position{Row: 1, Col: 2}))
	})

	t.Run("string round-trips the map format", func(t *testing.T) {
		grid := newGrid(t)
		assert.Equal(t, "XXXX\nXEoX\nXSoX\nXXXX", grid.String())
	})
}

func TestDirection(t *testing.T) {
	t.Run("vectors", func(t *testing.T) {
		cases := map[Direction][2]int{
			North: {-1, 0},
			South: {1, 0},
			East:  {0, 1},
			West:  {0, -1},
		}
		for d, want := range cases {
			dr, dc := d.Vector()
			assert.Equal(t, want[0], dr)
			assert.Equal(t, want[1], dc)
		}
	})

	t.Run("opposites", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("validity", func(t *testing.T) {
		for _, d := range Directions {
			assert.True(t, d.Valid())
		}
		assert.False(t, Direction('Q').Valid())
	})
}

func TestPosition(t *testing.T) {
	p := Position{Row: 3, Col: 4}
	assert.Equal(t, Position{Row: 2, Col: 4}, p.Neighbor(North))
	assert.Equal(t, Position{Row: 3, Col: 5}, p.Neighbor(East))
	assert.Equal(t, 5, p.ManhattanTo(Position{Row: 1, Col: 1}))
	assert.Equal(t, 0, p.ManhattanTo(p))
}
