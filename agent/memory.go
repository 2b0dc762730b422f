package agent

import "github.com/abenik/maze-sim/maze"

// Memory is an agent's private, cumulative map of sensed tiles. Later
// observations overwrite earlier ones at the same position, but the order in
// which positions were first seen is preserved so candidate iteration stays
// deterministic.
type Memory struct {
	tiles map[maze.Position]maze.Tile
	order []maze.Position
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{tiles: make(map[maze.Position]maze.Tile)}
}

// Observe records the tile seen at a position, overwriting any earlier
// observation there.
func (m *Memory) Observe(p maze.Position, t maze.Tile) {
	if _, seen := m.tiles[p]; !seen {
		m.order = append(m.order, p)
	}
	m.tiles[p] = t
}

// MarkBlocked records a failed-move target. The marker is stored as a wall:
// the agent only ever asks memory about passability, so a cell it bounced off
// is indistinguishable from one it saw as a wall.
func (m *Memory) MarkBlocked(p maze.Position) {
	m.Observe(p, maze.Wall)
}

// TileAt returns the remembered tile at a position and whether the position
// has ever been observed.
func (m *Memory) TileAt(p maze.Position) (maze.Tile, bool) {
	t, ok := m.tiles[p]
	return t, ok
}

// Known reports whether the position has ever been observed.
func (m *Memory) Known(p maze.Position) bool {
	_, ok := m.tiles[p]
	return ok
}

// Passable reports whether the position is remembered as a tile an agent may
// occupy. Unseen positions are not passable.
func (m *Memory) Passable(p maze.Position) bool {
	t, ok := m.tiles[p]
	return ok && t.Passable()
}

// Len returns how many positions have been observed.
func (m *Memory) Len() int {
	return len(m.tiles)
}

// FoodPositions returns every position remembered as food, in first-seen
// order.
func (m *Memory) FoodPositions() []maze.Position {
	var foods []maze.Position
	for _, p := range m.order {
		if m.tiles[p] == maze.Food {
			foods = append(foods, p)
		}
	}
	return foods
}

// Each calls fn for every observed position in first-seen order.
func (m *Memory) Each(fn func(p maze.Position, t maze.Tile)) {
	for _, p := range m.order {
		fn(p, m.tiles[p])
	}
}

// UnknownNeighborCount counts the cardinal neighbors of a position that have
// never been sensed.
func (m *Memory) UnknownNeighborCount(p maze.Position) int {
	n := 0
	for _, d := range maze.Directions {
		if !m.Known(p.Neighbor(d)) {
			n++
		}
	}
	return n
}
