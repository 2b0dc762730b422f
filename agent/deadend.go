package agent

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/abenik/maze-sim/maze"
)

// markDeadEnds classifies visited cells with at most one known passable
// neighbor as dead ends. A cell is only eligible once all four of its
// neighbors have been sensed; food cells and the entry/exit are never marked.
// The set only grows, and re-running on unchanged memory adds nothing.
func markDeadEnds(m *Mind, deadEnds mapset.Set) {
	for item := range m.visited.Iter() {
		pos, ok := item.(maze.Position)
		if !ok || deadEnds.Contains(pos) {
			continue
		}
		if tile, known := m.memory.TileAt(pos); known && tile == maze.Food {
			continue
		}
		if pos == m.env.Entry() || pos == m.env.Exit() {
			continue
		}

		allKnown := true
		passable := 0
		for _, d := range maze.Directions {
			neighbor := pos.Neighbor(d)
			if !m.memory.Known(neighbor) {
				allKnown = false
				break
			}
			if m.memory.Passable(neighbor) {
				passable++
			}
		}
		if allKnown && passable <= 1 {
			deadEnds.Add(pos)
		}
	}
}
