package agent

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/sim"
)

// Mind is the state every strategy shares: read access to the environment,
// the remembered map, and the set of cells the agent has physically occupied.
// Strategies receive the mind instead of subclassing the agent, so the BFS,
// memory, and dead-end logic stay in one place.
type Mind struct {
	env       *sim.Environment
	memory    *Memory
	visited   mapset.Set
	totalFood int
}

func newMind(env *sim.Environment, totalFood int) *Mind {
	return &Mind{
		env:       env,
		memory:    NewMemory(),
		visited:   mapset.NewSet(),
		totalFood: totalFood,
	}
}

// Env returns the environment the agent acts in.
func (m *Mind) Env() *sim.Environment { return m.env }

// Memory returns the agent's remembered map.
func (m *Mind) Memory() *Memory { return m.memory }

// Visited returns the set of positions the agent has occupied.
func (m *Mind) Visited() mapset.Set { return m.visited }

// TotalFood returns the food count the agent must collect.
func (m *Mind) TotalFood() int { return m.totalFood }

// AllFoodCollected reports whether every food tile has been consumed.
func (m *Mind) AllFoodCollected() bool {
	return m.env.FoodCollected() == m.totalFood
}

// ExitKnown reports whether the exit has appeared in memory.
func (m *Mind) ExitKnown() bool {
	return m.memory.Known(m.env.Exit())
}

// perceive runs one perception cycle: capture the sensor window, merge every
// cell into memory, and mark the current position visited. The window's
// center holds the heading glyph, so the agent's own cell is corrected to the
// true underlying tile before it is remembered.
func (m *Mind) perceive() {
	window := m.env.Sense()
	center := m.env.Position()
	radius := m.env.SensorRadius()

	for i, row := range window {
		for j, glyph := range row {
			p := maze.Position{Row: center.Row + i - radius, Col: center.Col + j - radius}
			if i == radius && j == radius {
				m.memory.Observe(center, m.env.TileAt(center))
			} else {
				m.memory.Observe(p, maze.Tile(glyph))
			}
		}
	}
	m.visited.Add(center)
}

// PlanWithMemory runs the memory-based planner toward target.
func (m *Mind) PlanWithMemory(target maze.Position) []maze.Direction {
	return BreadthFirst(m.env.Position(), target, MemoryPass(m.memory))
}

// PlanOnGrid runs the omniscient planner toward target.
func (m *Mind) PlanOnGrid(target maze.Position) []maze.Direction {
	return BreadthFirst(m.env.Position(), target, GridPass(m.env))
}

// nearestPath plans toward every candidate and keeps the shortest path found.
// Candidates are tried in order, so earlier candidates win length ties.
func (m *Mind) nearestPath(candidates []maze.Position, pass PassFunc) []maze.Direction {
	var best []maze.Direction
	for _, candidate := range candidates {
		path := BreadthFirst(m.env.Position(), candidate, pass)
		if path == nil {
			continue
		}
		if best == nil || len(path) < len(best) {
			best = path
		}
	}
	return best
}

// MemoryPlan is the shared memory-only target selection: nearest remembered
// uncollected food, else nearest known-passable unvisited cell, else the exit
// once all food is collected and the exit is known. The passability rule is
// injected so dead-end-aware variants can filter routes without duplicating
// the selection.
func (m *Mind) MemoryPlan(pass PassFunc) []maze.Direction {
	if !m.AllFoodCollected() {
		if path := m.nearestPath(m.memory.FoodPositions(), pass); path != nil {
			return path
		}
	}

	var unvisited []maze.Position
	m.memory.Each(func(p maze.Position, t maze.Tile) {
		if t.Passable() && !m.visited.Contains(p) {
			unvisited = append(unvisited, p)
		}
	})
	if path := m.nearestPath(unvisited, pass); path != nil {
		return path
	}

	if m.AllFoodCollected() && m.ExitKnown() {
		return BreadthFirst(m.env.Position(), m.env.Exit(), pass)
	}
	return nil
}
