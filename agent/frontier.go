package agent

import (
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/abenik/maze-sim/maze"
)

// HeuristicFrontier ranks frontier cells (known passable, unvisited, not a
// dead end, bordering at least one unsensed cell) by how many unknown
// neighbors they expose, then by Manhattan distance to the agent. Remembered
// food is tried first, sorted by Manhattan distance.
type HeuristicFrontier struct {
	deadEnds mapset.Set
}

// NewHeuristicFrontier returns the frontier-ranking exploration strategy.
func NewHeuristicFrontier() *HeuristicFrontier {
	return &HeuristicFrontier{deadEnds: mapset.NewSet()}
}

func (*HeuristicFrontier) ID() string    { return "frontier_heuristic" }
func (*HeuristicFrontier) Label() string { return "Heuristic frontiers" }

func (s *HeuristicFrontier) NextPlan(m *Mind) []maze.Direction {
	markDeadEnds(m, s.deadEnds)

	env := m.Env()
	mem := m.Memory()
	pass := MemoryPassAvoiding(mem, s.deadEnds)
	start := env.Position()

	if !m.AllFoodCollected() {
		foods := mem.FoodPositions()
		sort.SliceStable(foods, func(i, j int) bool {
			return foods[i].ManhattanTo(start) < foods[j].ManhattanTo(start)
		})
		for _, food := range foods {
			if path := BreadthFirst(start, food, pass); path != nil {
				return path
			}
		}
	}

	var frontiers []maze.Position
	mem.Each(func(p maze.Position, t maze.Tile) {
		if !t.Passable() || m.Visited().Contains(p) || s.deadEnds.Contains(p) {
			return
		}
		if mem.UnknownNeighborCount(p) > 0 {
			frontiers = append(frontiers, p)
		}
	})

	if len(frontiers) == 0 {
		if m.AllFoodCollected() && m.ExitKnown() {
			return BreadthFirst(start, env.Exit(), pass)
		}
		return nil
	}

	sort.SliceStable(frontiers, func(i, j int) bool {
		ui := mem.UnknownNeighborCount(frontiers[i])
		uj := mem.UnknownNeighborCount(frontiers[j])
		if ui != uj {
			return ui > uj
		}
		return frontiers[i].ManhattanTo(start) < frontiers[j].ManhattanTo(start)
	})

	for _, frontier := range frontiers {
		if path := BreadthFirst(start, frontier, pass); path != nil {
			return path
		}
	}
	return nil
}
