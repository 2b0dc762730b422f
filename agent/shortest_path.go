package agent

import "github.com/abenik/maze-sim/maze"

// ShortestPath plans over the true grid with full knowledge: nearest
// remaining food by grid search, then the exit. When no grid path exists it
// falls back to the memory-only exploration logic.
type ShortestPath struct{}

// NewShortestPath returns the omniscient shortest-path strategy.
func NewShortestPath() *ShortestPath { return &ShortestPath{} }

func (*ShortestPath) ID() string    { return "shortest_path" }
func (*ShortestPath) Label() string { return "Known shortest path" }

func (*ShortestPath) NextPlan(m *Mind) []maze.Direction {
	env := m.Env()

	if !m.AllFoodCollected() {
		var best []maze.Direction
		for _, food := range env.RemainingFood() {
			path := m.PlanOnGrid(food)
			if path == nil {
				continue
			}
			if best == nil || len(path) < len(best) {
				best = path
			}
		}
		if best != nil {
			return best
		}
	}

	if m.AllFoodCollected() {
		if path := m.PlanOnGrid(env.Exit()); path != nil {
			return path
		}
	}

	return m.MemoryPlan(MemoryPass(m.Memory()))
}
