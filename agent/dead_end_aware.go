package agent

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/abenik/maze-sim/maze"
)

// DeadEndAware explores like Exploration but refuses to route through cells
// it has classified as dead ends, unless the dead end is itself the target.
type DeadEndAware struct {
	deadEnds mapset.Set
}

// NewDeadEndAware returns the dead-end-avoiding exploration strategy.
func NewDeadEndAware() *DeadEndAware {
	return &DeadEndAware{deadEnds: mapset.NewSet()}
}

func (*DeadEndAware) ID() string    { return "dead_end_aware" }
func (*DeadEndAware) Label() string { return "Dead-end avoidance" }

// DeadEnds exposes the accumulated dead-end set for diagnostics and tests.
func (s *DeadEndAware) DeadEnds() mapset.Set { return s.deadEnds }

func (s *DeadEndAware) NextPlan(m *Mind) []maze.Direction {
	markDeadEnds(m, s.deadEnds)
	return m.MemoryPlan(MemoryPassAvoiding(m.Memory(), s.deadEnds))
}
