package agent

import "github.com/abenik/maze-sim/maze"

// Exploration navigates using only the agent's growing memory: nearest
// remembered food, else nearest unvisited known cell, else the exit.
type Exploration struct{}

// NewExploration returns the memory-only exploration strategy.
func NewExploration() *Exploration { return &Exploration{} }

func (*Exploration) ID() string    { return "exploration" }
func (*Exploration) Label() string { return "Memory-guided exploration" }

func (*Exploration) NextPlan(m *Mind) []maze.Direction {
	return m.MemoryPlan(MemoryPass(m.Memory()))
}
