/*
Package agent implements the decision-making core of the simulator: the
perception memory, the breadth-first planners, the shared
perceive-plan-act loop, and the interchangeable navigation strategies.
*/
package agent

import (
	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/sim"
)

// Strategy produces a directional plan from the shared agent state. A nil
// plan means the strategy believes no further useful action exists.
type Strategy interface {
	// ID returns the stable identifier the registry and results use.
	ID() string

	// Label returns the human-readable strategy name.
	Label() string

	// NextPlan computes the next committed sequence of moves.
	NextPlan(m *Mind) []maze.Direction
}

// Agent runs the perceive-plan-act cycle shared by every strategy. It owns
// the memory, the visited set, and the committed plan.
type Agent struct {
	mind     *Mind
	strategy Strategy
	plan     []maze.Direction
}

// New builds an agent bound to one environment and one strategy.
func New(env *sim.Environment, totalFood int, strategy Strategy) *Agent {
	return &Agent{
		mind:     newMind(env, totalFood),
		strategy: strategy,
	}
}

// Mind exposes the shared state, mainly for tests and diagnostics.
func (a *Agent) Mind() *Mind { return a.mind }

// Strategy returns the active strategy.
func (a *Agent) Strategy() Strategy { return a.strategy }

// HasPlan reports whether moves remain queued.
func (a *Agent) HasPlan() bool { return len(a.plan) > 0 }

// planDestination projects the final position reached if the queued plan
// executed fully from the current cell.
func (a *Agent) planDestination() maze.Position {
	current := a.mind.env.Position()
	for _, d := range a.plan {
		current = current.Neighbor(d)
	}
	return current
}

// Step executes one perception-plan-action cycle and reports whether the
// agent made progress. Once every food is collected and the exit is known, a
// queued plan that does not end on the exit is discarded so a stale
// exploration route cannot block the switch to exit-seeking. A failed advance
// marks the blocked neighbor in memory and clears the whole plan, since the
// route is now known wrong.
func (a *Agent) Step() bool {
	a.mind.perceive()

	env := a.mind.env
	if env.GoalReached() {
		return false
	}

	if a.mind.AllFoodCollected() && a.mind.ExitKnown() && len(a.plan) > 0 {
		if a.planDestination() != env.Exit() {
			a.plan = nil
		}
	}

	if len(a.plan) == 0 {
		a.plan = a.strategy.NextPlan(a.mind)
	}
	if len(a.plan) == 0 {
		return false
	}

	next := a.plan[0]
	if env.Heading() != next {
		_ = env.Rotate(next) // planner directions are always cardinal
	}

	if env.Advance() {
		a.plan = a.plan[1:]
		return true
	}

	a.mind.memory.MarkBlocked(env.Position().Neighbor(env.Heading()))
	a.plan = nil
	return false
}
