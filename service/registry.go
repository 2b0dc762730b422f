package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/abenik/maze-sim/agent"
	"github.com/abenik/maze-sim/sim"
)

// ErrUnknownStrategy is returned when a strategy identifier is not
// registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// StrategyOptions carries the per-run knobs strategy constructors may need.
type StrategyOptions struct {
	// Seed drives the RandomWalk RNG so runs are reproducible.
	Seed int64

	// FoodSensor enables SensorGreedy's directional food fallback.
	FoodSensor bool
}

// StrategySpec maps a stable identifier to a label and an agent constructor.
type StrategySpec struct {
	ID    string
	Label string
	New   func(env *sim.Environment, totalFood int, opts StrategyOptions) *agent.Agent
}

// strategyOrder fixes enumeration order for scoreboards and listings.
var strategyOrder = []StrategySpec{
	{
		ID:    "exploration",
		Label: "Memory-guided exploration",
		New: func(env *sim.Environment, totalFood int, _ StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewExploration())
		},
	},
	{
		ID:    "random_walk",
		Label: "Random walk",
		New: func(env *sim.Environment, totalFood int, opts StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewRandomWalk(opts.Seed))
		},
	},
	{
		ID:    "sensor_greedy",
		Label: "Sensor greedy",
		New: func(env *sim.Environment, totalFood int, opts StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewSensorGreedy(opts.FoodSensor))
		},
	},
	{
		ID:    "dead_end_aware",
		Label: "Dead-end avoidance",
		New: func(env *sim.Environment, totalFood int, _ StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewDeadEndAware())
		},
	},
	{
		ID:    "frontier_heuristic",
		Label: "Heuristic frontiers",
		New: func(env *sim.Environment, totalFood int, _ StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewHeuristicFrontier())
		},
	},
	{
		ID:    "shortest_path",
		Label: "Known shortest path",
		New: func(env *sim.Environment, totalFood int, _ StrategyOptions) *agent.Agent {
			return agent.New(env, totalFood, agent.NewShortestPath())
		},
	},
}

var strategyIndex = func() map[string]StrategySpec {
	index := make(map[string]StrategySpec, len(strategyOrder))
	for _, spec := range strategyOrder {
		index[spec.ID] = spec
	}
	return index
}()

// Strategies returns every registered strategy in enumeration order.
func Strategies() []StrategySpec {
	out := make([]StrategySpec, len(strategyOrder))
	copy(out, strategyOrder)
	return out
}

// StrategyIDs returns the registered identifiers in enumeration order.
func StrategyIDs() []string {
	ids := make([]string, 0, len(strategyOrder))
	for _, spec := range strategyOrder {
		ids = append(ids, spec.ID)
	}
	return ids
}

// GetStrategy resolves an identifier, failing with the list of valid
// identifiers for unknown ones.
func GetStrategy(id string) (StrategySpec, error) {
	spec, ok := strategyIndex[id]
	if !ok {
		valid := StrategyIDs()
		sort.Strings(valid)
		return StrategySpec{}, fmt.Errorf("%w %q, valid: %s", ErrUnknownStrategy, id, strings.Join(valid, ", "))
	}
	return spec, nil
}
