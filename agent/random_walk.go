package agent

import (
	"math/rand"

	"github.com/abenik/maze-sim/maze"
)

// RandomWalk takes one uniformly random traversable step per cycle,
// refusing to immediately reverse its previous move while at least two
// choices remain. Each instance owns its RNG so runs are reproducible and
// parallel-safe.
type RandomWalk struct {
	rng     *rand.Rand
	prev    maze.Direction
	hasPrev bool
}

// NewRandomWalk returns a random-walk strategy seeded by the caller.
func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{rng: rand.New(rand.NewSource(seed))}
}

func (*RandomWalk) ID() string    { return "random_walk" }
func (*RandomWalk) Label() string { return "Random walk" }

func (s *RandomWalk) NextPlan(m *Mind) []maze.Direction {
	env := m.Env()

	var candidates []maze.Direction
	for _, d := range maze.Directions {
		if env.CanTraverse(env.Position().Neighbor(d)) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if s.hasPrev && len(candidates) > 1 {
		opposite := s.prev.Opposite()
		filtered := candidates[:0:0]
		for _, d := range candidates {
			if d != opposite {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	choice := candidates[s.rng.Intn(len(candidates))]
	s.prev = choice
	s.hasPrev = true
	return []maze.Direction{choice}
}
