package agent

import "github.com/abenik/maze-sim/maze"

// SensorGreedy reacts one step at a time: it walks toward the nearest food
// visible in the current sensor window by Manhattan distance, breaking ties
// toward horizontal movement. With nothing visible it keeps its current
// heading, or, when the directional food sensor is enabled, steers toward the
// cardinal ray holding the most food.
type SensorGreedy struct {
	foodSensor bool
}

// NewSensorGreedy returns the reactive sensor-window strategy. foodSensor
// enables the directional food counts as a fallback before continuing the
// current heading.
func NewSensorGreedy(foodSensor bool) *SensorGreedy {
	return &SensorGreedy{foodSensor: foodSensor}
}

func (*SensorGreedy) ID() string    { return "sensor_greedy" }
func (*SensorGreedy) Label() string { return "Sensor greedy" }

func (s *SensorGreedy) NextPlan(m *Mind) []maze.Direction {
	env := m.Env()
	window := env.Sense()
	center := env.SensorRadius()

	var best maze.Direction
	found := false
	minDistance := 0

	for i, row := range window {
		for j, glyph := range row {
			if maze.Tile(glyph) != maze.Food {
				continue
			}
			distance := abs(i-center) + abs(j-center)
			if found && distance >= minDistance {
				continue
			}

			dr := i - center
			dc := j - center
			switch {
			case abs(dr) > abs(dc):
				if dr > 0 {
					best = maze.South
				} else {
					best = maze.North
				}
			default:
				// Equal offsets prefer horizontal movement.
				if dc > 0 {
					best = maze.East
				} else {
					best = maze.West
				}
			}
			found = true
			minDistance = distance
		}
	}

	if found {
		return []maze.Direction{best}
	}

	if s.foodSensor {
		if d, ok := richestRay(env.DirectionalFoodCounts()); ok {
			return []maze.Direction{d}
		}
	}
	return []maze.Direction{env.Heading()}
}

// richestRay picks the heading whose ray holds the most food, scanning in the
// fixed direction order so ties are deterministic.
func richestRay(counts map[maze.Direction]int) (maze.Direction, bool) {
	var best maze.Direction
	max := 0
	for _, d := range maze.Directions {
		if counts[d] > max {
			max = counts[d]
			best = d
		}
	}
	return best, max > 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
