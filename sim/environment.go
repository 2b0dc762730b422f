/*
Package sim holds the authoritative state of one simulation run.

The Environment exclusively owns its grid plus the agent position, heading,
step counter, and food counters. Agents never touch the grid directly; they
interact through sensing, rotation, and forward motion.
*/
package sim

import (
	"errors"
	"fmt"

	"github.com/abenik/maze-sim/maze"
)

var (
	ErrNoEntry          = errors.New("maze has no entry tile")
	ErrNoExit           = errors.New("maze has no exit tile")
	ErrMultipleEntries  = errors.New("maze must have exactly one entry tile")
	ErrMultipleExits    = errors.New("maze must have exactly one exit tile")
	ErrBadSensorSize    = errors.New("sensor size must be an odd number >= 3")
	ErrInvalidDirection = errors.New("invalid direction")
)

// DefaultSensorSize is the side length of the perception window when the
// caller does not choose one.
const DefaultSensorSize = 3

// Environment wraps a grid with the mutable per-run agent state.
type Environment struct {
	grid         *maze.Grid
	sensorSize   int
	sensorRadius int

	entry   maze.Position
	exit    maze.Position
	pos     maze.Position
	heading maze.Direction

	steps         int
	foodTotal     int
	foodCollected int
}

// NewEnvironment validates the grid and sensor size and places the agent on
// the entry tile heading north. The grid must contain exactly one entry and
// exactly one exit.
func NewEnvironment(grid *maze.Grid, sensorSize int) (*Environment, error) {
	if sensorSize < 3 || sensorSize%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSensorSize, sensorSize)
	}

	entries := grid.FindAll(maze.Entry)
	switch {
	case len(entries) == 0:
		return nil, ErrNoEntry
	case len(entries) > 1:
		return nil, ErrMultipleEntries
	}

	exits := grid.FindAll(maze.Exit)
	switch {
	case len(exits) == 0:
		return nil, ErrNoExit
	case len(exits) > 1:
		return nil, ErrMultipleExits
	}

	return &Environment{
		grid:         grid,
		sensorSize:   sensorSize,
		sensorRadius: sensorSize / 2,
		entry:        entries[0],
		exit:         exits[0],
		pos:          entries[0],
		heading:      maze.North,
		foodTotal:    grid.Count(maze.Food),
	}, nil
}

// FromFile loads an ASCII map from disk and builds an environment on it.
func FromFile(path string, sensorSize int) (*Environment, error) {
	grid, err := maze.FromFile(path)
	if err != nil {
		return nil, err
	}
	return NewEnvironment(grid, sensorSize)
}

// Position returns the agent's current cell.
func (e *Environment) Position() maze.Position { return e.pos }

// Heading returns the agent's current heading.
func (e *Environment) Heading() maze.Direction { return e.heading }

// Entry returns the entry cell located at construction.
func (e *Environment) Entry() maze.Position { return e.entry }

// Exit returns the exit cell located at construction.
func (e *Environment) Exit() maze.Position { return e.exit }

// Steps returns how many forward moves have succeeded so far.
func (e *Environment) Steps() int { return e.steps }

// FoodTotal returns the number of food tiles the grid held at construction.
func (e *Environment) FoodTotal() int { return e.foodTotal }

// FoodCollected returns how many food tiles the agent has consumed.
func (e *Environment) FoodCollected() int { return e.foodCollected }

// SensorSize returns the side length of the perception window.
func (e *Environment) SensorSize() int { return e.sensorSize }

// SensorRadius returns half the sensor window, rounded down.
func (e *Environment) SensorRadius() int { return e.sensorRadius }

// Rows returns the grid row count.
func (e *Environment) Rows() int { return e.grid.Rows() }

// Cols returns the grid column count.
func (e *Environment) Cols() int { return e.grid.Cols() }

// TileAt returns the true tile at a position; outside the grid reads as wall.
func (e *Environment) TileAt(p maze.Position) maze.Tile {
	return e.grid.TileAt(p)
}

// CanTraverse reports whether the true grid allows standing on the position.
func (e *Environment) CanTraverse(p maze.Position) bool {
	return e.grid.Inside(p) && e.grid.TileAt(p) != maze.Wall
}

// RemainingFood returns the positions still holding food, in row-major order.
func (e *Environment) RemainingFood() []maze.Position {
	return e.grid.FindAll(maze.Food)
}

// Rotate sets the agent heading without moving. It fails only for glyphs that
// are not one of the four cardinal headings.
func (e *Environment) Rotate(d maze.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, byte(d))
	}
	e.heading = d
	return nil
}

// Advance moves the agent one cell along its heading. It returns false with
// no state change when the target is out of bounds or a wall; callers use the
// result to distinguish "blocked" from "moved". A successful move onto food
// collects it and opens the tile.
func (e *Environment) Advance() bool {
	target := e.pos.Neighbor(e.heading)
	if !e.grid.Inside(target) || e.grid.TileAt(target) == maze.Wall {
		return false
	}

	e.pos = target
	e.steps++
	if e.grid.ConsumeFood(target) {
		e.foodCollected++
	}
	return true
}

// GoalReached reports whether the agent stands on the exit with every food
// tile collected.
func (e *Environment) GoalReached() bool {
	return e.pos == e.exit && e.foodCollected == e.foodTotal
}

// Sense captures the square perception window centered on the agent. Cells
// outside the grid report as walls. The exact center cell carries the heading
// glyph instead of the underlying tile; observers that need the true tile
// under the agent must go through TileAt.
func (e *Environment) Sense() [][]byte {
	window := make([][]byte, e.sensorSize)
	for i := range window {
		window[i] = make([]byte, e.sensorSize)
		for j := range window[i] {
			p := maze.Position{
				Row: e.pos.Row + i - e.sensorRadius,
				Col: e.pos.Col + j - e.sensorRadius,
			}
			window[i][j] = byte(e.grid.TileAt(p))
		}
	}
	window[e.sensorRadius][e.sensorRadius] = byte(e.heading)
	return window
}

// DirectionalFoodCounts counts the food tiles along each cardinal ray from
// the agent, stopping at the first wall or the grid edge.
func (e *Environment) DirectionalFoodCounts() map[maze.Direction]int {
	counts := make(map[maze.Direction]int, len(maze.Directions))
	for _, d := range maze.Directions {
		counts[d] = 0
		current := e.pos
		for {
			current = current.Neighbor(d)
			if !e.grid.Inside(current) {
				break
			}
			tile := e.grid.TileAt(current)
			if tile == maze.Wall {
				break
			}
			if tile == maze.Food {
				counts[d]++
			}
		}
	}
	return counts
}

// Render produces the full-grid snapshot consumed by renderers, with the
// heading glyph substituted at the agent's cell.
func (e *Environment) Render() string {
	out := make([]byte, 0, (e.grid.Cols()+1)*e.grid.Rows())
	for r := 0; r < e.grid.Rows(); r++ {
		if r > 0 {
			out = append(out, '\n')
		}
		for c := 0; c < e.grid.Cols(); c++ {
			p := maze.Position{Row: r, Col: c}
			if p == e.pos {
				out = append(out, byte(e.heading))
			} else {
				out = append(out, byte(e.grid.TileAt(p)))
			}
		}
	}
	return string(out)
}
