/*
Package mazegen creates random ASCII maps in the simulator's file format.

Maps are bordered by walls, enter at (1,1), and exit at (rows-2, cols-2).
Interior walls are placed one at a time up to a density target, each placement
validated so the exit and every food stay reachable from the entry. When a
density cannot be satisfied the generator retries with a lower one.
*/
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/abenik/maze-sim/maze"
)

const (
	// MinDimension is the smallest allowed map side.
	MinDimension = 5

	defaultWallDensity = 0.18
	defaultFoodCount   = 6
	defaultMaxAttempts = 12

	// densityBackoff shrinks the wall-density target between attempts.
	densityBackoff = 0.85
)

var (
	ErrTooSmall       = errors.New("map needs at least 5 rows and 5 columns")
	ErrBadWallDensity = errors.New("wall density must be between 0 and 0.6")
	ErrCannotGenerate = errors.New("could not generate a valid map; lower the wall density")
)

// Options configures map generation. Zero values fall back to defaults.
type Options struct {
	WallDensity float64 // approximate share of interior cells turned into walls
	FoodCount   int     // food tiles to scatter
	Seed        int64   // RNG seed; generation is deterministic per seed
	MaxAttempts int     // density back-off retries
}

func (o *Options) withDefaults() Options {
	opts := Options{
		WallDensity: defaultWallDensity,
		FoodCount:   defaultFoodCount,
		MaxAttempts: defaultMaxAttempts,
	}
	if o == nil {
		return opts
	}
	if o.WallDensity != 0 {
		opts.WallDensity = o.WallDensity
	}
	if o.FoodCount != 0 {
		opts.FoodCount = o.FoodCount
	}
	if o.MaxAttempts > 0 {
		opts.MaxAttempts = o.MaxAttempts
	}
	opts.Seed = o.Seed
	return opts
}

// Blank returns the bordered grid with entry and exit but no interior walls
// or food.
func Blank(rows, cols int) ([]string, error) {
	grid, _, _, err := initializeGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return gridLines(grid), nil
}

// Generate builds a random valid map. The returned lines are in the map file
// format and always parse into a valid environment.
func Generate(rows, cols int, o *Options) ([]string, error) {
	opts := o.withDefaults()
	if opts.WallDensity < 0 || opts.WallDensity > 0.6 {
		return nil, fmt.Errorf("%w: got %v", ErrBadWallDensity, opts.WallDensity)
	}

	density := opts.WallDensity
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		lines, err := build(rows, cols, density, opts.FoodCount, opts.Seed+int64(attempt))
		if err == nil {
			return lines, nil
		}
		if !errors.Is(err, ErrCannotGenerate) {
			return nil, err
		}
		density *= densityBackoff
	}
	return nil, ErrCannotGenerate
}

// Write saves map lines to a file, creating parent directories as needed.
func Write(lines []string, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating map directory: %w", err)
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

// EstimateWallDensity returns the share of interior cells that are walls.
func EstimateWallDensity(lines []string) float64 {
	rows := len(lines)
	if rows <= 2 {
		return 0
	}
	cols := len(lines[0])
	if cols <= 2 {
		return 0
	}

	interior := (rows - 2) * (cols - 2)
	walls := 0
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if maze.Tile(lines[r][c]) == maze.Wall {
				walls++
			}
		}
	}
	return float64(walls) / float64(interior)
}

func initializeGrid(rows, cols int) ([][]maze.Tile, maze.Position, maze.Position, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, maze.Position{}, maze.Position{}, ErrTooSmall
	}

	grid := make([][]maze.Tile, rows)
	for r := range grid {
		grid[r] = make([]maze.Tile, cols)
		for c := range grid[r] {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				grid[r][c] = maze.Wall
			} else {
				grid[r][c] = maze.Open
			}
		}
	}

	entry := maze.Position{Row: 1, Col: 1}
	exit := maze.Position{Row: rows - 2, Col: cols - 2}
	grid[entry.Row][entry.Col] = maze.Entry
	grid[exit.Row][exit.Col] = maze.Exit
	return grid, entry, exit, nil
}

func build(rows, cols int, density float64, foodCount int, seed int64) ([]string, error) {
	grid, entry, exit, err := initializeGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	var candidates []maze.Position
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			p := maze.Position{Row: r, Col: c}
			if p != entry && p != exit {
				candidates = append(candidates, p)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	wallTarget := int(density * float64(len(candidates)))
	placed := 0
	for _, cell := range candidates {
		if placed >= wallTarget {
			break
		}
		if grid[cell.Row][cell.Col] != maze.Open {
			continue
		}
		grid[cell.Row][cell.Col] = maze.Wall
		if validLayout(grid, entry, exit) {
			placed++
		} else {
			grid[cell.Row][cell.Col] = maze.Open
		}
	}

	var open []maze.Position
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if grid[r][c] == maze.Open {
				open = append(open, maze.Position{Row: r, Col: c})
			}
		}
	}
	rng.Shuffle(len(open), func(i, j int) {
		open[i], open[j] = open[j], open[i]
	})

	toPlace := foodCount
	if toPlace > len(open) {
		toPlace = len(open)
	}
	for i := 0; i < toPlace; i++ {
		grid[open[i].Row][open[i].Col] = maze.Food
	}

	if !validLayout(grid, entry, exit) {
		return nil, ErrCannotGenerate
	}
	return gridLines(grid), nil
}

// validLayout checks that the exit and every food tile are reachable from the
// entry over passable tiles.
func validLayout(grid [][]maze.Tile, entry, exit maze.Position) bool {
	reachable := reachableFrom(grid, entry)
	if _, ok := reachable[exit]; !ok {
		return false
	}
	for r, row := range grid {
		for c, tile := range row {
			if tile == maze.Food {
				if _, ok := reachable[maze.Position{Row: r, Col: c}]; !ok {
					return false
				}
			}
		}
	}
	return true
}

func reachableFrom(grid [][]maze.Tile, start maze.Position) map[maze.Position]struct{} {
	rows, cols := len(grid), len(grid[0])
	visited := make(map[maze.Position]struct{})
	stack := []maze.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for _, d := range maze.Directions {
			n := current.Neighbor(d)
			if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
				continue
			}
			if grid[n.Row][n.Col].Passable() {
				stack = append(stack, n)
			}
		}
	}
	return visited
}

func gridLines(grid [][]maze.Tile) []string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		b := make([]byte, len(row))
		for c, tile := range row {
			b[c] = byte(tile)
		}
		lines[r] = string(b)
	}
	return lines
}
