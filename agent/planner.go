package agent

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/abenik/maze-sim/maze"
)

// PassFunc decides whether a breadth-first search may step onto a position
// while routing toward target. Injecting passability keeps one search routine
// shared between the memory-based and grid-based planners and lets variants
// such as the dead-end filter compose without inheritance.
type PassFunc func(p, target maze.Position) bool

type bfsNode struct {
	pos  maze.Position
	path []maze.Direction
}

// BreadthFirst returns the direction sequence of the first shortest path from
// start to target over the four-connected grid, expanding neighbors in the
// fixed {N, S, E, W} order so ties break deterministically. It returns nil
// when start equals target or no path exists.
func BreadthFirst(start, target maze.Position, pass PassFunc) []maze.Direction {
	if start == target {
		return nil
	}

	queue := []bfsNode{{pos: start}}
	seen := map[maze.Position]struct{}{start: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range maze.Directions {
			next := current.pos.Neighbor(d)
			if _, visited := seen[next]; visited {
				continue
			}
			if !pass(next, target) {
				continue
			}

			path := make([]maze.Direction, 0, len(current.path)+1)
			path = append(path, current.path...)
			path = append(path, d)
			if next == target {
				return path
			}

			seen[next] = struct{}{}
			queue = append(queue, bfsNode{pos: next, path: path})
		}
	}
	return nil
}

// MemoryPass builds the conservative passability rule for planning over an
// agent's memory: the target itself is always enterable, every other cell
// must be remembered as passable. Unseen cells are impassable.
func MemoryPass(mem *Memory) PassFunc {
	return func(p, target maze.Position) bool {
		if p == target {
			return true
		}
		return mem.Passable(p)
	}
}

// MemoryPassAvoiding is MemoryPass with known dead ends excluded, unless the
// dead end is itself the target.
func MemoryPassAvoiding(mem *Memory, deadEnds mapset.Set) PassFunc {
	base := MemoryPass(mem)
	return func(p, target maze.Position) bool {
		if p != target && deadEnds.Contains(p) {
			return false
		}
		return base(p, target)
	}
}

// GridView is the read-only slice of an environment the omniscient planner
// needs.
type GridView interface {
	CanTraverse(p maze.Position) bool
}

// GridPass builds the omniscient passability rule over the true grid.
func GridPass(view GridView) PassFunc {
	return func(p, target maze.Position) bool {
		if p == target {
			return true
		}
		return view.CanTraverse(p)
	}
}
