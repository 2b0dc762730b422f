package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abenik/maze-sim/maze"
)

func mustGrid(t *testing.T, lines ...string) *maze.Grid {
	t.Helper()
	grid, err := maze.Parse(lines)
	require.NoError(t, err)
	return grid
}

func TestNewEnvironment(t *testing.T) {
	t.Run("places the agent on the entry heading north", func(t *testing.T) {
		env, err := NewEnvironment(mustGrid(t,
			"XXXXX",
			"XE_oX",
			"X__SX",
			"XXXXX",
		), 3)
		require.NoError(t, err)

		assert.Equal(t, maze.Position{Row: 1, Col: 1}, env.Position())
		assert.Equal(t, maze.North, env.Heading())
		assert.Equal(t, maze.Position{Row: 2, Col: 3}, env.Exit())
		assert.Equal(t, 1, env.FoodTotal())
		assert.Zero(t, env.Steps())
		assert.Zero(t, env.FoodCollected())
	})

	t.Run("rejects even or too-small sensor sizes", func(t *testing.T) {
		grid := mustGrid(t, "ES")
		for _, size := range []int{0, 1, 2, 4} {
			_, err := NewEnvironment(grid, size)
			assert.ErrorIs(t, err, ErrBadSensorSize, "size %d", size)
		}
	})

	t.Run("requires exactly one entry and one exit", func(t *testing.T) {
		_, err := NewEnvironment(mustGrid(t, "_S"), 3)
		assert.ErrorIs(t, err, ErrNoEntry)

		_, err = NewEnvironment(mustGrid(t, "E_"), 3)
		assert.ErrorIs(t, err, ErrNoExit)

		_, err = NewEnvironment(mustGrid(t, "EES"), 3)
		assert.ErrorIs(t, err, ErrMultipleEntries)

		_, err = NewEnvironment(mustGrid(t, "ESS"), 3)
		assert.ErrorIs(t, err, ErrMultipleExits)
	})
}

func TestSense(t *testing.T) {
	env, err := NewEnvironment(mustGrid(t,
		"XXXXX",
		"XE_oX",
		"X__SX",
		"XXXXX",
	), 3)
	require.NoError(t, err)

	t.Run("window reads the surrounding tiles", func(t *testing.T) {
		window := env.Sense()
		require.Len(t, window, 3)
		assert.Equal(t, byte(maze.Wall), window[0][0])
		assert.Equal(t, byte(maze.Open), window[1][2])
	})

	t.Run("out-of-bounds cells report as walls", func(t *testing.T) {
		tiny, err := NewEnvironment(mustGrid(t, "ES"), 3)
		require.NoError(t, err)

		window := tiny.Sense()
		// Agent sits at (0,0); everything above and left of it is outside.
		assert.Equal(t, byte(maze.Wall), window[0][0])
		assert.Equal(t, byte(maze.Wall), window[1][0])
		assert.Equal(t, byte(maze.Wall), window[2][1])
		assert.Equal(t, byte(maze.Exit), window[1][2])
	})

	t.Run("center cell reports the heading, not the tile", func(t *testing.T) {
		window := env.Sense()
		assert.Equal(t, byte(maze.North), window[1][1])

		require.NoError(t, env.Rotate(maze.East))
		window = env.Sense()
		assert.Equal(t, byte(maze.East), window[1][1])

		// The true tile is still available through TileAt.
		assert.Equal(t, maze.Entry, env.TileAt(env.Position()))
	})
}

func TestRotateAndAdvance(t *testing.T) {
	newEnv := func(t *testing.T) *Environment {
		env, err := NewEnvironment(mustGrid(t,
			"XXXXX",
			"XE_oX",
			"X__SX",
			"XXXXX",
		), 3)
		require.NoError(t, err)
		return env
	}

	t.Run("rotate rejects non-cardinal glyphs", func(t *testing.T) {
		env := newEnv(t)
		assert.ErrorIs(t, env.Rotate(maze.Direction('Z')), ErrInvalidDirection)
		assert.Equal(t, maze.North, env.Heading())
	})

	t.Run("advance into a wall is a rejection, not an error", func(t *testing.T) {
		env := newEnv(t)
		// Heading north from the entry points into the border wall.
		assert.False(t, env.Advance())
		assert.Equal(t, maze.Position{Row: 1, Col: 1}, env.Position())
		assert.Zero(t, env.Steps())
	})

	t.Run("advance moves and counts steps", func(t *testing.T) {
		env := newEnv(t)
		require.NoError(t, env.Rotate(maze.East))
		assert.True(t, env.Advance())
		assert.Equal(t, maze.Position{Row: 1, Col: 2}, env.Position())
		assert.Equal(t, 1, env.Steps())
	})

	t.Run("advancing onto food collects it and opens the tile", func(t *testing.T) {
		env := newEnv(t)
		require.NoError(t, env.Rotate(maze.East))
		require.True(t, env.Advance())
		require.True(t, env.Advance())

		assert.Equal(t, 1, env.FoodCollected())
		assert.Equal(t, maze.Open, env.TileAt(maze.Position{Row: 1, Col: 3}))
		assert.Empty(t, env.RemainingFood())
	})

	t.Run("goal needs exit position and all food", func(t *testing.T) {
		env := newEnv(t)

		// Walk straight to the exit without the food: not a goal.
		require.NoError(t, env.Rotate(maze.South))
		require.True(t, env.Advance())
		require.NoError(t, env.Rotate(maze.East))
		require.True(t, env.Advance())
		require.True(t, env.Advance())
		assert.Equal(t, env.Exit(), env.Position())
		assert.False(t, env.GoalReached())

		// Collect the food, then return: goal.
		require.NoError(t, env.Rotate(maze.North))
		require.True(t, env.Advance())
		assert.Equal(t, 1, env.FoodCollected())
		require.NoError(t, env.Rotate(maze.South))
		require.True(t, env.Advance())
		assert.True(t, env.GoalReached())
	})
}

func TestRender(t *testing.T) {
	env, err := NewEnvironment(mustGrid(t,
		"XXXXX",
		"XE_oX",
		"X__SX",
		"XXXXX",
	), 3)
	require.NoError(t, err)

	assert.Equal(t, "XXXXX\nXN_oX\nX__SX\nXXXXX", env.Render())

	require.NoError(t, env.Rotate(maze.East))
	require.True(t, env.Advance())
	assert.Equal(t, "XXXXX\nXEEoX\nX__SX\nXXXXX", env.Render())
}

func TestDirectionalFoodCounts(t *testing.T) {
	env, err := NewEnvironment(mustGrid(t,
		"XXXXXXX",
		"X_o___X",
		"XoE_o_S",
		"X_X___X",
		"XXXXXXX",
	), 3)
	require.NoError(t, err)

	counts := env.DirectionalFoodCounts()
	assert.Equal(t, 1, counts[maze.North])
	assert.Equal(t, 1, counts[maze.East])
	assert.Equal(t, 0, counts[maze.South]) // ray stops at the wall below
	assert.Equal(t, 1, counts[maze.West])
}
