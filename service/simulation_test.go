package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abenik/maze-sim/maze"
)

func testGrid(t *testing.T) *maze.Grid {
	t.Helper()
	grid, err := maze.Parse([]string{
		"XXXXX",
		"XE__X",
		"X_o_X",
		"X__SX",
		"XXXXX",
	})
	require.NoError(t, err)
	return grid
}

func TestGetStrategy(t *testing.T) {
	t.Run("resolves every registered identifier", func(t *testing.T) {
		for _, id := range StrategyIDs() {
			spec, err := GetStrategy(id)
			require.NoError(t, err)
			assert.Equal(t, id, spec.ID)
			assert.NotEmpty(t, spec.Label)
			assert.NotNil(t, spec.New)
		}
	})

	t.Run("unknown identifiers list the valid ones", func(t *testing.T) {
		_, err := GetStrategy("teleport")
		require.ErrorIs(t, err, ErrUnknownStrategy)
		assert.Contains(t, err.Error(), "exploration")
		assert.Contains(t, err.Error(), "shortest_path")
	})

	t.Run("enumeration order is stable", func(t *testing.T) {
		assert.Equal(t, []string{
			"exploration", "random_walk", "sensor_greedy",
			"dead_end_aware", "frontier_heuristic", "shortest_path",
		}, StrategyIDs())
	})
}

func TestNewRunner(t *testing.T) {
	t.Run("defaults fill in", func(t *testing.T) {
		runner, err := NewRunner(testGrid(t), nil)
		require.NoError(t, err)
		assert.Equal(t, defaultMaxCycles, runner.MaxCycles())
	})

	t.Run("rejects an invalid grid up front", func(t *testing.T) {
		grid, err := maze.Parse([]string{"E_"})
		require.NoError(t, err)
		_, err = NewRunner(grid, nil)
		assert.Error(t, err)
	})

	t.Run("rejects a bad sensor size up front", func(t *testing.T) {
		_, err := NewRunner(testGrid(t), &Options{SensorSize: 4})
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	runner, err := NewRunner(testGrid(t), &Options{Seed: 1})
	require.NoError(t, err)

	t.Run("shortest path run is complete and scored", func(t *testing.T) {
		result, err := runner.Run("shortest_path")
		require.NoError(t, err)

		assert.Equal(t, "shortest_path", result.StrategyID)
		assert.True(t, result.GoalReached)
		assert.Equal(t, 1, result.FoodCollected)
		assert.Equal(t, 1, result.FoodTotal)
		assert.Equal(t, 4, result.StepsTaken)
		assert.Equal(t, result.FoodCollected*ScorePerFood-result.StepsTaken, result.Score)
		assert.NotEqual(t, result.RunID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("frames start with the untouched map", func(t *testing.T) {
		result, err := runner.Run("exploration")
		require.NoError(t, err)

		require.NotEmpty(t, result.Frames)
		assert.Equal(t, "XXXXX\nXN__X\nX_o_X\nX__SX\nXXXXX", result.Frames[0])
		assert.Equal(t, result.FinalRender, result.Frames[len(result.Frames)-1])
	})

	t.Run("source grid survives runs untouched", func(t *testing.T) {
		_, err := runner.Run("shortest_path")
		require.NoError(t, err)
		result, err := runner.Run("shortest_path")
		require.NoError(t, err)
		assert.Equal(t, 1, result.FoodCollected, "food must respawn from the pristine grid")
	})

	t.Run("unknown strategy fails", func(t *testing.T) {
		_, err := runner.Run("teleport")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("summary reports the outcome", func(t *testing.T) {
		result, err := runner.Run("shortest_path")
		require.NoError(t, err)
		summary := result.Summary()
		assert.Contains(t, summary, "Known shortest path")
		assert.Contains(t, summary, "Food collected: 1/1")
		assert.Contains(t, summary, "Goal reached: true")
	})
}

func TestRunAll(t *testing.T) {
	runner, err := NewRunner(testGrid(t), &Options{Seed: 1})
	require.NoError(t, err)

	t.Run("empty list runs every strategy", func(t *testing.T) {
		results, err := runner.RunAll(nil)
		require.NoError(t, err)
		require.Len(t, results, len(StrategyIDs()))
		for _, id := range StrategyIDs() {
			result, ok := results[id]
			require.True(t, ok, "missing result for %s", id)
			assert.Equal(t, id, result.StrategyID)
			assert.GreaterOrEqual(t, result.FoodCollected, 0)
			assert.LessOrEqual(t, result.FoodCollected, result.FoodTotal)
		}
	})

	t.Run("a single typo fails the whole batch before any run", func(t *testing.T) {
		_, err := runner.RunAll([]string{"exploration", "teleport"})
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("subset runs only the requested strategies", func(t *testing.T) {
		results, err := runner.RunAll([]string{"exploration", "shortest_path"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestScoreboard(t *testing.T) {
	results := map[string]*Result{
		"b": {StrategyID: "b", StrategyLabel: "B", Score: 5, StepsTaken: 10},
		"a": {StrategyID: "a", StrategyLabel: "A", Score: 8, StepsTaken: 12},
		"c": {StrategyID: "c", StrategyLabel: "C", Score: 5, StepsTaken: 7},
	}
	board := Scoreboard(results)

	require.Len(t, board, 3)
	assert.Equal(t, "a", board[0].StrategyID, "highest score first")
	assert.Equal(t, "c", board[1].StrategyID, "ties go to fewer steps")
	assert.Equal(t, "b", board[2].StrategyID)
}
