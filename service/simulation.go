/*
Package service orchestrates simulation runs: it owns the strategy registry,
drives the agent loop cycle by cycle, and aggregates results into a
scoreboard. Each run gets its own grid clone and environment, so independent
strategies can execute in parallel without shared state.
*/
package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/service/i"
	"github.com/abenik/maze-sim/sim"
)

// ScorePerFood is the score awarded for each collected food tile; every step
// taken costs one point.
const ScorePerFood = 10

const (
	defaultMaxCycles = 500

	// maxNoProgress ends a run after this many consecutive cycles with no
	// queued plan and no progress.
	maxNoProgress = 2
)

// Result is the renderer-facing outcome of one simulation run. Renderers
// consume only this; agent internals never leak past it.
type Result struct {
	RunID         uuid.UUID     `json:"runId"`
	StrategyID    string        `json:"strategyId"`
	StrategyLabel string        `json:"strategyLabel"`
	Frames        []string      `json:"frames"`
	StepsTaken    int           `json:"stepsTaken"`
	FoodCollected int           `json:"foodCollected"`
	FoodTotal     int           `json:"foodTotal"`
	Score         int           `json:"score"`
	GoalReached   bool          `json:"goalReached"`
	FinalRender   string        `json:"finalRender"`
	Duration      time.Duration `json:"duration"`
}

// Summary returns a human-readable report of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"Strategy: %s (%s)\nFood collected: %d/%d\nSteps taken: %d\nFinal score: %d\nGoal reached: %t",
		r.StrategyLabel, r.StrategyID, r.FoodCollected, r.FoodTotal, r.StepsTaken, r.Score, r.GoalReached,
	)
}

// Options configures a Runner. Zero values fall back to defaults.
type Options struct {
	SensorSize int // side of the perception window, default 3
	MaxCycles  int // hard cycle cap per run, default 500
	Seed       int64
	FoodSensor bool
	Logger     i.Logger
}

// Runner executes simulations over one pristine source grid.
type Runner struct {
	source *maze.Grid
	opts   Options
}

// NewRunner validates the options and builds a runner. The source grid is
// cloned for every run, so the runner itself never mutates it.
func NewRunner(source *maze.Grid, opts *Options) (*Runner, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.SensorSize == 0 {
		opts.SensorSize = sim.DefaultSensorSize
	}
	if opts.MaxCycles <= 0 {
		opts.MaxCycles = defaultMaxCycles
	}

	// Fail fast on bad grids and sensor sizes instead of at first run.
	if _, err := sim.NewEnvironment(source.Clone(), opts.SensorSize); err != nil {
		return nil, err
	}
	return &Runner{source: source.Clone(), opts: *opts}, nil
}

// MaxCycles returns the configured cycle cap.
func (r *Runner) MaxCycles() int { return r.opts.MaxCycles }

// Run executes one full simulation for the identified strategy and returns
// its result. Movement rejections and stuck strategies never surface as
// errors; they shape the result instead.
func (r *Runner) Run(strategyID string) (*Result, error) {
	spec, err := GetStrategy(strategyID)
	if err != nil {
		return nil, err
	}

	env, err := sim.NewEnvironment(r.source.Clone(), r.opts.SensorSize)
	if err != nil {
		return nil, err
	}
	ag := spec.New(env, env.FoodTotal(), StrategyOptions{Seed: r.opts.Seed, FoodSensor: r.opts.FoodSensor})

	started := time.Now()
	frames := make([]string, 0, r.opts.MaxCycles+1)
	frames = append(frames, env.Render())

	noProgress := 0
	for cycle := 0; cycle < r.opts.MaxCycles; cycle++ {
		moved := ag.Step()
		frames = append(frames, env.Render())

		if env.GoalReached() {
			break
		}
		if !moved && !ag.HasPlan() {
			noProgress++
			if noProgress >= maxNoProgress {
				break
			}
		} else {
			noProgress = 0
		}
	}

	result := &Result{
		RunID:         uuid.New(),
		StrategyID:    spec.ID,
		StrategyLabel: spec.Label,
		Frames:        frames,
		StepsTaken:    env.Steps(),
		FoodCollected: env.FoodCollected(),
		FoodTotal:     env.FoodTotal(),
		Score:         env.FoodCollected()*ScorePerFood - env.Steps(),
		GoalReached:   env.GoalReached(),
		FinalRender:   env.Render(),
		Duration:      time.Since(started),
	}

	if r.opts.Logger != nil {
		r.opts.Logger.Info(fmt.Sprintf(
			"run %s finished: strategy=%s score=%d steps=%d food=%d/%d goal=%t",
			result.RunID, result.StrategyID, result.Score, result.StepsTaken,
			result.FoodCollected, result.FoodTotal, result.GoalReached,
		))
	}
	return result, nil
}

// RunAll executes a full simulation per identifier, one goroutine per run.
// Runs share nothing, so no synchronization is needed beyond collecting the
// results. A nil or empty identifier list runs every registered strategy.
func (r *Runner) RunAll(strategyIDs []string) (map[string]*Result, error) {
	if len(strategyIDs) == 0 {
		strategyIDs = StrategyIDs()
	}

	// Resolve every identifier before spawning anything so one typo fails
	// the whole request up front.
	for _, id := range strategyIDs {
		if _, err := GetStrategy(id); err != nil {
			return nil, err
		}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		results  = make(map[string]*Result, len(strategyIDs))
		firstErr error
	)

	for _, id := range strategyIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			result, err := r.Run(id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[id] = result
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Scoreboard orders results by score descending; ties go to fewer steps,
// then to the label so the order is total.
func Scoreboard(results map[string]*Result) []*Result {
	board := make([]*Result, 0, len(results))
	for _, result := range results {
		board = append(board, result)
	}
	sort.SliceStable(board, func(a, b int) bool {
		if board[a].Score != board[b].Score {
			return board[a].Score > board[b].Score
		}
		if board[a].StepsTaken != board[b].StepsTaken {
			return board[a].StepsTaken < board[b].StepsTaken
		}
		return board[a].StrategyLabel < board[b].StrategyLabel
	})
	return board
}
