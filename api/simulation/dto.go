// Package simulationapi exposes simulation runs and results over HTTP.
package simulationapi

import (
	"time"

	"github.com/google/uuid"
)

// RunRequest asks for a batch of simulations. An empty strategy list runs
// every registered strategy.
type RunRequest struct {
	Strategies []string `json:"strategies"`
}

// RunRow is one scoreboard entry of a finished run.
type RunRow struct {
	RunID         uuid.UUID `json:"run_id"`
	StrategyID    string    `json:"strategy_id"`
	StrategyLabel string    `json:"strategy_label"`
	Score         int       `json:"score"`
	StepsTaken    int       `json:"steps_taken"`
	FoodCollected int       `json:"food_collected"`
	FoodTotal     int       `json:"food_total"`
	GoalReached   bool      `json:"goal_reached"`
	Frames        int       `json:"frames"`
}

// RunResponse is the score-ordered outcome of a batch.
type RunResponse struct {
	Scoreboard []RunRow `json:"scoreboard"`
}

// StrategyRow describes one registered strategy.
type StrategyRow struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FrameMessage is one websocket playback message.
type FrameMessage struct {
	Index int    `json:"index"`
	Total int    `json:"total"`
	Frame string `json:"frame"`
}

// streamInterval is the default delay between streamed frames.
const streamInterval = 200 * time.Millisecond
