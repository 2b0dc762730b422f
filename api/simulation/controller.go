package simulationapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/abenik/maze-sim/service"
	"github.com/abenik/maze-sim/service/i"
)

// Controller serves simulation runs over the runner and keeps finished
// results in memory for the lifetime of the process.
type Controller struct {
	runner *service.Runner
	logger i.Logger

	mu      sync.RWMutex
	results map[uuid.UUID]*service.Result

	upgrader websocket.Upgrader
}

// NewController initializes a simulation controller over a runner.
func NewController(runner *service.Runner, logger i.Logger) (*Controller, error) {
	if runner == nil {
		return nil, errors.New("simulation controller needs a runner")
	}
	return &Controller{
		runner:  runner,
		logger:  logger,
		results: make(map[uuid.UUID]*service.Result),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Register mounts the simulation routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	simulations := route.Group("/simulations")
	{
		simulations.POST("/", c.run)
		simulations.GET("/:ID", c.result)
		simulations.GET("/:ID/stream", c.stream)
	}
	route.GET("/strategies", c.strategies)
}

// strategies lists the registered strategy identifiers and labels.
func (c *Controller) strategies(ctx *gin.Context) {
	specs := service.Strategies()
	rows := make([]StrategyRow, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, StrategyRow{ID: spec.ID, Label: spec.Label})
	}
	ctx.JSON(http.StatusOK, rows)
}

// run executes the requested strategies and responds with the scoreboard.
func (c *Controller) run(ctx *gin.Context) {
	var request RunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := c.runner.RunAll(request.Strategies)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStrategy) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.logError(fmt.Sprintf("running simulations: %v", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while running simulations"})
		return
	}

	c.mu.Lock()
	for _, result := range results {
		c.results[result.RunID] = result
	}
	c.mu.Unlock()

	board := service.Scoreboard(results)
	rows := make([]RunRow, 0, len(board))
	for _, result := range board {
		rows = append(rows, RunRow{
			RunID:         result.RunID,
			StrategyID:    result.StrategyID,
			StrategyLabel: result.StrategyLabel,
			Score:         result.Score,
			StepsTaken:    result.StepsTaken,
			FoodCollected: result.FoodCollected,
			FoodTotal:     result.FoodTotal,
			GoalReached:   result.GoalReached,
			Frames:        len(result.Frames),
		})
	}
	ctx.JSON(http.StatusOK, RunResponse{Scoreboard: rows})
}

// result returns one stored run in full, frames included.
func (c *Controller) result(ctx *gin.Context) {
	result, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// stream replays a stored run's frames over a websocket, one message per
// frame. The optional `delay_ms` query parameter controls pacing.
func (c *Controller) stream(ctx *gin.Context) {
	result, ok := c.lookup(ctx)
	if !ok {
		return
	}

	interval := streamInterval
	if raw := ctx.Query("delay_ms"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "delay_ms must be a non-negative integer"})
			return
		}
		interval = time.Duration(ms) * time.Millisecond
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logError(fmt.Sprintf("websocket upgrade: %v", err))
		return
	}
	defer conn.Close()

	for index, frame := range result.Frames {
		message := FrameMessage{Index: index, Total: len(result.Frames), Frame: frame}
		if err := conn.WriteJSON(message); err != nil {
			return
		}
		time.Sleep(interval)
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

// lookup resolves the :ID parameter to a stored result, writing the error
// response itself when it cannot.
func (c *Controller) lookup(ctx *gin.Context) (*service.Result, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return nil, false
	}

	c.mu.RLock()
	result, ok := c.results[id]
	c.mu.RUnlock()
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no result for run id"})
		return nil, false
	}
	return result, true
}

func (c *Controller) logError(msg string) {
	if c.logger != nil {
		c.logger.Error(msg)
	}
}
