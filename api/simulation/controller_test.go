package simulationapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	grid, err := maze.Parse([]string{
		"XXXXX",
		"XE__X",
		"X_o_X",
		"X__SX",
		"XXXXX",
	})
	require.NoError(t, err)

	runner, err := service.NewRunner(grid, &service.Options{Seed: 1})
	require.NoError(t, err)

	controller, err := NewController(runner, nil)
	require.NoError(t, err)

	router := gin.New()
	controller.Register(router.Group("/api/v1"))
	return router, controller
}

func TestNewController(t *testing.T) {
	_, err := NewController(nil, nil)
	assert.Error(t, err)
}

func TestStrategiesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []StrategyRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, len(service.StrategyIDs()))
	assert.Equal(t, "exploration", rows[0].ID)
	assert.NotEmpty(t, rows[0].Label)
}

func TestRunEndpoint(t *testing.T) {
	t.Run("runs the requested strategies and returns the scoreboard", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body, _ := json.Marshal(RunRequest{Strategies: []string{"shortest_path", "exploration"}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Scoreboard, 2)

		// Scoreboard order: the optimal run outranks exploration.
		assert.Equal(t, "shortest_path", response.Scoreboard[0].StrategyID)
		assert.True(t, response.Scoreboard[0].GoalReached)
		assert.Positive(t, response.Scoreboard[0].Frames)
	})

	t.Run("unknown strategy fails the batch with 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body, _ := json.Marshal(RunRequest{Strategies: []string{"teleport"}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown strategy")
	})
}

func TestResultEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/simulations/not-a-uuid", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/simulations/"+uuid.NewString(), nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stored run comes back in full", func(t *testing.T) {
		body, _ := json.Marshal(RunRequest{Strategies: []string{"shortest_path"}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var response RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Scoreboard, 1)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet,
			"/api/v1/simulations/"+response.Scoreboard[0].RunID.String(), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result service.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "shortest_path", result.StrategyID)
		assert.NotEmpty(t, result.Frames)
	})
}
