package sprintapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/api/identity"
	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstPick always takes the first candidate, giving a predictable carve.
type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

// managerStub drives a real controller for one player, enough to observe the
// HTTP mapping without the full session bookkeeping.
type managerStub struct {
	controller *game.Controller
}

func (m *managerStub) StartSprint(playerID uuid.UUID, username string) (game.Snapshot, error) {
	c, err := game.NewController(game.Config{Rows: 2, Cols: 2, Carver: maze.NewDFSGenerator(firstPick{})})
	if err != nil {
		return game.Snapshot{}, err
	}
	m.controller = c
	return c.Snapshot(), nil
}

func (m *managerStub) Move(playerID uuid.UUID, dir maze.Direction) (game.MoveResult, error) {
	if m.controller == nil {
		return game.MoveResult{}, service.ErrNoActiveSprint
	}
	return m.controller.RequestMove(dir), nil
}

func (m *managerStub) Reset(playerID uuid.UUID) (game.Snapshot, error) {
	if m.controller == nil {
		return game.Snapshot{}, service.ErrNoActiveSprint
	}
	if err := m.controller.Reset(); err != nil {
		return game.Snapshot{}, err
	}
	return m.controller.Snapshot(), nil
}

func (m *managerStub) State(playerID uuid.UUID) (game.Snapshot, error) {
	if m.controller == nil {
		return game.Snapshot{}, service.ErrNoActiveSprint
	}
	return m.controller.Snapshot(), nil
}

func (m *managerStub) Elapsed(playerID uuid.UUID) (time.Duration, error) {
	if m.controller == nil {
		return 0, service.ErrNoActiveSprint
	}
	return m.controller.CurrentElapsed(), nil
}

func (m *managerStub) EndSprint(playerID uuid.UUID) error {
	if m.controller == nil {
		return service.ErrNoActiveSprint
	}
	m.controller = nil
	return nil
}

type runRepoStub struct {
	runs []dmn.Run
}

func (r *runRepoStub) Save(run *dmn.Run) error {
	r.runs = append(r.runs, *run)
	return nil
}

func (r *runRepoStub) ByPlayer(playerID uuid.UUID, limit int64) ([]dmn.Run, error) {
	return r.runs, nil
}

type boardStub struct {
	entries []dmn.LeaderboardEntry
	best    map[string]int64
}

func (b *boardStub) SubmitTime(ctx context.Context, username string, millis int64) (bool, error) {
	return true, nil
}

func (b *boardStub) Top(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error) {
	return b.entries, nil
}

func (b *boardStub) PersonalBest(ctx context.Context, username string) (int64, bool, error) {
	millis, ok := b.best[username]
	return millis, ok, nil
}

// newTestRouter wires the controller into a bare engine. The middleware stands
// in for the JWT layer by injecting claims directly.
func newTestRouter(sc *SprintController, claims interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	public := router.Group("/v1")
	sc.RegisterPublic(public)

	protected := router.Group("/v1")
	protected.Use(func(ctx *gin.Context) {
		if claims != nil {
			ctx.Set(identity.ContextUserClaims, claims)
		}
		ctx.Next()
	})
	sc.RegisterProtected(protected)

	return router
}

func claimsFor(playerID uuid.UUID, username string) map[string]interface{} {
	return map[string]interface{}{
		"playerID": playerID.String(),
		"username": username,
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSprintRoutes(t *testing.T) {
	playerID := uuid.New()
	manager := &managerStub{}
	repo := &runRepoStub{}
	board := &boardStub{}

	sc, err := NewSprintController(manager, repo, board)
	require.NoError(t, err)

	router := newTestRouter(sc, claimsFor(playerID, "maze_runner"))

	t.Run("moving before starting is not found", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/moves", `{"direction":"east"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("start returns the fresh state", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var state StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, 2, state.Rows)
		assert.Equal(t, 2, state.Cols)
		assert.Equal(t, Position{Row: 0, Col: 0}, state.Position)
		assert.Equal(t, Position{Row: 1, Col: 1}, state.Goal)
		assert.Equal(t, "idle", state.Phase)
		assert.Equal(t, 0, state.Moves)
		assert.Equal(t, int64(0), state.ElapsedMs)
		require.Len(t, state.Cells, 2)
		require.Len(t, state.Cells[0], 2)
		assert.False(t, state.Cells[0][0].East, "start cell opens east on this carve")
		assert.True(t, state.Cells[0][0].North, "boundary wall stays closed")
	})

	t.Run("state mirrors the sprint", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/sprint", "")
		require.Equal(t, http.StatusOK, w.Code)

		var state StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "idle", state.Phase)
	})

	t.Run("first accepted move starts the sprint", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/moves", `{"direction":"east"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var move MoveResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &move))
		assert.Equal(t, "moved_and_started", move.Outcome)
		assert.Equal(t, Position{Row: 0, Col: 1}, move.Position)
	})

	t.Run("reaching the goal completes the sprint", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/moves", `{"direction":"south"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var move MoveResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &move))
		assert.Equal(t, "moved_and_completed", move.Outcome)
		assert.Equal(t, Position{Row: 1, Col: 1}, move.Position)
	})

	t.Run("elapsed is pollable", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/sprint/elapsed", "")
		require.Equal(t, http.StatusOK, w.Code)

		var elapsed ElapsedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &elapsed))
		assert.GreaterOrEqual(t, elapsed.ElapsedMs, int64(0))
	})

	t.Run("unknown direction is a bad request", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/moves", `{"direction":"sideways"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing direction is a bad request", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/moves", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reset rewinds to a fresh maze", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/v1/sprint/reset", "")
		require.Equal(t, http.StatusOK, w.Code)

		var state StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "idle", state.Phase)
		assert.Equal(t, Position{Row: 0, Col: 0}, state.Position)
		assert.Equal(t, 0, state.Moves)
	})

	t.Run("end drops the sprint", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/v1/sprint", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(router, http.MethodGet, "/v1/sprint", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSprintRuns(t *testing.T) {
	playerID := uuid.New()
	repo := &runRepoStub{
		runs: []dmn.Run{
			{
				ID:         uuid.New(),
				PlayerID:   playerID,
				Username:   "maze_runner",
				Rows:       4,
				Cols:       4,
				Moves:      12,
				Millis:     8500,
				FinishedAt: time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	sc, err := NewSprintController(&managerStub{}, repo, &boardStub{})
	require.NoError(t, err)
	router := newTestRouter(sc, claimsFor(playerID, "maze_runner"))

	t.Run("lists recorded finishes", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/sprint/runs", "")
		require.Equal(t, http.StatusOK, w.Code)

		var runs []RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, 12, runs[0].Moves)
		assert.Equal(t, int64(8500), runs[0].Millis)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/sprint/runs?limit=ten", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaderboardRoute(t *testing.T) {
	board := &boardStub{
		entries: []dmn.LeaderboardEntry{
			{Rank: 1, Username: "speedy", Millis: 5500},
			{Rank: 2, Username: "maze_runner", Millis: 7000},
		},
		best: map[string]int64{"maze_runner": 7000},
	}

	sc, err := NewSprintController(&managerStub{}, &runRepoStub{}, board)
	require.NoError(t, err)

	t.Run("serves ranked entries without authentication", func(t *testing.T) {
		// No claims on purpose, the leaderboard is public.
		router := newTestRouter(sc, nil)
		w := doJSON(router, http.MethodGet, "/v1/leaderboard", "")
		require.Equal(t, http.StatusOK, w.Code)

		var entries []LeaderboardEntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "speedy", entries[0].Username)
		assert.Equal(t, int64(5500), entries[0].Millis)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		router := newTestRouter(sc, nil)
		w := doJSON(router, http.MethodGet, "/v1/leaderboard?limit=all", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("personal best for a ranked player", func(t *testing.T) {
		router := newTestRouter(sc, claimsFor(uuid.New(), "maze_runner"))
		w := doJSON(router, http.MethodGet, "/v1/leaderboard/me", "")
		require.Equal(t, http.StatusOK, w.Code)

		var best PersonalBestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &best))
		assert.Equal(t, "maze_runner", best.Username)
		assert.Equal(t, int64(7000), best.Millis)
	})

	t.Run("personal best without a finish is not found", func(t *testing.T) {
		router := newTestRouter(sc, claimsFor(uuid.New(), "never_finished"))
		w := doJSON(router, http.MethodGet, "/v1/leaderboard/me", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSprintClaims(t *testing.T) {
	sc, err := NewSprintController(&managerStub{}, &runRepoStub{}, &boardStub{})
	require.NoError(t, err)

	cases := []struct {
		name   string
		claims interface{}
	}{
		{name: "missing claims", claims: nil},
		{name: "claims with the wrong shape", claims: "not-a-map"},
		{name: "player ID that is not a uuid", claims: map[string]interface{}{
			"playerID": "not-a-uuid",
			"username": "maze_runner",
		}},
		{name: "missing username", claims: map[string]interface{}{
			"playerID": uuid.New().String(),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(sc, tc.claims)
			w := doJSON(router, http.MethodPost, "/v1/sprint", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestNewSprintController(t *testing.T) {
	t.Run("rejects nil dependencies", func(t *testing.T) {
		_, err := NewSprintController(nil, &runRepoStub{}, &boardStub{})
		assert.Error(t, err)

		_, err = NewSprintController(&managerStub{}, nil, &boardStub{})
		assert.Error(t, err)

		_, err = NewSprintController(&managerStub{}, &runRepoStub{}, nil)
		assert.Error(t, err)
	})
}
