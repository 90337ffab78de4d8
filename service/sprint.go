package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultRows = 20
	defaultCols = 20

	persistTimeout = 2 * time.Second
)

// ErrNoActiveSprint is returned for players without a sprint in progress.
var ErrNoActiveSprint = errors.New("player has no active sprint")

type sprintSession struct {
	controller *game.Controller
	username   string
	mu         sync.Mutex
}

// SprintManager owns every active sprint, one per player, and is the sole
// writer of their game controllers. The embedded RWMutex guards the session
// map; each session carries its own lock, so moves from different players do
// not contend.
type SprintManager struct {
	sessions map[uuid.UUID]*sprintSession
	rows     int
	cols     int
	carver   maze.Generator
	runRepo  i.RunRepo
	board    i.Leaderboard
	metrics  i.SprintMetrics
	logger   i.Logger
	sync.RWMutex
}

// Config holds SprintManager dependencies. Rows and Cols fall back to the
// default 20x20 when zero. Carver, RunRepo, Leaderboard and Metrics are
// optional; Logger is not. Without a Carver every sprint carves with its own
// time-seeded backtracker.
type Config struct {
	Rows        int
	Cols        int
	Carver      maze.Generator
	RunRepo     i.RunRepo
	Leaderboard i.Leaderboard
	Metrics     i.SprintMetrics
	Logger      i.Logger
}

// NewSprintManager validates c and returns an empty manager.
func NewSprintManager(c *Config) (*SprintManager, error) {
	if c.Logger == nil {
		return nil, errors.New("sprint manager requires a logger")
	}

	rows, cols := c.Rows, c.Cols
	if rows == 0 {
		rows = defaultRows
	}
	if cols == 0 {
		cols = defaultCols
	}
	if rows < 1 || cols < 1 {
		return nil, maze.ErrInvalidDimensions
	}

	return &SprintManager{
		sessions: make(map[uuid.UUID]*sprintSession),
		rows:     rows,
		cols:     cols,
		carver:   c.Carver,
		runRepo:  c.RunRepo,
		board:    c.Leaderboard,
		metrics:  c.Metrics,
		logger:   c.Logger,
	}, nil
}

// StartSprint carves a fresh maze for the player. Any sprint already in
// progress is discarded, timer and all.
func (m *SprintManager) StartSprint(playerID uuid.UUID, username string) (game.Snapshot, error) {
	controller, err := game.NewController(game.Config{
		Rows:       m.rows,
		Cols:       m.cols,
		Carver:     m.carver,
		OnComplete: m.completionHandler(playerID, username),
	})
	if err != nil {
		return game.Snapshot{}, err
	}

	session := &sprintSession{controller: controller, username: username}
	snapshot := controller.Snapshot()

	m.Lock()
	m.sessions[playerID] = session
	m.Unlock()

	if m.metrics != nil {
		m.metrics.SprintStarted()
	}
	m.logger.Info(fmt.Sprintf("started %dx%d sprint for player %s", m.rows, m.cols, playerID))
	return snapshot, nil
}

// Move forwards one directional input to the player's sprint. Completion
// side effects, persisting the run and updating the leaderboard, run inside
// this call.
func (m *SprintManager) Move(playerID uuid.UUID, dir maze.Direction) (game.MoveResult, error) {
	session, err := m.session(playerID)
	if err != nil {
		return game.MoveResult{}, err
	}

	session.mu.Lock()
	result := session.controller.RequestMove(dir)
	session.mu.Unlock()

	if m.metrics != nil {
		m.metrics.MoveObserved(result.Outcome.String())
	}
	return result, nil
}

// Reset discards the player's maze mid-sprint and carves a new one of the
// same size, with the player back on the start cell and the clock unwound.
func (m *SprintManager) Reset(playerID uuid.UUID) (game.Snapshot, error) {
	session, err := m.session(playerID)
	if err != nil {
		return game.Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.controller.Reset(); err != nil {
		return game.Snapshot{}, err
	}

	if m.metrics != nil {
		m.metrics.SprintStarted()
	}
	m.logger.Info(fmt.Sprintf("reset sprint for player %s", playerID))
	return session.controller.Snapshot(), nil
}

// State returns the full observable state of the player's sprint.
func (m *SprintManager) State(playerID uuid.UUID) (game.Snapshot, error) {
	session, err := m.session(playerID)
	if err != nil {
		return game.Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.controller.Snapshot(), nil
}

// Elapsed returns the sprint timer without copying the grid.
func (m *SprintManager) Elapsed(playerID uuid.UUID) (time.Duration, error) {
	session, err := m.session(playerID)
	if err != nil {
		return 0, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.controller.CurrentElapsed(), nil
}

// EndSprint drops the player's sprint. Unfinished runs leave no trace.
func (m *SprintManager) EndSprint(playerID uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.sessions[playerID]; !ok {
		return ErrNoActiveSprint
	}

	delete(m.sessions, playerID)
	m.logger.Info(fmt.Sprintf("ended sprint for player %s", playerID))
	return nil
}

func (m *SprintManager) session(playerID uuid.UUID) (*sprintSession, error) {
	m.RLock()
	defer m.RUnlock()
	session, ok := m.sessions[playerID]
	if !ok {
		return nil, ErrNoActiveSprint
	}
	return session, nil
}

// completionHandler builds the callback that runs as part of the winning
// move: record the run, offer the time to the leaderboard, count the finish.
// Persistence failures are logged and swallowed; the player still gets their
// completion.
func (m *SprintManager) completionHandler(playerID uuid.UUID, username string) game.CompletionHandler {
	return func(e game.CompletionEvent) {
		if m.metrics != nil {
			m.metrics.SprintCompleted(e.Elapsed)
		}

		if m.runRepo != nil {
			run := dmn.NewRun(dmn.RunConfig{
				PlayerID: playerID,
				Username: username,
				Rows:     e.Rows,
				Cols:     e.Cols,
				Moves:    e.Moves,
				Elapsed:  e.Elapsed,
			})
			if err := m.runRepo.Save(run); err != nil {
				m.logger.Error(fmt.Sprintf("saving run for player %s: %s", playerID, err))
			}
		}

		if m.board != nil {
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			defer cancel()
			improved, err := m.board.SubmitTime(ctx, username, e.Elapsed.Milliseconds())
			if err != nil {
				m.logger.Error(fmt.Sprintf("submitting time for player %s: %s", playerID, err))
			} else if improved {
				m.logger.Info(fmt.Sprintf("new personal best for %s: %dms", username, e.Elapsed.Milliseconds()))
			}
		}

		m.logger.Info(fmt.Sprintf("player %s finished %dx%d sprint in %s with %d moves",
			username, e.Rows, e.Cols, e.Elapsed, e.Moves))
	}
}
