package i

import (
	"time"

	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/google/uuid"
)

// SprintManager manages the active maze sprints, one per player.
type SprintManager interface {
	// StartSprint carves a fresh maze for the player, replacing any sprint
	// already in progress.
	StartSprint(playerID uuid.UUID, username string) (game.Snapshot, error)

	// Move forwards one directional input to the player's sprint.
	Move(playerID uuid.UUID, dir maze.Direction) (game.MoveResult, error)

	// Reset discards the player's maze mid-sprint and carves a new one of
	// the same size.
	Reset(playerID uuid.UUID) (game.Snapshot, error)

	// State returns the full observable state of the player's sprint.
	State(playerID uuid.UUID) (game.Snapshot, error)

	// Elapsed returns the sprint timer without copying the grid, cheap
	// enough for high-rate polling.
	Elapsed(playerID uuid.UUID) (time.Duration, error)

	// EndSprint drops the player's sprint.
	EndSprint(playerID uuid.UUID) error
}
