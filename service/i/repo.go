package i

import (
	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// RunRepo defines the interface for completed sprint persistence.
type RunRepo interface {
	// Save inserts a finished run. Runs are immutable once recorded.
	Save(run *dmn.Run) error

	// ByPlayer retrieves the player's most recent runs, newest first,
	// capped at limit.
	ByPlayer(playerID uuid.UUID, limit int64) ([]dmn.Run, error)
}
