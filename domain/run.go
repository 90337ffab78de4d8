package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is the record of one completed maze sprint.
type Run struct {
	ID         uuid.UUID `bson:"_id"`
	PlayerID   uuid.UUID `bson:"playerId"`
	Username   string    `bson:"username"`
	Rows       int       `bson:"rows"`
	Cols       int       `bson:"cols"`
	Moves      int       `bson:"moves"`
	Millis     int64     `bson:"millis"`
	FinishedAt time.Time `bson:"finishedAt"`
}

// RunConfig holds parameters for recording a completed sprint.
type RunConfig struct {
	PlayerID uuid.UUID
	Username string
	Rows     int
	Cols     int
	Moves    int
	Elapsed  time.Duration
}

// NewRun creates a Run record from a finished sprint.
func NewRun(config RunConfig) *Run {
	return &Run{
		ID:         uuid.New(),
		PlayerID:   config.PlayerID,
		Username:   config.Username,
		Rows:       config.Rows,
		Cols:       config.Cols,
		Moves:      config.Moves,
		Millis:     config.Elapsed.Milliseconds(),
		FinishedAt: time.Now().UTC(),
	}
}

// Duration returns the sprint time as a duration.
func (r *Run) Duration() time.Duration {
	return time.Duration(r.Millis) * time.Millisecond
}

// LeaderboardEntry is one ranked best time, fastest first.
type LeaderboardEntry struct {
	Rank     int64
	Username string
	Millis   int64
}
