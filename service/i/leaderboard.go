package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
)

// Leaderboard ranks players by their best sprint time, fastest first.
type Leaderboard interface {
	// SubmitTime records millis as the player's best when it beats the
	// stored one, reporting whether it did.
	SubmitTime(ctx context.Context, username string, millis int64) (bool, error)

	// Top returns the n fastest entries.
	Top(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error)

	// PersonalBest returns the player's best time in milliseconds. found is
	// false when the player has no recorded finish.
	PersonalBest(ctx context.Context, username string) (millis int64, found bool, err error)
}
