package i

import "time"

// SprintMetrics records sprint activity for monitoring.
type SprintMetrics interface {
	// SprintStarted counts a freshly carved sprint.
	SprintStarted()

	// SprintCompleted counts a finished sprint and observes its duration.
	SprintCompleted(elapsed time.Duration)

	// MoveObserved counts one move request by its outcome.
	MoveObserved(outcome string)
}
