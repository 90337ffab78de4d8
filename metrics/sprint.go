// Package metrics exposes Prometheus collectors for sprint activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sprint holds the collectors the sprint manager feeds.
// Implements i.SprintMetrics.
type Sprint struct {
	started   prometheus.Counter
	completed prometheus.Counter
	moves     *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewSprint builds the sprint collectors and registers them on reg.
func NewSprint(reg prometheus.Registerer) *Sprint {
	s := &Sprint{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maze_sprints_started_total",
			Help: "Total number of sprints started, resets included.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maze_sprints_completed_total",
			Help: "Total number of sprints that reached the goal.",
		}),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maze_moves_total",
				Help: "Total number of move requests by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_sprint_duration_seconds",
			Help:    "Duration of completed sprints.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
		}),
	}
	reg.MustRegister(s.started, s.completed, s.moves, s.duration)
	return s
}

// SprintStarted counts a freshly carved sprint.
func (s *Sprint) SprintStarted() {
	s.started.Inc()
}

// SprintCompleted counts a finish and observes its duration.
func (s *Sprint) SprintCompleted(elapsed time.Duration) {
	s.completed.Inc()
	s.duration.Observe(elapsed.Seconds())
}

// MoveObserved counts one move request by outcome.
func (s *Sprint) MoveObserved(outcome string) {
	s.moves.WithLabelValues(outcome).Inc()
}
