package game

import "time"

// RunClock is the start/stop bookkeeping for a single sprint. Clocks are not
// reused; every reset builds a fresh one.
type RunClock struct {
	startedAt time.Time
	frozen    time.Duration
	running   bool
	now       func() time.Time
}

// NewRunClock returns a stopped clock that has never started.
func NewRunClock() *RunClock {
	return &RunClock{now: time.Now}
}

// Start records the current instant. Calling it while running is a no-op, so
// only the first accepted move winds the clock.
func (c *RunClock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.startedAt = c.now()
}

// Stop freezes the elapsed duration. Calling it while stopped is a no-op.
func (c *RunClock) Stop() {
	if !c.running {
		return
	}
	c.frozen = c.now().Sub(c.startedAt)
	c.running = false
}

// Elapsed returns zero for a clock that never started, the live duration
// while running, and the frozen duration after Stop. It is safe to poll at
// any rate.
func (c *RunClock) Elapsed() time.Duration {
	if c.running {
		return c.now().Sub(c.startedAt)
	}
	return c.frozen
}

// Running reports whether the clock is ticking.
func (c *RunClock) Running() bool {
	return c.running
}
