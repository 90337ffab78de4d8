package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunClock(t *testing.T) {
	current := time.Unix(1700000000, 0)
	clock := NewRunClock()
	clock.now = func() time.Time { return current }

	t.Run("never started reads zero", func(t *testing.T) {
		assert.False(t, clock.Running())
		assert.Equal(t, time.Duration(0), clock.Elapsed())
	})

	t.Run("running clock tracks the live duration", func(t *testing.T) {
		clock.Start()
		current = current.Add(3 * time.Second)

		assert.True(t, clock.Running())
		assert.Equal(t, 3*time.Second, clock.Elapsed())
	})

	t.Run("second start does not rewind the origin", func(t *testing.T) {
		clock.Start()
		current = current.Add(2 * time.Second)

		assert.Equal(t, 5*time.Second, clock.Elapsed())
	})

	t.Run("stop freezes the duration", func(t *testing.T) {
		clock.Stop()
		current = current.Add(4 * time.Second)

		assert.False(t, clock.Running())
		assert.Equal(t, 5*time.Second, clock.Elapsed())
	})

	t.Run("second stop keeps the frozen value", func(t *testing.T) {
		clock.Stop()

		assert.Equal(t, 5*time.Second, clock.Elapsed())
	})
}
