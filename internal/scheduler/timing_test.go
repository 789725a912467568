package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimingFor(t *testing.T) {
	const rollover = 4

	t.Run("late night belongs to the previous day", func(t *testing.T) {
		night := TimingFor(time.Date(2026, 8, 23, 2, 0, 0, 0, time.UTC), rollover)
		yesterday := TimingFor(time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC), rollover)

		assert.Equal(t, yesterday.Today, night.Today)
		assert.Equal(t, time.Date(2026, 8, 23, 4, 0, 0, 0, time.UTC), night.Cutoff)
	})

	t.Run("morning after rollover starts a new day", func(t *testing.T) {
		morning := TimingFor(time.Date(2026, 8, 23, 5, 0, 0, 0, time.UTC), rollover)
		previous := TimingFor(time.Date(2026, 8, 23, 2, 0, 0, 0, time.UTC), rollover)

		assert.Equal(t, previous.Today+1, morning.Today)
		assert.Equal(t, time.Date(2026, 8, 24, 4, 0, 0, 0, time.UTC), morning.Cutoff)
	})

	t.Run("cutoff is always after now", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			now := time.Date(2026, 8, 23, hour, 30, 0, 0, time.UTC)
			timing := TimingFor(now, rollover)
			assert.True(t, timing.Cutoff.After(now), "hour %d", hour)
		}
	})

	t.Run("midnight rollover matches calendar days", func(t *testing.T) {
		a := TimingFor(time.Date(2026, 8, 22, 23, 59, 0, 0, time.UTC), 0)
		b := TimingFor(time.Date(2026, 8, 23, 0, 1, 0, 0, time.UTC), 0)
		assert.Equal(t, a.Today+1, b.Today)
	})
}
