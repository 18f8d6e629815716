package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	assert.False(t, actual.Before(before.Add(-time.Millisecond)) || actual.After(after.Add(time.Millisecond)),
		"RealClock.Now() returned %v, expected between %v and %v", actual, before, after)
	assert.Equal(t, time.UTC, actual.Location())
}

func TestFakeClock(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("returns fixed time", func(t *testing.T) {
		clock := NewFakeClock(fixed)
		assert.True(t, clock.Now().Equal(fixed))
		assert.True(t, clock.Now().Equal(fixed), "without a step the time stays put")
	})

	t.Run("advance", func(t *testing.T) {
		clock := NewFakeClock(fixed)
		clock.Advance(2 * time.Hour)
		assert.True(t, clock.Now().Equal(fixed.Add(2*time.Hour)))
	})

	t.Run("step and since", func(t *testing.T) {
		clock := NewFakeClock(fixed)
		clock.SetStep(250 * time.Millisecond)

		start := clock.Now()
		assert.Equal(t, 250*time.Millisecond, Since(clock, start))
	})

	t.Run("normalises to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		clock := NewFakeClock(time.Date(2024, 1, 15, 12, 30, 0, 0, loc))
		assert.Equal(t, time.UTC, clock.Now().Location())
	})
}
