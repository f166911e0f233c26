package watering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_FiresInOrder(t *testing.T) {
	s := NewManualScheduler()
	var fired []string

	s.After(300*time.Millisecond, func() { fired = append(fired, "c") })
	s.After(100*time.Millisecond, func() { fired = append(fired, "a") })
	s.After(100*time.Millisecond, func() { fired = append(fired, "b") })

	s.Advance(50 * time.Millisecond)
	assert.Empty(t, fired)

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 150*time.Millisecond, s.Now())

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestManualScheduler_Stop(t *testing.T) {
	s := NewManualScheduler()
	fired := false

	timer := s.After(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	s.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualScheduler_StopAfterFire(t *testing.T) {
	s := NewManualScheduler()
	timer := s.After(time.Millisecond, func() {})
	s.Advance(time.Millisecond)
	assert.False(t, timer.Stop())
}

func TestManualScheduler_ChainedTimers(t *testing.T) {
	s := NewManualScheduler()
	var at []time.Duration

	s.After(time.Second, func() {
		at = append(at, s.Now())
		s.After(time.Second, func() { at = append(at, s.Now()) })
	})

	s.Advance(3 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
	assert.Equal(t, 3*time.Second, s.Now())
}

func TestManualScheduler_RunPending(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	s.After(time.Second, func() {
		count++
		s.After(500*time.Millisecond, func() { count++ })
	})

	elapsed := s.RunPending()
	assert.Equal(t, 2, count)
	assert.Equal(t, 1500*time.Millisecond, elapsed)
	assert.Equal(t, 0, s.Pending())
}
