package watering

import (
	"math"
	"sort"
	"time"
)

// ManualScheduler is a Scheduler on a virtual clock. Time only moves when
// Advance is called, which makes timed transitions deterministic.
type ManualScheduler struct {
	now    time.Duration
	nextID int
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	id      int
	due     time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// NewManualScheduler creates a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After schedules fn to run once the clock has advanced by d.
func (s *ManualScheduler) After(d time.Duration, fn func()) Timer {
	s.nextID++
	t := &manualTimer{s: s, id: s.nextID, due: s.now + max(d, 0), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that becomes
// due, in due-time order. Timers scheduled by a callback fire in the same
// call when they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + max(d, 0)
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		t.stopped = true
		s.remove(t)
		t.fn()
	}
	s.now = target
}

// RunPending advances the clock until no timers remain.
// Returns the total virtual time that elapsed.
func (s *ManualScheduler) RunPending() time.Duration {
	start := s.now
	for {
		t := s.nextDue(time.Duration(math.MaxInt64))
		if t == nil {
			break
		}
		s.Advance(t.due - s.now)
	}
	return s.now - start
}

// Pending returns the number of timers waiting to fire.
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

// Now returns the virtual elapsed time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].id < s.timers[j].id
	})
	if s.timers[0].due > target {
		return nil
	}
	return s.timers[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, other := range s.timers {
		if other == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
