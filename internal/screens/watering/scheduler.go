package watering

import (
	"time"

	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/sprout/internal/watering"
)

// teaScheduler turns machine timers into tea.Tick commands. Callbacks run
// inside Update, on the program's single event goroutine.
type teaScheduler struct {
	nextID int
	timers map[int]func()
	queue  []tea.Cmd
}

var _ core.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[int]func())}
}

type teaTimer struct {
	s  *teaScheduler
	id int
}

func (t teaTimer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}

func (s *teaScheduler) After(d time.Duration, fn func()) core.Timer {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.queue = append(s.queue, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{owner: s, id: id}
	}))
	return teaTimer{s: s, id: id}
}

// fire runs the callback for id. Stopped or unknown timers are ignored.
func (s *teaScheduler) fire(id int) bool {
	fn, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	fn()
	return true
}

// drain returns the tick commands queued since the last call.
func (s *teaScheduler) drain() []tea.Cmd {
	q := s.queue
	s.queue = nil
	return q
}

func (s *teaScheduler) stopAll() {
	clear(s.timers)
	s.queue = nil
}
