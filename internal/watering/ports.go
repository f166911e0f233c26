package watering

import (
	"context"
	"time"

	"github.com/abhisek/sprout/internal/aptitude"
)

// Presentation receives fire-and-forget notifications about the session.
// Implementations must not call back into the Machine synchronously.
type Presentation interface {
	PhaseChanged(phase Phase)
	StageChanged(stage int)
	IndicatorMoved(position float64)
	LivesChanged(remaining int)
	Outcome(outcome Outcome)
	Victory()
	GameOver()
}

// ProfileStore accumulates aptitude points across all mini-games.
// Amounts are additive deltas and are never overwritten.
type ProfileStore interface {
	AddAptitudeScore(ctx context.Context, area aptitude.Area, amount float64) error
}

// TraitRecorder is optionally implemented by a ProfileStore that also keeps
// per-trait totals.
type TraitRecorder interface {
	AddTraitScore(ctx context.Context, trait aptitude.Trait, amount float64) error
}

// ResultRecorder keeps a history of finished challenges.
type ResultRecorder interface {
	RecordResult(ctx context.Context, result Result) error
}

// Result summarizes a finished session for history.
type Result struct {
	SessionID  string
	Victory    bool
	FinalStage int
	StageCount int
	LivesLeft  int
	Counters   Counters
	Scores     aptitude.Scores
}

// Timer is a cancellable one-shot suspension.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// Scheduler creates one-shot timers. Callbacks must run on the same
// goroutine that drives the Machine.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// NopPresentation ignores every notification.
type NopPresentation struct{}

func (NopPresentation) PhaseChanged(Phase)     {}
func (NopPresentation) StageChanged(int)       {}
func (NopPresentation) IndicatorMoved(float64) {}
func (NopPresentation) LivesChanged(int)       {}
func (NopPresentation) Outcome(Outcome)        {}
func (NopPresentation) Victory()               {}
func (NopPresentation) GameOver()              {}
