package watering

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sprout/internal/aptitude"
)

// Options wires a Machine to its collaborators.
type Options struct {
	// Scheduler runs the timed transitions. Required.
	Scheduler Scheduler

	// Presentation receives state notifications. Defaults to NopPresentation.
	Presentation Presentation

	// Profile receives the derived scores at the end of a session.
	// When nil, scores are computed but not stored.
	Profile ProfileStore

	// Results records finished sessions (optional).
	Results ResultRecorder

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Session is a snapshot of the live challenge state.
type Session struct {
	ID                string
	Stage             int
	LivesRemaining    int
	IndicatorPosition float64
	Phase             Phase
	IsHeld            bool
	Counters          Counters
}

// event is an input or timer expiry fed into the transition table.
type event int

const (
	evPress          event = iota // player pressed
	evRelease                     // player released or auto-release
	evEvaluated                   // evaluation delay elapsed
	evGrown                       // growth animation finished
	evBloomed                     // victory delay elapsed
	evFailureShown                // failure banner delay elapsed
	evWithered                    // wither delay elapsed
)

func (e event) String() string {
	switch e {
	case evPress:
		return "press"
	case evRelease:
		return "release"
	case evEvaluated:
		return "evaluated"
	case evGrown:
		return "grown"
	case evBloomed:
		return "bloomed"
	case evFailureShown:
		return "failure_shown"
	case evWithered:
		return "withered"
	default:
		return "unknown"
	}
}

// Machine runs one watering challenge. It is not safe for concurrent use:
// commands and timer callbacks must all arrive on one goroutine.
type Machine struct {
	cfg     Config
	sched   Scheduler
	present Presentation
	profile ProfileStore
	results ResultRecorder
	now     func() time.Time
	log     *slog.Logger

	sess    Session
	canAct  bool
	pending Timer
	outcome Outcome

	// epoch invalidates timer callbacks queued before a Restart or Leave.
	epoch  uint64
	closed bool
}

// New validates cfg and builds a Machine in the Idle phase.
func New(cfg Config, opts Options) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New("watering: scheduler is required")
	}

	m := &Machine{
		cfg:     cfg,
		sched:   opts.Scheduler,
		present: opts.Presentation,
		profile: opts.Profile,
		results: opts.Results,
		now:     opts.Clock,
		log:     opts.Logger,
	}
	if m.present == nil {
		m.present = NopPresentation{}
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m.reset()
	return m, nil
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() Config {
	return m.cfg
}

// Session returns a copy of the current session state.
func (m *Machine) Session() Session {
	return m.sess
}

// Press starts a charge. Ignored unless the machine is Idle and ready.
func (m *Machine) Press() {
	m.handle(evPress)
}

// Release stops the charge and evaluates the indicator position.
// Ignored unless the machine is Charging.
func (m *Machine) Release() {
	m.handle(evRelease)
}

// Tick advances the indicator by dt while charging. Ignored in every other
// phase. Reaching the end of the bar releases automatically.
func (m *Machine) Tick(dt time.Duration) {
	if m.closed || m.sess.Phase != PhaseCharging || !m.sess.IsHeld {
		return
	}

	prev := m.sess.IndicatorPosition
	pos, reachedEnd := Advance(prev, dt, m.cfg.IndicatorSpeed)
	m.sess.IndicatorPosition = pos
	if pos != prev {
		m.present.IndicatorMoved(pos)
	}
	if reachedEnd {
		m.log.Debug("indicator reached end, auto-release", "position", pos)
		m.handle(evRelease)
	}
}

// Restart cancels any pending transition and starts a fresh session.
// Partial scores are discarded.
func (m *Machine) Restart() {
	if m.closed {
		return
	}
	m.cancelPending()
	m.reset()

	m.present.PhaseChanged(m.sess.Phase)
	m.present.StageChanged(m.sess.Stage)
	m.present.LivesChanged(m.sess.LivesRemaining)
	m.present.IndicatorMoved(m.sess.IndicatorPosition)
}

// Leave cancels any pending transition and stops accepting commands.
// Called when the player navigates away from the challenge.
func (m *Machine) Leave() {
	if m.closed {
		return
	}
	m.cancelPending()
	m.closed = true
	m.log.Debug("session left", "session", m.sess.ID, "phase", m.sess.Phase)
}

// handle is the transition table. Each phase lists the events it reacts
// to; everything else is a spurious event and is dropped.
func (m *Machine) handle(ev event) {
	if m.closed {
		return
	}

	from := m.sess.Phase
	switch from {
	case PhaseIdle:
		switch ev {
		case evPress:
			if !m.canAct || IsExhausted(m.sess.LivesRemaining) {
				return
			}
			m.startCharging()
		default:
			return
		}

	case PhaseCharging:
		switch ev {
		case evRelease:
			m.evaluate()
		default:
			return
		}

	case PhaseEvaluating:
		switch ev {
		case evEvaluated:
			m.resolve()
		default:
			return
		}

	case PhaseGrowing:
		switch ev {
		case evGrown:
			m.grow()
		case evBloomed:
			m.finish(PhaseVictory)
		default:
			return
		}

	case PhaseFailing:
		switch ev {
		case evFailureShown:
			if IsExhausted(m.sess.LivesRemaining) {
				m.after(m.cfg.WitherDelay, evWithered)
				return
			}
			m.enterIdle()
		case evWithered:
			m.finish(PhaseGameOver)
		default:
			return
		}

	case PhaseVictory, PhaseGameOver:
		return
	}

	if m.sess.Phase != from {
		m.log.Debug("transition", "session", m.sess.ID, "event", ev, "from", from, "to", m.sess.Phase)
	}
}

func (m *Machine) startCharging() {
	m.canAct = false
	m.sess.IsHeld = true
	m.sess.IndicatorPosition = ResetPosition
	m.setPhase(PhaseCharging)
	m.present.IndicatorMoved(m.sess.IndicatorPosition)
}

func (m *Machine) evaluate() {
	m.sess.IsHeld = false
	m.outcome = Classify(m.sess.IndicatorPosition, m.cfg.Zones)
	m.setPhase(PhaseEvaluating)
	m.after(m.cfg.EvaluationDelay, evEvaluated)
}

func (m *Machine) resolve() {
	attempt := Attempt{Position: m.sess.IndicatorPosition, Outcome: m.outcome}
	m.sess.Counters.Record(attempt.Outcome)
	m.present.Outcome(attempt.Outcome)
	m.log.Debug("attempt", "session", m.sess.ID, "position", attempt.Position, "outcome", attempt.Outcome)

	if attempt.Outcome.Succeeded() {
		m.setPhase(PhaseGrowing)
		m.after(m.cfg.SuccessMessageDelay+m.cfg.GrowthAnimationDuration, evGrown)
		return
	}

	m.sess.LivesRemaining = ConsumeLife(m.sess.LivesRemaining)
	m.present.LivesChanged(m.sess.LivesRemaining)
	m.setPhase(PhaseFailing)
	m.after(m.cfg.FailureDelay, evFailureShown)
}

func (m *Machine) grow() {
	m.sess.Stage = NextStage(m.sess.Stage, m.cfg.StageCount)
	m.present.StageChanged(m.sess.Stage)

	if IsGrown(m.sess.Stage, m.cfg.StageCount) {
		m.after(m.cfg.VictoryDelay, evBloomed)
		return
	}
	m.enterIdle()
}

func (m *Machine) enterIdle() {
	m.canAct = true
	m.setPhase(PhaseIdle)
}

// finish enters a terminal phase, pushes the derived scores and notifies
// the presentation.
func (m *Machine) finish(terminal Phase) {
	m.canAct = false
	m.sess.IsHeld = false
	m.sess.Counters.EndedAt = m.now()
	m.setPhase(terminal)

	elapsed := m.sess.Counters.EndedAt.Sub(m.sess.Counters.StartedAt)
	scores := Finalize(m.sess.Counters, elapsed, m.sess.Stage, m.cfg.StageCount, m.cfg.PatienceBaseline)
	m.pushScores(scores)

	if terminal == PhaseVictory {
		m.present.Victory()
	} else {
		m.present.GameOver()
	}
}

// pushScores forwards each derived score as an additive delta.
// Store failures are logged; the session outcome stands regardless.
func (m *Machine) pushScores(scores aptitude.Scores) {
	ctx := context.Background()
	log := m.log.With("session", m.sess.ID)

	if m.profile != nil {
		for _, amount := range []float64{scores.Precision, scores.Patience, scores.Persistence} {
			if err := m.profile.AddAptitudeScore(ctx, m.cfg.Area, amount); err != nil {
				log.Warn("add aptitude score failed", "area", m.cfg.Area, "amount", amount, "err", err)
			}
		}

		if tr, ok := m.profile.(TraitRecorder); ok {
			if err := tr.AddTraitScore(ctx, aptitude.Patience, scores.Patience); err != nil {
				log.Warn("add trait score failed", "trait", aptitude.Patience, "err", err)
			}
			if err := tr.AddTraitScore(ctx, aptitude.AttentionToDetail, scores.Precision); err != nil {
				log.Warn("add trait score failed", "trait", aptitude.AttentionToDetail, "err", err)
			}
		}
	}

	if m.results != nil {
		err := m.results.RecordResult(ctx, Result{
			SessionID:  m.sess.ID,
			Victory:    m.sess.Phase == PhaseVictory,
			FinalStage: m.sess.Stage,
			StageCount: m.cfg.StageCount,
			LivesLeft:  m.sess.LivesRemaining,
			Counters:   m.sess.Counters,
			Scores:     scores,
		})
		if err != nil {
			log.Warn("record result failed", "err", err)
		}
	}

	log.Info("challenge finished",
		"phase", m.sess.Phase,
		"attempts", m.sess.Counters.TotalAttempts,
		"precision", scores.Precision,
		"patience", scores.Patience,
		"persistence", scores.Persistence,
	)
}

// after schedules ev once d has elapsed. Only one timer is pending at a
// time because transitions are strictly sequential.
func (m *Machine) after(d time.Duration, ev event) {
	epoch := m.epoch
	m.pending = m.sched.After(d, func() {
		if m.closed || epoch != m.epoch {
			return
		}
		m.pending = nil
		m.handle(ev)
	})
}

func (m *Machine) cancelPending() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	m.epoch++
}

func (m *Machine) setPhase(p Phase) {
	m.sess.Phase = p
	m.present.PhaseChanged(p)
}

// reset restores construction defaults for a new session.
func (m *Machine) reset() {
	m.sess = Session{
		ID:                uuid.New().String(),
		Stage:             0,
		LivesRemaining:    m.cfg.MaxLives,
		IndicatorPosition: ResetPosition,
		Phase:             PhaseIdle,
		Counters:          Counters{StartedAt: m.now()},
	}
	m.outcome = OutcomeBad
	m.canAct = true
}
