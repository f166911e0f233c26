// Package watering is the terminal front end of the plant watering
// challenge.
package watering

import (
	"io"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/audio"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/layout"
	core "github.com/abhisek/sprout/internal/watering"
)

// frameInterval is the indicator refresh rate while charging.
const frameInterval = time.Second / 60

// Deps are the collaborators of the watering screen. Every field is
// optional.
type Deps struct {
	Profile core.ProfileStore
	Results core.ResultRecorder
	Sound   audio.Sink
	Logger  *slog.Logger
	Clock   func() time.Time
}

type keyMap struct {
	Water   key.Binding
	Restart key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Water:   key.NewBinding(key.WithKeys("space", " "), key.WithHelp("Space", "Water")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Restart")),
	}
}

// Screen runs one watering challenge. It implements core.Presentation and
// keeps its own copy of what the machine last reported.
type Screen struct {
	machine *core.Machine
	sched   *teaScheduler
	sound   audio.Sink
	now     func() time.Time
	keys    keyMap
	cfg     core.Config

	phase    core.Phase
	stage    int
	lives    int
	position float64
	outcome  core.Outcome
	shown    bool // an outcome banner is showing

	frameGen  int
	lastFrame time.Time
	cmds      []tea.Cmd
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Leaver = (*Screen)(nil)
var _ core.Presentation = (*Screen)(nil)

// New builds the screen and its machine. cfg is validated by the machine.
func New(cfg core.Config, deps Deps) (*Screen, error) {
	s := &Screen{
		sched: newTeaScheduler(),
		sound: deps.Sound,
		now:   deps.Clock,
		keys:  defaultKeys(),
		cfg:   cfg,
	}
	if s.sound == nil {
		s.sound = audio.Silent{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m, err := core.New(cfg, core.Options{
		Scheduler:    s.sched,
		Presentation: s,
		Profile:      deps.Profile,
		Results:      deps.Results,
		Clock:        s.now,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	s.machine = m

	sess := m.Session()
	s.phase = sess.Phase
	s.stage = sess.Stage
	s.lives = sess.LivesRemaining
	s.position = sess.IndicatorPosition
	return s, nil
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Water the Plant"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	switch s.phase {
	case core.PhaseIdle:
		hints = append(hints, hint(s.keys.Water, "Start pouring"))
	case core.PhaseCharging:
		hints = append(hints, hint(s.keys.Water, "Stop pouring"))
	}
	hints = append(hints, hint(s.keys.Restart, ""), layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func hint(b key.Binding, desc string) layout.KeyHint {
	h := b.Help()
	if desc == "" {
		desc = h.Desc
	}
	return layout.KeyHint{Key: h.Key, Description: desc}
}

// Leave cancels every pending timer. Called when the screen is popped.
func (s *Screen) Leave() {
	s.machine.Leave()
	s.sched.stopAll()
	s.frameGen++
	s.cmds = nil
}

// Session exposes the machine state for rendering and tests.
func (s *Screen) Session() core.Session {
	return s.machine.Session()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if msg.owner == s.sched {
			s.sched.fire(msg.id)
		}

	case frameMsg:
		if msg.owner == s && msg.gen == s.frameGen && s.phase == core.PhaseCharging {
			s.machine.Tick(msg.at.Sub(s.lastFrame))
			s.lastFrame = msg.at
			if s.phase == core.PhaseCharging {
				s.cmds = append(s.cmds, s.frameCmd())
			}
		}

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Water):
			// Auto-repeat of a held key keeps pouring.
			if !msg.IsRepeat {
				s.toggleWater()
			}
		case key.Matches(msg, s.keys.Restart):
			s.machine.Restart()
		}

	case tea.KeyReleaseMsg:
		if key.Matches(msg, s.keys.Water) && s.phase == core.PhaseCharging {
			s.machine.Release()
		}
	}

	return s, s.flush()
}

// toggleWater starts pouring from Idle and stops it while charging. A second
// press releases on terminals that never report key releases.
func (s *Screen) toggleWater() {
	switch s.phase {
	case core.PhaseIdle:
		s.lastFrame = s.now()
		s.machine.Press()
	case core.PhaseCharging:
		s.machine.Release()
	}
}

func (s *Screen) frameCmd() tea.Cmd {
	gen := s.frameGen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{owner: s, gen: gen, at: t}
	})
}

// flush batches the commands queued by the machine and the presentation.
func (s *Screen) flush() tea.Cmd {
	cmds := append(s.cmds, s.sched.drain()...)
	s.cmds = nil
	return tea.Batch(cmds...)
}

// PhaseChanged implements core.Presentation.
func (s *Screen) PhaseChanged(p core.Phase) {
	s.phase = p
	switch p {
	case core.PhaseCharging:
		s.shown = false
		s.frameGen++
		s.cmds = append(s.cmds, s.frameCmd())
		s.sound.Play(audio.CueWatering)
	case core.PhaseIdle:
		s.shown = false
	}
}

// StageChanged implements core.Presentation.
func (s *Screen) StageChanged(stage int) {
	if stage > s.stage {
		s.sound.Play(audio.CueGrowth)
	}
	s.stage = stage
}

// IndicatorMoved implements core.Presentation.
func (s *Screen) IndicatorMoved(pos float64) {
	s.position = pos
}

// LivesChanged implements core.Presentation.
func (s *Screen) LivesChanged(remaining int) {
	s.lives = remaining
}

// Outcome implements core.Presentation.
func (s *Screen) Outcome(o core.Outcome) {
	s.outcome = o
	s.shown = true
	if o.Succeeded() {
		s.sound.Play(audio.CueSuccess)
	} else {
		s.sound.Play(audio.CueFail)
	}
}

// Victory implements core.Presentation.
func (s *Screen) Victory() {
	s.shown = false
	s.sound.Play(audio.CueVictory)
}

// GameOver implements core.Presentation.
func (s *Screen) GameOver() {
	s.shown = false
	s.sound.Play(audio.CueGameOver)
}
