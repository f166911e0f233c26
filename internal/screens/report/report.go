// Package report shows the career report written from the player's
// aptitude profile.
package report

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/advisor"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

// generateTimeout bounds a single report request, retries included.
const generateTimeout = 45 * time.Second

type reportMsg struct {
	Report *store.Report
	Err    error
}

// ReportScreen shows the cached report, or generates one on first visit.
type ReportScreen struct {
	profile *profile.Service
	advisor *advisor.Service

	spinner spinner.Model
	busy    bool
	report  *store.Report
	noScore bool
	errMsg  string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen.
func New(p *profile.Service, a *advisor.Service) *ReportScreen {
	return &ReportScreen{
		profile: p,
		advisor: a,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	s.busy = true
	return tea.Batch(s.spinner.Tick, s.latest)
}

func (s *ReportScreen) Title() string {
	return "Career Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "G", Description: "New report"},
		{Key: "Esc", Description: "Back"},
	}
}

// latest loads the cached report and falls through to generating one when
// none exists yet.
func (s *ReportScreen) latest() tea.Msg {
	rep, err := s.advisor.Latest(context.Background())
	if err != nil || rep == nil {
		return s.generate()
	}
	return reportMsg{Report: rep}
}

func (s *ReportScreen) generate() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	in, err := advisor.LoadInput(ctx, s.profile)
	if err != nil {
		return reportMsg{Err: err}
	}
	rep, err := s.advisor.Generate(ctx, in)
	return reportMsg{Report: rep, Err: err}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		s.busy = false
		s.noScore = errors.Is(msg.Err, advisor.ErrNoScores)
		s.errMsg = ""
		if msg.Err != nil && !s.noScore {
			s.errMsg = msg.Err.Error()
		}
		if msg.Report != nil {
			s.report = msg.Report
		}
		return s, nil

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if msg.String() == "g" && !s.busy {
			s.busy = true
			return s, tea.Batch(s.spinner.Tick, s.generate)
		}
	}
	return s, nil
}
