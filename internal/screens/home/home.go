package home

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/advisor"
	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/audio"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/fallow"
	profilescreen "github.com/abhisek/sprout/internal/screens/profile"
	"github.com/abhisek/sprout/internal/screens/report"
	wateringscreen "github.com/abhisek/sprout/internal/screens/watering"
	"github.com/abhisek/sprout/internal/ui/components"
	core "github.com/abhisek/sprout/internal/watering"
)

// Deps are the services the home screen hands to the screens it opens.
// Profile and Advisor may be nil; the affected entries then show a
// fallow garden bed.
type Deps struct {
	Profile  *profile.Service
	Advisor  *advisor.Service
	Watering core.Config
	Sound    audio.Sink
	Logger   *slog.Logger
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	avatar profile.Avatar
	name   string
	stats  summary
	errMsg string
}

// summary is the one-line dashboard under the title.
type summary struct {
	played  int
	grown   int
	topArea aptitude.Area
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "WATER THE PLANT", Action: h.openWatering},
		{Label: "MY APTITUDES", Action: func() tea.Cmd {
			if deps.Profile == nil {
				return push(fallow.New("My Aptitudes", "Aptitudes are kept in the profile store, which could not be opened"))
			}
			return push(profilescreen.New(deps.Profile))
		}},
		{Label: "CAREER REPORT", Action: func() tea.Cmd {
			if deps.Profile == nil || deps.Advisor == nil {
				return push(fallow.New("Career Report", "The report needs the profile store and the advisor"))
			}
			return push(report.New(deps.Profile, deps.Advisor))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.load()
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) openWatering() tea.Cmd {
	deps := wateringscreen.Deps{Sound: h.deps.Sound, Logger: h.deps.Logger}
	if h.deps.Profile != nil {
		deps.Profile = h.deps.Profile
		deps.Results = h.deps.Profile
	}
	s, err := wateringscreen.New(h.deps.Watering, deps)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	return push(s)
}

// load refreshes the player badge and dashboard from the profile.
func (h *HomeScreen) load() {
	h.avatar = profile.AvatarByID(0)
	h.name = profile.DefaultName
	h.stats = summary{}

	p := h.deps.Profile
	if p == nil {
		return
	}
	ctx := context.Background()
	if a, err := p.Avatar(ctx); err == nil {
		h.avatar = a
	}
	if n, err := p.PlayerName(ctx); err == nil {
		h.name = n
	}
	if st, err := p.Stats(ctx); err == nil {
		h.stats.played = st.Played
		h.stats.grown = st.Victories
	}
	if t, err := p.Totals(ctx); err == nil {
		h.stats.topArea = t.TopArea()
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume reloads the dashboard after a game or a profile edit.
func (h *HomeScreen) Resume() tea.Cmd {
	h.load()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
