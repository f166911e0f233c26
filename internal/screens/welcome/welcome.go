package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	growStep     = 400 * time.Millisecond
	bannerAt     = 1600 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// growFrames is the seedling drawn while the splash plays, one frame per
// growStep.
var growFrames = []string{
	"\n\n\n   .\n ~~~~~~~",
	"\n\n\n   \\/\n ~~|~~~~",
	"\n   _\n  (_)/)\n   |/\n ~~|~~~~",
	"  .-.\n (_@_)\n  (_)\\/)\n   |/\n ~~|~~~~",
}

type tickMsg time.Time

// WelcomeScreen grows a seedling, then shows the banner and waits for a key
// before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// frame returns the index of the seedling drawing for the elapsed time.
func (w *WelcomeScreen) frame() int {
	return min(int(w.elapsed/growStep), len(growFrames)-1)
}

func (w *WelcomeScreen) View(width, height int) string {
	plant := lipgloss.NewStyle().Foreground(theme.Primary).Render(growFrames[w.frame()])
	sections := []string{plant}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Water the plant, discover what you are great at!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
