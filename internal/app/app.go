package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/home"
	"github.com/abhisek/sprout/internal/screens/welcome"
	"github.com/abhisek/sprout/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   home.Deps
	badge  string
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome splash, or
// straight on the home screen when splash is false.
func newAppModel(deps home.Deps, splash bool) AppModel {
	var first screen.Screen = home.New(deps)
	if splash {
		first = welcome.New(func() screen.Screen { return home.New(deps) })
	}
	m := AppModel{
		router: router.New(first),
		deps:   deps,
	}
	m.badge = m.loadBadge()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.LeaveAll()
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		m.badge = m.loadBadge()
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// loadBadge renders the player's avatar and name for the header.
func (m AppModel) loadBadge() string {
	p := m.deps.Profile
	if p == nil {
		return ""
	}
	ctx := context.Background()
	a, err := p.Avatar(ctx)
	if err != nil {
		return ""
	}
	name, err := p.PlayerName(ctx)
	if err != nil {
		return ""
	}
	return a.Glyph + " " + name
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	// Key release events let a held Space pour until it is let go.
	v.KeyboardEnhancements.ReportEventTypes = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.badge, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(deps home.Deps, splash bool) error {
	p := tea.NewProgram(newAppModel(deps, splash))
	final, err := p.Run()
	if am, ok := final.(AppModel); ok {
		am.router.LeaveAll()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
