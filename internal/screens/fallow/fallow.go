// Package fallow renders the screen shown in place of a feature whose
// backing service could not be opened.
package fallow

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

var bed = []string{
	"   .   ,   .   ",
	" ~~~~~~~~~~~~~ ",
	"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓",
}

// Screen is an empty garden bed with a note on why nothing grows there.
type Screen struct {
	title  string
	reason string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New returns a fallow screen. reason tells the player what is missing,
// e.g. "No profile is open".
func New(title, reason string) *Screen {
	return &Screen{title: title, reason: reason}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	soil := lipgloss.NewStyle().Foreground(theme.Soil).Render(strings.Join(bed, "\n"))

	var b strings.Builder
	b.WriteString(soil)
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Nothing is growing in this bed yet"))
	if s.reason != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.reason))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *Screen) Title() string {
	return s.title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back to the garden"}}
}
