package report

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/theme"
)

func (s *ReportScreen) View(width, height int) string {
	place := func(content string) string {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	switch {
	case s.busy:
		return place(s.spinner.View() + " Writing your report...")
	case s.noScore:
		return place(theme.Hint.Render("Play a game first, then come back for your report!"))
	case s.report == nil:
		return place(theme.Incorrect.Render("Could not write a report: " + s.errMsg))
	}

	cw := components.ContentWidth(width)
	d := s.report.Data
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4)
	heading := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	if area, err := aptitude.ParseArea(d.TopArea); err == nil {
		b.WriteString(theme.Title.Render("★ " + area.DisplayName()))
		b.WriteString("\n\n")
	}
	b.WriteString(text.Render(d.Summary))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("You are good at"))
	b.WriteString("\n")
	for _, st := range d.Strengths {
		b.WriteString(text.Render("• " + st))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(heading.Render("Things to explore"))
	b.WriteString("\n")
	b.WriteString(text.Render(strings.Join(d.SuggestedFields, " · ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Italic(true).Render(d.Encouragement))

	footer := "written " + s.report.Timestamp.Format("Jan 02 15:04")
	if d.Offline {
		footer += ", offline"
	} else if d.Model != "" {
		footer += " by " + d.Model
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(footer))
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return place(components.Card(b.String(), cw))
}
