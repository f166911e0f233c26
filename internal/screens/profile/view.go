package profile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/aptitude"
	prof "github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/theme"
)

const labelWidth = 26

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Something went wrong: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Hint.Render("Loading..."))
	}

	cw := min(width-4, 72)
	d := s.data

	var b strings.Builder

	b.WriteString(s.renderBadge())
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render("Interests"))
	b.WriteString("\n")
	areaMax := max(d.Totals.Max(), 1)
	for _, a := range aptitude.AllAreas() {
		bar := components.NewProgressBar(a.DisplayName(), d.Totals.Areas[a], areaMax, cw)
		bar.LabelWidth = labelWidth
		if a == d.Totals.TopArea() {
			bar.Color = lipgloss.NewStyle().Background(theme.Primary)
		}
		b.WriteString(bar.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Skills"))
	b.WriteString("\n")
	traitMax := 1.0
	for _, t := range aptitude.AllTraits() {
		traitMax = max(traitMax, d.Totals.Traits[t])
	}
	for _, t := range aptitude.AllTraits() {
		bar := components.NewProgressBar(t.DisplayName(), d.Totals.Traits[t], traitMax, cw)
		bar.LabelWidth = labelWidth
		bar.Color = lipgloss.NewStyle().Background(theme.Accent)
		b.WriteString(bar.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHistory(d.Stats, d.History))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ProfileScreen) renderBadge() string {
	if s.editing {
		return "Name: " + s.input.View()
	}
	badge := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%s  %s  (%s)", s.data.Avatar.Glyph, s.data.Name, s.data.Avatar.Name))
	if s.pick == s.data.Avatar.ID {
		return badge
	}
	a := prof.AvatarByID(s.pick)
	preview := lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("%s %s? Enter to choose: +%.0f %s, +%.0f %s", a.Glyph, a.Name,
			prof.AvatarPrimaryBonus, a.PrimaryArea.DisplayName(),
			prof.AvatarSecondaryBonus, a.SecondaryArea.DisplayName()))
	return badge + "\n" + preview
}

func renderHistory(st store.ChallengeStats, history []store.ChallengeEvent) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if st.Played == 0 {
		return dim.Render("No games yet. Water the plant to start!")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d games   %d grown   %d perfect waterings   best precision %.0f\n\n",
		st.Played, st.Victories, st.PerfectHits, st.BestPrecision))

	for _, e := range history {
		result := theme.Incorrect.Render("withered")
		if e.Victory {
			result = theme.Correct.Render("grown   ")
		}
		b.WriteString(fmt.Sprintf("%s  %s  stage %d/%d  %d attempts  +%.0f\n",
			dim.Render(e.Timestamp.Format("Jan 02 15:04")),
			result,
			e.FinalStage, e.StageCount,
			e.TotalAttempts,
			e.Precision+e.Patience+e.Persistence,
		))
	}
	return b.String()
}
