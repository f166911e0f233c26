package watering

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/theme"
	core "github.com/abhisek/sprout/internal/watering"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	status := fmt.Sprintf("Stage %d/%d    %s", s.stage, s.cfg.StageCount, components.Lives(s.lives, s.cfg.MaxLives))
	sections = append(sections, components.Centered(status, cw))

	plantColor := theme.Primary
	if s.phase == core.PhaseGameOver {
		plantColor = theme.Soil
	}
	art := lipgloss.NewStyle().Foreground(plantColor).Render(
		plantArt(s.stage, s.cfg.StageCount, s.phase == core.PhaseGameOver))
	sections = append(sections, components.Centered(art, cw))

	if s.barVisible() {
		bar := components.ZoneBar{Zones: s.cfg.Zones, Position: s.position, Width: cw - 4}
		sections = append(sections, components.Centered(bar.View(), cw))
	}

	if msg := s.banner(); msg != "" {
		sections = append(sections, components.Centered(msg, cw))
	}

	if s.phase.Terminal() {
		sections = append(sections, s.renderScores(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

// barVisible hides the watering bar while the plant reacts, as the game
// only shows it when the player can act or is pouring.
func (s *Screen) barVisible() bool {
	switch s.phase {
	case core.PhaseIdle, core.PhaseCharging, core.PhaseEvaluating:
		return true
	}
	return false
}

func (s *Screen) banner() string {
	switch s.phase {
	case core.PhaseIdle:
		return theme.Hint.Render("Press Space to start watering, press again to stop in the green!")
	case core.PhaseCharging:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("Pouring...")
	case core.PhaseVictory:
		return theme.Correct.Render("Your plant is fully grown!")
	case core.PhaseGameOver:
		return theme.Incorrect.Render("Oh no, the plant withered. Press R to try again.")
	}
	if !s.shown {
		return ""
	}
	switch s.outcome {
	case core.OutcomePerfect:
		return theme.Correct.Render("Perfect!")
	case core.OutcomeGood:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Good!")
	default:
		return theme.Incorrect.Render("Too much water!")
	}
}

func (s *Screen) renderScores(cw int) string {
	sess := s.machine.Session()
	c := sess.Counters
	scores := core.Finalize(c, c.EndedAt.Sub(c.StartedAt), sess.Stage, s.cfg.StageCount, s.cfg.PatienceBaseline)

	lines := []string{
		fmt.Sprintf("Attempts %d   Perfect %d   Good %d", c.TotalAttempts, c.PerfectHits, c.GoodHits),
		fmt.Sprintf("Precision +%.0f   Patience +%.0f   Persistence +%.0f",
			scores.Precision, scores.Patience, scores.Persistence),
		fmt.Sprintf("+%.0f points for %s", scores.Total(), s.cfg.Area.DisplayName()),
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}
