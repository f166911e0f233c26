package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
	"github.com/abhisek/sprout/internal/watering"
)

// ZoneBar draws the watering bar: red, yellow, green, yellow, red cells
// with the indicator underneath.
type ZoneBar struct {
	Zones    watering.ZoneConfig
	Position float64
	Width    int
}

// Cells classifies the center of every bar cell.
func (z ZoneBar) Cells() []watering.Outcome {
	w := max(z.Width, 1)
	cells := make([]watering.Outcome, w)
	for i := range cells {
		cells[i] = watering.Classify((float64(i)+0.5)/float64(w), z.Zones)
	}
	return cells
}

// IndicatorCell returns the cell the indicator is drawn under.
func (z ZoneBar) IndicatorCell() int {
	w := max(z.Width, 1)
	return min(int(z.Position*float64(w)), w-1)
}

// View renders the bar and the indicator row.
func (z ZoneBar) View() string {
	var bar strings.Builder
	for _, o := range z.Cells() {
		switch o {
		case watering.OutcomePerfect:
			bar.WriteString(theme.ZonePerfect.Render(" "))
		case watering.OutcomeGood:
			bar.WriteString(theme.ZoneGood.Render(" "))
		default:
			bar.WriteString(theme.ZoneBad.Render(" "))
		}
	}

	marker := strings.Repeat(" ", z.IndicatorCell()) + theme.Indicator.Render("▲")
	return bar.String() + "\n" + marker
}

// Lives renders remaining lives as water drops.
func Lives(remaining, total int) string {
	full := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("● ", max(remaining, 0)))
	empty := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○ ", max(total-remaining, 0)))
	return strings.TrimRight(full+empty, " ")
}
