package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// ProgressBar displays a labelled horizontal bar with its value.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Value      float64
	Max        float64
	Width      int
	Color      lipgloss.Style
}

// NewProgressBar creates a progress bar filled with the secondary color.
func NewProgressBar(label string, value, maxValue float64, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Value: value,
		Max:   maxValue,
		Width: width,
		Color: lipgloss.NewStyle().Background(theme.Secondary),
	}
}

// Fraction returns Value/Max clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(p.Value/p.Max, 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(p.LabelWidth, lipgloss.Width(p.Label))).
			Render(p.Label) + "  "
	}

	value := fmt.Sprintf("  %4.0f", p.Value)
	barWidth := max(p.Width-lipgloss.Width(result)-len(value), 4)

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	result += p.Color.Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(value)

	return result
}
