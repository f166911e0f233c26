package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/sprout/internal/watering"
)

func TestZoneBarCells(t *testing.T) {
	z := ZoneBar{
		Zones: watering.ZoneConfig{GreenStart: 0.4, GreenEnd: 0.6, Margin: 0.1},
		Width: 10,
	}

	want := []watering.Outcome{
		watering.OutcomeBad, watering.OutcomeBad, watering.OutcomeBad,
		watering.OutcomeGood,
		watering.OutcomePerfect, watering.OutcomePerfect,
		watering.OutcomeGood,
		watering.OutcomeBad, watering.OutcomeBad, watering.OutcomeBad,
	}
	assert.Equal(t, want, z.Cells())
}

func TestZoneBarIndicatorCell(t *testing.T) {
	tests := []struct {
		pos  float64
		want int
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 1}, // cell 1 covers [0.05, 0.10)
		{0.5, 10},
		{0.99, 19},
		{1, 19},
	}
	for _, tt := range tests {
		z := ZoneBar{Position: tt.pos, Width: 20}
		assert.Equal(t, tt.want, z.IndicatorCell(), "pos %v", tt.pos)
	}
}

func TestZoneBarView(t *testing.T) {
	z := ZoneBar{Zones: watering.DefaultConfig().Zones, Position: 0.5, Width: 30}
	lines := strings.Split(z.View(), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 30, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[1], "▲")
}

func TestLives(t *testing.T) {
	assert.Equal(t, 2, strings.Count(Lives(2, 3), "●"))
	assert.Equal(t, 1, strings.Count(Lives(2, 3), "○"))
	assert.Equal(t, 3, strings.Count(Lives(0, 3), "○"))
}

func TestProgressBarFraction(t *testing.T) {
	assert.Equal(t, 0.5, NewProgressBar("x", 5, 10, 40).Fraction())
	assert.Equal(t, 1.0, NewProgressBar("x", 15, 10, 40).Fraction())
	assert.Equal(t, 0.0, NewProgressBar("x", 5, 0, 40).Fraction())
	assert.Equal(t, 40, lipgloss.Width(NewProgressBar("Logic", 3, 10, 40).View()))
}

func TestMenuNavigation(t *testing.T) {
	var chosen string
	pick := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "A", Action: pick("a")},
		{Label: "B", Disabled: true},
		{Label: "C", Action: pick("c")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "c", chosen)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Selected)
}
