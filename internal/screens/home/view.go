package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

const titleArt = `  ___ ___ ___  ___  _   _ _____
 / __| _ \ _ \/ _ \| | | |_   _|
 \__ \  _/   / (_) | |_| | | |
 |___/_| |_|_\\___/ \___/  |_|`

const titleCompact = "S · P · R · O · U · T"

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height+8) || width < 70

	title := titleArt
	if compact {
		title = titleCompact
	}

	sections := []string{
		components.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title), cw),
		components.Centered(h.renderGreeting(), cw),
		h.renderStats(cw),
		h.menu.View(cw),
	}
	if h.errMsg != "" {
		sections = append(sections, components.Centered(theme.Incorrect.Render(h.errMsg), cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) renderGreeting() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%s  Hi %s!", h.avatar.Glyph, h.name))
}

func (h *HomeScreen) renderStats(cw int) string {
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		accent.Render(fmt.Sprintf("%d GAMES", h.stats.played)),
		accent.Render(fmt.Sprintf("%d GROWN", h.stats.grown)),
	}
	if h.stats.topArea != "" {
		parts = append(parts, accent.Render("★ "+h.stats.topArea.DisplayName()))
	} else {
		parts = append(parts, dim.Render("★ play to find your strengths"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}
