package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, garden greens with warm accents
var (
	Primary   = lipgloss.Color("#22C55E") // Leaf Green
	Secondary = lipgloss.Color("#38BDF8") // Water Blue
	Accent    = lipgloss.Color("#F59E0B") // Sunflower
	Success   = lipgloss.Color("#4ADE80") // Light Green
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Soil      = lipgloss.Color("#A16207") // Brown
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Watering bar zones
var (
	ZoneBad = lipgloss.NewStyle().
		Background(Error)

	ZoneGood = lipgloss.NewStyle().
			Background(Warning)

	ZonePerfect = lipgloss.NewStyle().
			Background(Primary)

	Indicator = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)
