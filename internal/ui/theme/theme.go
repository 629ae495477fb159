package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, matched to the exported PDF so terminal and print look alike.
var (
	Primary   = lipgloss.Color("#4A90E2") // Header band blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	H1Bg = lipgloss.Color("#D6EAF8") // Light blue
	H2Bg = lipgloss.Color("#FFF9DB") // Light yellow
	H3Bg = lipgloss.Color("#E2F5E2") // Light green
	Ink  = lipgloss.Color("#212121")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warn = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Mission text
var (
	Heading1 = lipgloss.NewStyle().
			Bold(true).
			Foreground(Ink).
			Background(H1Bg).
			Padding(0, 1)

	Heading2 = lipgloss.NewStyle().
			Bold(true).
			Foreground(Ink).
			Background(H2Bg).
			Padding(0, 1)

	Heading3 = lipgloss.NewStyle().
			Foreground(Ink).
			Background(H3Bg).
			Padding(0, 1)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)
