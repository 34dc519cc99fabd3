package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark background, one bright accent per meaning.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Answer states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	// Partial marks an answer that earned some of its points.
	Partial = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Matching board
var (
	// Placed marks an item that already sits on a target.
	Placed = lipgloss.NewStyle().
		Foreground(Secondary)

	// Held marks the item picked up and waiting for a target.
	Held = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

var Button = lipgloss.NewStyle().
	Background(Primary).
	Foreground(Text).
	Bold(true).
	Padding(0, 2)
