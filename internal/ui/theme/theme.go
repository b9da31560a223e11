package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Canvas is the terminal background heat colours are composited onto.
var Canvas = color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	TextInk = lipgloss.Color("#0F172A") // Navy, for text on heat cells
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Tabs
var (
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)

// Heat grid
var (
	HeatCell = lipgloss.NewStyle().
			Foreground(TextInk).
			Align(lipgloss.Center)

	HeatCursor = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Underline(true).
			Align(lipgloss.Center)
)

// Components
var ProgressEmpty = lipgloss.NewStyle().
	Background(Border)
