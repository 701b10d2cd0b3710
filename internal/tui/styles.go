package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent = lipgloss.Color("#FF922B") // orange, the original app's accent
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
	colorRed    = lipgloss.Color("#E03131") // someone owes someone
	colorGreen  = lipgloss.Color("#66A80F") // settled
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	OweStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	EvenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	LabelStyle = lipgloss.NewStyle().
			Width(22)

	FocusedLabelStyle = LabelStyle.
				Bold(true).
				Foreground(colorAccent)

	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)
