package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/gridmix/model"
)

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")
	colorAccent  = lipgloss.Color("#059669")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	focusStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	trackStyle  = lipgloss.NewStyle().Foreground(colorPanel)
	cleanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(model.CleanIconColor))

	buttonStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 2)

	buttonBusyStyle = lipgloss.NewStyle().
			Background(colorPanel).
			Foreground(colorWhite).
			Padding(0, 2)

	buttonErrStyle = lipgloss.NewStyle().
			Background(colorRed).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 2)
)

// cleanColor grades a clean-energy share.
func cleanColor(pct float64) lipgloss.Style {
	switch {
	case pct >= 50:
		return okStyle
	case pct >= 25:
		return warnStyle
	default:
		return critStyle
	}
}

func fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
