package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spendscope-dev/spendscope/internal/report"
)

const (
	colorHeading lipgloss.Color = "#7dd3fc"
	colorTotal   lipgloss.Color = "#f472b6"
	colorMuted   lipgloss.Color = "#64748b"
	colorLow     lipgloss.Color = "#4ade80"
	colorMid     lipgloss.Color = "#facc15"
	colorHigh    lipgloss.Color = "#f87171"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(colorHeading).Bold(true)
	totalStyle   = lipgloss.NewStyle().Foreground(colorTotal).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	lowStyle     = lipgloss.NewStyle().Foreground(colorLow)
	midStyle     = lipgloss.NewStyle().Foreground(colorMid)
	highStyle    = lipgloss.NewStyle().Foreground(colorHigh)
)

// bandStyle maps a spend band to its color style.
func bandStyle(b report.Band) lipgloss.Style {
	switch b {
	case report.BandHigh:
		return highStyle
	case report.BandMid:
		return midStyle
	default:
		return lowStyle
	}
}

// categoryStyle renders text in a category's configured hex color.
func categoryStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// barWidth is the width of textual bar charts.
const barWidth = 30

// bar renders a proportional bar of value against max.
func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	w := int(value / max * barWidth)
	if w < 1 && value > 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}
