package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Left-hand control panel
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	// Plot frame
	PlotFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// sectionHeader renders a grouped heading in the theme's colours.
func sectionHeader(t Theme, title string, width int) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Background(t.Muted).
		Width(width).
		Align(lipgloss.Center).
		Render(title)
}

func fieldStyle(t Theme, focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	}
	return lipgloss.NewStyle().Foreground(t.Text)
}

// Separator draws a decorative rule.
func Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return Subtle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
