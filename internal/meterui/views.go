package meterui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/algo-agc/dsp/core"
)

// rangeDB is the attenuation shown by a full meter bar.
const rangeDB = 24.0

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(8)

	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D70000"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	duckStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

func renderView(m Model) string {
	barWidth := max(m.Width-30, 10)

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n\n")
	b.WriteString(renderRow("gain", redStyle, m.Levels.RedDB, barWidth))
	b.WriteString(renderRow("de-ess", yellowStyle, m.Levels.YellowDB, barWidth))
	b.WriteString(renderRow("gate", greenStyle, m.Levels.GreenDB, barWidth))
	b.WriteString(labelStyle.Render("duck"))
	b.WriteString(duckStyle.Render(renderBar(m.Levels.Duck, barWidth)))
	fmt.Fprintf(&b, " %4.0f%%", m.Levels.Duck*100)

	footer := fmt.Sprintf("[m] mute: %s   [d] ducker: %s   [q] quit", onOff(m.Muted), onOff(m.Ducking))

	return boxStyle.Render(b.String()) + "\n" + footerStyle.Render(footer) + "\n"
}

func renderRow(label string, style lipgloss.Style, db float64, width int) string {
	return labelStyle.Render(label) +
		style.Render(renderBar(db/rangeDB, width)) +
		fmt.Sprintf(" %5.1f dB\n", db)
}

// renderBar draws fraction of width as filled cells. fraction is clamped
// to [0, 1].
func renderBar(fraction float64, width int) string {
	if math.IsNaN(fraction) {
		fraction = 0
	}

	fraction = core.Clamp(fraction, 0, 1)

	filled := int(fraction*float64(width) + 0.5)

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
