package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#A40000")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

func printError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), message)
}

// printSummary writes a title followed by aligned key/value rows.
func printSummary(w io.Writer, title string, rows [][2]string) {
	fmt.Fprintln(w, titleStyle.Render(title))

	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", keyStyle.Render(r[0]), valueStyle.Render(r[1]))
	}
}
