package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/minstohours/internal/config"
)

// Color definitions for consistent styling across the UI.
var (
	// Formatted durations: bold cyan so they stand out
	colorValue = color.New(color.FgCyan, color.Bold)

	// Reading sources: yellow
	colorSource = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for counts
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode sets color output from the configured mode.
// "auto" keeps the library's terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		EnableColor()
	case config.ColorNever:
		DisableColor()
	}
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatValue formats a rendered duration.
func formatValue(s string) string {
	return colorValue.Sprint(s)
}

// formatSource formats a reading source label.
func formatSource(s string) string {
	return colorSource.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
