package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/minstohours/internal/tui/theme"
)

// Styles holds all lipgloss styles for the watch view, derived from a theme.
type Styles struct {
	Panel lipgloss.Style
	Title lipgloss.Style
	Value lipgloss.Style
	Meta  lipgloss.Style
	Error lipgloss.Style
	Help  lipgloss.Style
}

// NewStyles creates styles from the given theme.
func NewStyles(t *theme.Theme) *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(t.Accent)).
			Padding(1, 3),
		Title: lipgloss.NewStyle().
			Foreground(theme.Color(t.Accent)).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(theme.Color(t.Value)).
			Bold(true),
		Meta: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)),
		Error: lipgloss.NewStyle().
			Foreground(theme.Color(t.Error)),
		Help: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)).
			PaddingLeft(1),
	}
}
