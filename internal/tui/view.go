package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/minstohours/internal/duration"
)

// panelChrome is the border plus horizontal padding of the panel.
const panelChrome = 2 + 2*3

// View renders the model.
func (m Model) View() string {
	lines := []string{
		m.styles.Title.Render(m.fit("System uptime")),
		"",
		m.styles.Value.Render(m.fit(m.valueText())),
	}
	if meta := m.metaText(); meta != "" {
		lines = append(lines, m.styles.Meta.Render(m.fit(meta)))
	}
	if m.err != nil {
		lines = append(lines, "", m.styles.Error.Render(m.fit("error: "+m.err.Error())))
	}

	panel := m.styles.Panel.Render(strings.Join(lines, "\n"))
	return panel + "\n" + m.styles.Help.Render(m.help.View(m.keys)) + "\n"
}

func (m Model) valueText() string {
	if m.updatedAt.IsZero() {
		if m.err != nil {
			return "No reading"
		}
		return "Loading..."
	}

	v := duration.Parse(m.raw)
	switch v.Kind {
	case duration.KindMissing:
		return "No data"
	case duration.KindInvalid:
		return fmt.Sprintf("Unreadable value %q", m.raw)
	}
	if m.formatted == "" {
		return "less than a minute"
	}
	return m.formatted
}

func (m Model) metaText() string {
	if m.updatedAt.IsZero() {
		return ""
	}

	parts := []string{}
	if duration.Parse(m.raw).Kind == duration.KindMinutes {
		parts = append(parts, m.raw+" minutes")
	}
	parts = append(parts, "updated "+m.updatedAt.Format("15:04:05"))
	if m.repo != nil {
		parts = append(parts, fmt.Sprintf("%d recorded", m.recorded))
	}
	return strings.Join(parts, " · ")
}

// fit truncates s to the panel's inner width once the terminal size is known.
func (m Model) fit(s string) string {
	inner := m.width - panelChrome
	if m.width == 0 || inner <= 0 {
		return s
	}
	return ansi.Truncate(s, inner, "…")
}
