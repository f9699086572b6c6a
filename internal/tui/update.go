package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/minstohours/internal/debuglog"
	"github.com/javiermolinar/minstohours/internal/duration"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Stale ticks from before a manual refresh are dropped.
		if msg.ID != m.tickID || m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, fetchReading(m.source, m.nowFunc)

	case LatestMsg:
		if msg.Err != nil {
			debuglog.Log("LATEST_ERROR", map[string]any{"error": msg.Err.Error()})
		} else if msg.Reading != nil {
			m.lastRecorded = msg.Reading.Input
			m.hasLastRecorded = true
		}
		return m, fetchReading(m.source, m.nowFunc)

	case ReadingMsg:
		return m.handleReading(msg)

	case RecordedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("recording reading: %w", msg.Err)
			debuglog.Log("RECORD_ERROR", map[string]any{"error": msg.Err.Error()})
			return m, nil
		}
		m.recorded++
		return m, nil
	}

	return m, nil
}

func (m Model) handleReading(msg ReadingMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	m.tickID++
	cmds := []tea.Cmd{scheduleTick(m.tickID, m.interval)}

	if msg.Err != nil {
		m.err = msg.Err
		debuglog.Log("FETCH_ERROR", map[string]any{"error": msg.Err.Error()})
		return m, tea.Batch(cmds...)
	}

	changed := m.updatedAt.IsZero() || msg.Raw != m.raw
	m.err = nil
	m.raw = msg.Raw
	m.formatted = duration.Format(msg.Raw)
	m.updatedAt = msg.At

	debuglog.Log("READING", map[string]any{
		"raw":     m.raw,
		"output":  m.formatted,
		"changed": changed,
	})

	if m.repo != nil && (!m.hasLastRecorded || msg.Raw != m.lastRecorded) {
		m.lastRecorded = msg.Raw
		m.hasLastRecorded = true
		cmds = append(cmds, recordReading(m.repo, msg.Raw, msg.At))
	}
	return m, tea.Batch(cmds...)
}
