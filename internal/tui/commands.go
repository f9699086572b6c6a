package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/minstohours/internal/reading"
	"github.com/javiermolinar/minstohours/internal/uptime"
)

// fetchTimeout bounds a single read of the uptime source.
const fetchTimeout = 5 * time.Second

// ReadingMsg carries a fresh value from the uptime source.
type ReadingMsg struct {
	Raw string
	Err error
	At  time.Time
}

// TickMsg fires when the refresh interval elapses.
type TickMsg struct {
	ID int
}

// RecordedMsg reports the result of storing a reading.
type RecordedMsg struct {
	Err error
}

func fetchReading(src uptime.Source, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		raw, err := src.Minutes(ctx)
		return ReadingMsg{Raw: raw, Err: err, At: now()}
	}
}

func scheduleTick(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// LatestMsg carries the newest recorded watch reading, if any.
type LatestMsg struct {
	Reading *reading.Reading
	Err     error
}

func loadLatest(repo reading.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		r, err := repo.LatestReading(ctx, reading.SourceWatch)
		return LatestMsg{Reading: r, Err: err}
	}
}

func recordReading(repo reading.Repository, raw string, at time.Time) tea.Cmd {
	return func() tea.Msg {
		r, err := reading.NewAt(string(reading.SourceWatch), raw, at)
		if err != nil {
			return RecordedMsg{Err: err}
		}
		return RecordedMsg{Err: repo.RecordReading(context.Background(), r)}
	}
}
