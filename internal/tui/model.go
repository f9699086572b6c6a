// Package tui provides the live watch view for minstohours.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/minstohours/internal/reading"
	"github.com/javiermolinar/minstohours/internal/tui/theme"
	"github.com/javiermolinar/minstohours/internal/uptime"
)

// DefaultInterval is the refresh interval when none is configured.
const DefaultInterval = 30 * time.Second

// Model is the watch view model.
type Model struct {
	// Dependencies
	source uptime.Source
	repo   reading.Repository // optional, records changed readings

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	interval  time.Duration
	raw       string // last raw minutes value
	formatted string
	err       error
	updatedAt time.Time
	fetching  bool
	tickID    int // only the latest scheduled tick triggers a fetch
	recorded  int

	// Last raw value sent to the repository, seeded from history on start
	lastRecorded    string
	hasLastRecorded bool

	// Components
	keys keyMap
	help help.Model

	// Terminal dimensions
	width  int
	height int

	nowFunc func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithRepository records each changed reading into repo.
func WithRepository(repo reading.Repository) Option {
	return func(m *Model) { m.repo = repo }
}

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithTheme sets the color theme.
func WithTheme(t *theme.Theme) Option {
	return func(m *Model) {
		if t != nil {
			m.theme = t
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.nowFunc = now }
}

// New creates a watch model reading from src.
func New(src uptime.Source, opts ...Option) Model {
	m := Model{
		source:   src,
		interval: DefaultInterval,
		keys:     defaultKeyMap(),
		help:     help.New(),
		fetching: true, // Init starts the first fetch
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		t, err := theme.Load(theme.DefaultName)
		if err == nil {
			m.theme = t
		} else {
			m.theme = &theme.Theme{Name: theme.DefaultName}
		}
	}
	m.styles = NewStyles(m.theme)
	return m
}

// Init starts the first fetch. With a repository, the last recorded reading
// is loaded first so a restart does not record an unchanged value again.
func (m Model) Init() tea.Cmd {
	if m.repo != nil {
		return loadLatest(m.repo)
	}
	return fetchReading(m.source, m.nowFunc)
}

// Run starts the watch view and blocks until the user quits.
func Run(src uptime.Source, opts ...Option) error {
	p := tea.NewProgram(New(src, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
