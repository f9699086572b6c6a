// Package reading defines the recorded transform events for minstohours.
package reading

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/minstohours/internal/duration"
)

// Validation errors.
var (
	ErrEmptySource   = errors.New("source cannot be empty")
	ErrInvalidSource = errors.New("source must be one of cli, stdin, uptime, watch")
)

// Source names the producer of a reading.
type Source string

const (
	SourceCLI    Source = "cli"
	SourceStdin  Source = "stdin"
	SourceUptime Source = "uptime"
	SourceWatch  Source = "watch"
)

// Valid returns true if the source is a known value.
func (s Source) Valid() bool {
	switch s {
	case SourceCLI, SourceStdin, SourceUptime, SourceWatch:
		return true
	default:
		return false
	}
}

// Reading is one raw input and the text it was formatted to.
type Reading struct {
	ID        int64
	Source    Source
	Input     string
	Output    string
	CreatedAt time.Time
}

// New formats input and wraps the result in a Reading stamped with the current time.
func New(source, input string) (*Reading, error) {
	return NewAt(source, input, time.Now())
}

// NewAt is like New but stamps the reading with at.
func NewAt(source, input string, at time.Time) (*Reading, error) {
	src, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	return &Reading{
		Source:    src,
		Input:     input,
		Output:    duration.Format(input),
		CreatedAt: at,
	}, nil
}

func parseSource(s string) (Source, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", ErrEmptySource
	}
	src := Source(s)
	if !src.Valid() {
		return "", ErrInvalidSource
	}
	return src, nil
}

// Sentinel reports whether the input was one of the passthrough tokens.
func (r *Reading) Sentinel() bool {
	return r.Input == duration.Missing || r.Input == duration.Undefined
}
