// Package uptime reads host uptime and reports it as raw minutes, the same
// value a system-info channel hands to the transform.
package uptime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/javiermolinar/minstohours/internal/duration"
)

// DefaultPath is the Linux uptime file.
const DefaultPath = "/proc/uptime"

// ErrMalformed is returned when the uptime file cannot be parsed.
var ErrMalformed = errors.New("malformed uptime data")

// Source produces a raw minutes value as text.
type Source interface {
	// Minutes returns whole minutes of uptime as a decimal string,
	// or duration.Missing if no data is available.
	Minutes(ctx context.Context) (string, error)
}

// ProcSource reads a /proc/uptime formatted file.
type ProcSource struct {
	path string
}

// NewProcSource creates a source for the given path. An empty path uses DefaultPath.
func NewProcSource(path string) *ProcSource {
	if path == "" {
		path = DefaultPath
	}
	return &ProcSource{path: path}
}

// Path returns the file the source reads.
func (s *ProcSource) Path() string {
	return s.path
}

// Minutes reads the file and floors the uptime seconds to whole minutes.
// A missing file reports duration.Missing.
func (s *ProcSource) Minutes(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return duration.Missing, nil
		}
		return "", fmt.Errorf("reading uptime: %w", err)
	}

	secs, err := ParseSeconds(string(data))
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(secs/60, 10), nil
}

// ParseSeconds extracts whole seconds from "<uptime> <idle>" content.
// The fractional part is dropped.
func ParseSeconds(content string) (uint64, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrMalformed)
	}

	whole, frac, _ := strings.Cut(fields[0], ".")
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, fields[0])
	}

	secs, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return secs, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Static is a Source that always returns the same value.
type Static string

// Minutes returns the static value.
func (s Static) Minutes(_ context.Context) (string, error) {
	return string(s), nil
}
