// Package debuglog writes opt-in structured debug events, one JSON object per line.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "minstohours-debug.log"

// Logger writes debug events to a file.
type Logger struct {
	mu      sync.Mutex
	out     io.WriteCloser
	enabled bool
	seq     int
	now     func() time.Time
}

// Global debug logger instance
var std = &Logger{}

// Init opens the debug log at path when enabled. A disabled logger drops every event.
func Init(path string, enabled bool) error {
	if !enabled {
		std = &Logger{}
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = New(f)
	std.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// Close closes the global debug log.
func Close() {
	std.Log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	_ = std.Close()
}

// Enabled reports whether the global logger records events.
func Enabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.enabled
}

// Log writes an event to the global logger.
func Log(event string, data map[string]any) {
	std.Log(event, data)
}

// New creates an enabled logger writing to w.
func New(w io.WriteCloser) *Logger {
	return &Logger{out: w, enabled: true, now: time.Now}
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || l.out == nil {
		return
	}

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.out, "%s\n", b)
}

// Close closes the underlying writer.
func (l *Logger) Close() error {
	if l == nil || l.out == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.out.Close()
	l.out = nil
	l.enabled = false
	return err
}
