// Package theme provides color themes for the watch view.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is used when no theme or an unknown theme is requested.
const DefaultName = "mocha"

// Theme holds all colors for a watch view theme.
type Theme struct {
	Name    string `toml:"name"`
	Fg      string `toml:"fg"`       // Primary foreground
	FgMuted string `toml:"fg_muted"` // Secondary text, help line
	Accent  string `toml:"accent"`   // Title, border
	Value   string `toml:"value"`    // Formatted duration
	Error   string `toml:"error"`    // Source errors
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.Value = coalesce(t.Value, t.Accent, t.Fg)
	t.FgMuted = coalesce(t.FgMuted, t.Fg)
	t.Error = coalesce(t.Error, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
