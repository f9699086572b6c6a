// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Color modes for CLI output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MinWatchInterval is the shortest allowed refresh interval for watch.
const MinWatchInterval = time.Second

// Config holds the application configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Storage StorageConfig `toml:"storage"`
	Watch   WatchConfig   `toml:"watch"`
	UI      UIConfig      `toml:"ui"`
}

// SourceConfig holds uptime source settings.
type SourceConfig struct {
	UptimePath string `toml:"uptime_path"` // e.g., "/proc/uptime"
}

// StorageConfig holds history database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
	Record bool   `toml:"record"` // record every transform into history
}

// WatchConfig holds live view settings.
type WatchConfig struct {
	Interval string `toml:"interval"` // Go duration, e.g., "30s"
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color string `toml:"color"` // "auto", "always", "never"
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			UptimePath: "/proc/uptime",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
			Record: false,
		},
		Watch: WatchConfig{
			Interval: "30s",
		},
		UI: UIConfig{
			Color: ColorAuto,
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".local", "share", "minstohours", "history.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "minstohours", "config.toml")
}

// Path returns the config file path, honoring MINSTOHOURS_CONFIG.
func Path() string {
	if v := os.Getenv("MINSTOHOURS_CONFIG"); v != "" {
		return expandPath(v)
	}
	return DefaultConfigPath()
}

// Load loads configuration from Path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Source.UptimePath = expandPath(cfg.Source.UptimePath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MINSTOHOURS_UPTIME_PATH"); v != "" {
		cfg.Source.UptimePath = v
	}
	if v := os.Getenv("MINSTOHOURS_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("MINSTOHOURS_RECORD"); v != "" {
		record, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing MINSTOHOURS_RECORD: %w", err)
		}
		cfg.Storage.Record = record
	}
	if v := os.Getenv("MINSTOHOURS_WATCH_INTERVAL"); v != "" {
		cfg.Watch.Interval = v
	}
	if v := os.Getenv("MINSTOHOURS_COLOR"); v != "" {
		cfg.UI.Color = v
	}
	if v := os.Getenv("MINSTOHOURS_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Source.UptimePath == "" {
		return errors.New("uptime_path must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	interval, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return fmt.Errorf("interval must be a duration like 30s, got %q", c.Watch.Interval)
	}
	if interval < MinWatchInterval {
		return fmt.Errorf("interval must be at least %s, got %s", MinWatchInterval, interval)
	}

	switch strings.ToLower(c.UI.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.UI.Color)
	}
	return nil
}

// WatchInterval returns the parsed watch interval.
// Falls back to 30s if the value does not parse; Validate rejects that case.
func (c *Config) WatchInterval() time.Duration {
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil || d < MinWatchInterval {
		return 30 * time.Second
	}
	return d
}

// ColorMode returns the normalized color mode.
func (c *Config) ColorMode() string {
	return strings.ToLower(c.UI.Color)
}

// Save writes the configuration to Path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
