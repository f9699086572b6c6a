package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/config"
	"github.com/javiermolinar/minstohours/internal/db"
	"github.com/javiermolinar/minstohours/internal/debuglog"
	"github.com/javiermolinar/minstohours/internal/duration"
	"github.com/javiermolinar/minstohours/internal/reading"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     reading.Repository
	ownsRepo bool // repo was opened by the app and must be closed by it
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured db_path on first use.
func NewApp(repo reading.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "minstohours",
		Short: "Format minute counts as readable durations",
		Long: `minstohours turns a raw count of minutes into text like
"1 day 15 hours 25 minutes".

It is meant to sit behind a home-automation value transform: the host
pipes raw channel values (for example system uptime in minutes) on stdin
and displays each output line. NULL passes through unchanged and "-"
becomes "Undefined".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			applyColorMode(a.config.ColorMode())
			return debuglog.Init(debuglog.DefaultPath, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+debuglog.DefaultPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.formatCmd())
	a.root.AddCommand(a.uptimeCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.watchCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minstohours %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Command returns the root command.
func (a *App) Command() *cobra.Command {
	return a.root
}

// Close flushes the debug log and releases the repository if the app opened it.
func (a *App) Close() error {
	debuglog.Close()
	if a.ownsRepo && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		a.ownsRepo = false
		return err
	}
	return nil
}

// repository returns the history store, opening it on first use.
func (a *App) repository() (reading.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	dbPath := a.config.Storage.DBPath
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	a.repo = repo
	a.ownsRepo = true
	return repo, nil
}

// transform formats one raw value and optionally records it.
func (a *App) transform(ctx context.Context, src reading.Source, input string, record bool) (string, error) {
	v := duration.Parse(input)
	out := v.Format()

	entry := map[string]any{
		"source": string(src),
		"input":  input,
		"kind":   v.Kind.String(),
		"output": out,
	}
	if v.Err != nil {
		entry["reason"] = v.Err.Error()
	}
	debuglog.Log("TRANSFORM", entry)

	if !record {
		return out, nil
	}

	repo, err := a.repository()
	if err != nil {
		return out, err
	}
	r, err := reading.New(string(src), input)
	if err != nil {
		return out, err
	}
	if err := repo.RecordReading(ctx, r); err != nil {
		return out, fmt.Errorf("recording reading: %w", err)
	}
	return out, nil
}

// recordEnabled resolves the --record flag against the configured default.
func (a *App) recordEnabled(cmd *cobra.Command, flag bool) bool {
	if cmd.Flags().Changed("record") {
		return flag
	}
	return a.config.Storage.Record
}
