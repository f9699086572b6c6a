package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/minstohours/internal/config"
	"github.com/javiermolinar/minstohours/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The history database is opened lazily, only by commands that need it.
	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
