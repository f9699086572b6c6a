package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/config"
	"github.com/javiermolinar/minstohours/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and, on a terminal, allows editing.

The config file location can be changed with MINSTOHOURS_CONFIG.

Example:
  minstohours config
  minstohours config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			interactive := !initOnly && isTerminal(in)
			return a.runConfig(config.Path(), in, cmd.OutOrStdout(), interactive)
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Write the default config file if missing and exit")

	return cmd
}

func (a *App) runConfig(configPath string, in io.Reader, out io.Writer, interactive bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	cfg := a.config

	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	// A new file gets the defaults, not values overridden from the environment.
	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := config.Default().SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	if !interactive {
		return nil
	}

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Source.UptimePath = promptValue(reader, out, "Uptime file", cfg.Source.UptimePath)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Storage.Record = promptBool(reader, out, "Record every transform", cfg.Storage.Record)
	cfg.Watch.Interval = promptValue(reader, out, "Watch interval", cfg.Watch.Interval)
	cfg.UI.Color = promptValue(reader, out, "Color (auto, always, never)", cfg.UI.Color)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[source]")
	fmt.Fprintf(out, "  uptime_path = %s\n", cfg.Source.UptimePath)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path     = %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(out, "  record      = %t\n", cfg.Storage.Record)
	fmt.Fprintln(out, "\n[watch]")
	fmt.Fprintf(out, "  interval    = %s\n", cfg.Watch.Interval)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  color       = %s\n", cfg.UI.Color)
	fmt.Fprintf(out, "  theme       = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q. Use true or false.\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("Watch theme (%s)", options)
	if !theme.IsAvailable(current) {
		current = theme.DefaultName
	}
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
