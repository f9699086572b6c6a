package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/reading"
)

func (a *App) historyCmd() *cobra.Command {
	var (
		limit int
		prune time.Duration
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded readings",
		Long: `List readings recorded with --record (or storage.record = true),
newest first.

With --prune, readings older than the given age are deleted instead.`,
		Example: `  minstohours history
  minstohours history --limit=5
  minstohours history --prune=720h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			repo, err := a.repository()
			if err != nil {
				return err
			}

			if prune > 0 {
				n, err := repo.PruneReadings(ctx, time.Now().Add(-prune))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Pruned %s older than %s.\n", formatStats(fmt.Sprintf("%d readings", n)), prune)
				return nil
			}

			readings, err := repo.ListReadings(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing readings: %w", err)
			}

			if len(readings) == 0 {
				fmt.Fprintln(out, "No readings recorded yet.")
				return nil
			}

			width := termWidth()
			for _, r := range readings {
				fmt.Fprintln(out, historyLine(r, width))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of readings to show (0 for all)")
	cmd.Flags().DurationVar(&prune, "prune", 0, "Delete readings older than this age (e.g. 720h)")

	return cmd
}

// historyLine renders one reading, truncating long input to fit width.
// Passthrough sentinels are muted so real durations stand out.
func historyLine(r *reading.Reading, width int) string {
	output := r.Output
	if output == "" {
		output = "(empty)"
	}
	value := formatValue(output)
	if r.Sentinel() {
		value = formatMuted(output)
	}

	// "  #12345  <age>  [stdin ]  " plus the arrow
	maxInput := width - 40 - ansi.StringWidth(output)
	if maxInput < 8 {
		maxInput = 8
	}
	input := ansi.Truncate(r.Input, maxInput, "...")

	return fmt.Sprintf("  #%d  %s  [%s]  %s → %s",
		r.ID,
		formatMuted(fmt.Sprintf("%-14s", humanize.Time(r.CreatedAt))),
		formatSource(fmt.Sprintf("%-6s", r.Source)),
		input,
		value,
	)
}
