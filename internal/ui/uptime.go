package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/duration"
	"github.com/javiermolinar/minstohours/internal/reading"
	"github.com/javiermolinar/minstohours/internal/uptime"
)

func (a *App) uptimeCmd() *cobra.Command {
	var (
		raw    bool
		record bool
	)

	cmd := &cobra.Command{
		Use:   "uptime",
		Short: "Show this machine's uptime as a readable duration",
		Long: `Read the host uptime (source.uptime_path, /proc/uptime by default),
convert it to whole minutes and format it the same way format does.

NULL is shown when the uptime file does not exist.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			src := uptime.NewProcSource(a.config.Source.UptimePath)

			minutes, err := src.Minutes(ctx)
			if err != nil {
				return err
			}

			formatted, err := a.transform(ctx, reading.SourceUptime, minutes, a.recordEnabled(cmd, record))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if formatted == "" {
				formatted = "less than a minute"
			}
			fmt.Fprintf(out, "%s %s\n", formatHeader("Up"), formatValue(formatted))
			if raw && minutes != duration.Missing {
				fmt.Fprintln(out, formatMuted(fmt.Sprintf("(%s minutes from %s)", minutes, src.Path())))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Also print the raw minute count")
	cmd.Flags().BoolVar(&record, "record", false, "Record the reading in the history database (default from config)")

	return cmd
}
