package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/tui"
	"github.com/javiermolinar/minstohours/internal/tui/theme"
	"github.com/javiermolinar/minstohours/internal/uptime"
)

func (a *App) watchCmd() *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live, refreshing uptime view",
		Long: `Open a terminal view that re-reads the host uptime every
watch.interval and shows it formatted.

Keys: r refreshes immediately, q quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return err
			}
			opts := []tui.Option{
				tui.WithInterval(a.config.WatchInterval()),
				tui.WithTheme(t),
			}
			if a.recordEnabled(cmd, record) {
				repo, err := a.repository()
				if err != nil {
					return err
				}
				opts = append(opts, tui.WithRepository(repo))
			}
			return tui.Run(uptime.NewProcSource(a.config.Source.UptimePath), opts...)
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Record changed readings in the history database (default from config)")

	return cmd
}
