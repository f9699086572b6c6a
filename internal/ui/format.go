package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/minstohours/internal/reading"
)

// ErrNoInput is returned when format has neither arguments nor piped input.
var ErrNoInput = errors.New("no input: pass minutes as arguments or pipe values on stdin")

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func (a *App) formatCmd() *cobra.Command {
	var (
		record bool
		copyIt bool
	)

	cmd := &cobra.Command{
		Use:   "format [minutes...]",
		Short: "Format minute counts as readable durations",
		Long: `Format each argument as a duration, one output line per argument.

With no arguments, reads stdin line by line and writes one output line
per input line. This is the mode a host transform uses: each raw channel
value goes in, the display text comes out.

  NULL      is passed through unchanged
  -         becomes "Undefined"
  <n>       becomes "<d> days <h> hours <m> minutes", omitting zero parts

Input that is not a non-negative number produces an empty line.`,
		Example: `  minstohours format 2365
  minstohours format 60 1440 NULL
  echo 2365 | minstohours format
  minstohours format --record --copy 2365`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec := a.recordEnabled(cmd, record)
			out := cmd.OutOrStdout()

			var last string
			if len(args) > 0 {
				for _, arg := range args {
					formatted, err := a.transform(ctx, reading.SourceCLI, arg, rec)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatted)
					last = formatted
				}
			} else {
				in := cmd.InOrStdin()
				if isTerminal(in) {
					return ErrNoInput
				}

				// Lines have no length limit.
				reader := bufio.NewReader(in)
				for {
					line, readErr := reader.ReadString('\n')
					if readErr != nil && !errors.Is(readErr, io.EOF) {
						return fmt.Errorf("reading stdin: %w", readErr)
					}
					if line == "" && readErr != nil {
						break
					}

					line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
					formatted, err := a.transform(ctx, reading.SourceStdin, line, rec)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatted)
					last = formatted

					if readErr != nil {
						break
					}
				}
			}

			if copyIt {
				if err := copyToClipboard(last); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Record each reading in the history database (default from config)")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy the last formatted value to the clipboard")

	return cmd
}
