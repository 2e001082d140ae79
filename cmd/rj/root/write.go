package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rapjournal/internal/ledger"
	"rapjournal/internal/prompts"
	"rapjournal/internal/ui"
)

func newWriteCmd() *cobra.Command {
	var fromFile string
	var forDate string

	cmd := &cobra.Command{
		Use:   "write [lyrics...]",
		Short: "Record today's lyrics",
		Long:  "Record today's lyrics. Pass the text as arguments, pipe it on stdin, or use --file. Writing again on the same day replaces the earlier text. --date backfills a missed day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readLyrics(cmd, args, fromFile)
			if err != nil {
				return err
			}

			var day ledger.Date
			if forDate != "" {
				day, err = ledger.ParseDate(forDate)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.SubmitEntryFor(ctx, day, text)
			if err != nil {
				return err
			}

			t := themeFor(res.State)
			out := cmd.OutOrStdout()
			if res.Replaced {
				fmt.Fprintln(out, t.Heading(ui.IconMic, "Entry rewritten for "+res.Date.String()))
			} else {
				fmt.Fprintln(out, t.Heading(ui.IconMic, "Entry recorded for "+res.Date.String()))
			}
			fmt.Fprintln(out, t.LabelValue("Words", res.Words))
			if gained := res.BalanceAfter - res.BalanceBefore; gained != 0 {
				fmt.Fprintln(out, t.LabelValue("Earned", t.Gold.Render(fmt.Sprintf("%+d RC", gained))))
			}
			fmt.Fprintln(out, t.LabelValue("Balance", fmt.Sprintf("%d RC", res.BalanceAfter)))
			fmt.Fprintln(out, t.LabelValue("Streak", t.Streak(res.StreakAfter)))
			if res.StreakAfter > res.StreakBefore && res.StreakAfter > 1 {
				fmt.Fprintln(out, t.Good.Render(fmt.Sprintf("%s %d days in a row!", ui.IconFire, res.StreakAfter)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, t.Muted.Render(prompts.MotivationOfDay(res.Date)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read the lyrics from a file")
	cmd.Flags().StringVar(&forDate, "date", "", "write the entry under this date (DD/MM/YYYY)")
	return cmd
}

func readLyrics(cmd *cobra.Command, args []string, fromFile string) (string, error) {
	if fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no lyrics given: pass text, pipe stdin, or use --file")
	}
	return string(data), nil
}
