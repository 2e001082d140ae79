package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rapjournal/internal/engine"
	"rapjournal/internal/ui"
)

func newTimelineCmd() *cobra.Command {
	var limit int
	var full bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Browse past entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Load(ctx)
			if err != nil {
				return err
			}

			t := themeFor(st)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.Heading(ui.IconScroll, "Timeline"))
			if st.Ledger.HasGear("Vinyl Wall") {
				fmt.Fprintln(out, t.Muted.Render("💿 💿 💿 💿 💿 💿 💿 💿"))
			}

			entries := st.Ledger.Entries
			if len(entries) == 0 {
				fmt.Fprintln(out, t.Muted.Render("(no entries yet)"))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			for _, e := range entries {
				words := engine.WordCount(e.Text)
				header := fmt.Sprintf("%s  %s", t.H2.Render(e.Date.String()), t.Muted.Render(fmt.Sprintf("%d words", words)))
				if e.Word != "" {
					header += "  " + t.Gold.Render(e.Word)
				}
				fmt.Fprintln(out, header)
				if full {
					for _, l := range strings.Split(strings.TrimRight(e.Text, "\n"), "\n") {
						fmt.Fprintln(out, "  "+l)
					}
				} else {
					fmt.Fprintln(out, "  "+previewLine(e.Text))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "how many entries to show (0 for all)")
	cmd.Flags().BoolVar(&full, "full", false, "print complete lyrics instead of the first line")
	return cmd
}

func previewLine(text string) string {
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			if len(l) > 70 {
				return l[:70] + "…"
			}
			return l
		}
	}
	return ""
}
