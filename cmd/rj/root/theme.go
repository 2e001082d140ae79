package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rapjournal/internal/engine"
	"rapjournal/internal/ui"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				st, err := svc.Load(ctx)
				if err != nil {
					return err
				}
				t := themeFor(st)
				out := cmd.OutOrStdout()
				active := st.Ledger.Theme
				if active == "" {
					active = engine.DefaultTheme
				}
				fmt.Fprintln(out, t.LabelValue("Active theme", active))
				for _, item := range svc.Catalog() {
					if item.Kind != engine.KindTheme {
						continue
					}
					if st.Ledger.HasPurchase(item.Name) {
						fmt.Fprintf(out, "- %s %s\n", item.Name, t.Good.Render("owned"))
					} else {
						fmt.Fprintf(out, "- %s %s\n", item.Name, t.Muted.Render(fmt.Sprintf("%d RC in the shop", item.Price)))
					}
				}
				return nil
			}

			name := strings.Join(args, " ")
			st, err := svc.SetTheme(ctx, name)
			if err != nil {
				return err
			}
			t := themeFor(st)
			fmt.Fprintln(cmd.OutOrStdout(), t.Good.Render(ui.IconSparkle+" Theme set to "+st.Ledger.Theme+"."))
			return nil
		},
	}
}
