package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rapjournal/internal/engine"
	"rapjournal/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy cosmetics",
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
			fmt.Fprintln(out, t.Heading(ui.IconCart, fmt.Sprintf("Shop — %d RC", st.Metrics.Balance)))
			for _, item := range svc.Catalog() {
				tag := t.Muted.Render("(" + string(item.Kind) + ")")
				switch {
				case st.Ledger.HasPurchase(item.Name):
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconDone, item.Name, tag, t.Muted.Render("owned"))
				case item.Price > st.Metrics.Balance:
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconLock, item.Name, tag, t.Warn.Render(fmt.Sprintf("%d RC", item.Price)))
				default:
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconCart, item.Name, tag, t.Gold.Render(fmt.Sprintf("%d RC", item.Price)))
				}
				if item.Description != "" {
					fmt.Fprintf(out, "   %s\n", t.Muted.Render(item.Description))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd(), newShopGearCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Buy(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			t := themeFor(res.State)
			out := cmd.OutOrStdout()
			if res.AlreadyOwned {
				fmt.Fprintln(out, t.Muted.Render("You already own "+res.Item.Name+"."))
				return nil
			}
			fmt.Fprintln(out, t.Good.Render(fmt.Sprintf("%s Bought %s for %d RC (balance %d)", ui.IconSparkle, res.Item.Name, res.Item.Price, res.BalanceAfter)))
			if res.Item.Kind == engine.KindTheme {
				fmt.Fprintln(out, t.Muted.Render("Activate it with 'rj theme \""+res.Item.Name+"\"'."))
			} else {
				fmt.Fprintln(out, t.Muted.Render("Enable it with 'rj shop gear \""+res.Item.Name+"\"'."))
			}
			return nil
		},
	}
}

func newShopGearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gear <item>",
		Short: "Toggle a purchased gear item on or off",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			enabled, st, err := svc.ToggleGear(ctx, name)
			if err != nil {
				return err
			}
			t := themeFor(st)
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), t.Good.Render(name+" enabled."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), t.Muted.Render(name+" disabled."))
			}
			return nil
		},
	}
}
