package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapjournal/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show achievement progress",
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
			fmt.Fprintln(out, t.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range st.Achievements {
				bar := t.ProgressBar(a.Current, a.Target, 12)
				switch {
				case a.Claimed:
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconDone, a.Icon, t.Muted.Render(a.Name), bar)
				case a.Satisfied:
					fmt.Fprintf(out, "%s %s %s %s %s\n", ui.IconTrophy, a.Icon, a.Name, bar, t.Gold.Render(fmt.Sprintf("+%d RC — claim with 'rj achievements claim %s'", a.Reward, a.ID)))
				default:
					fmt.Fprintf(out, "%s %s %s %s %s\n", ui.IconLock, a.Icon, a.Name, bar, t.Muted.Render(fmt.Sprintf("%d/%d", a.Current, a.Target)))
				}
				fmt.Fprintf(out, "   %s\n", t.Muted.Render(a.Description))
			}
			return nil
		},
	}

	cmd.AddCommand(newAchievementsClaimCmd())
	return cmd
}

func newAchievementsClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <achievement-id>",
		Short: "Claim an earned achievement's reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimAchievement(ctx, args[0])
			if err != nil {
				return err
			}
			t := themeFor(res.State)
			if res.AlreadyClaimed {
				fmt.Fprintln(cmd.OutOrStdout(), t.Muted.Render("Already claimed."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Gold.Render(fmt.Sprintf("%s +%d RC (balance %d)", ui.IconTrophy, res.Reward, res.BalanceAfter)))
			return nil
		},
	}
}
