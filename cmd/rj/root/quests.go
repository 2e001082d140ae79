package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapjournal/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's quests",
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
			fmt.Fprintln(out, t.Heading(ui.IconQuest, "Daily Quests — "+st.Today.String()))
			for _, q := range st.Quests {
				switch {
				case q.Claimed:
					fmt.Fprintf(out, "%s %s\n", ui.IconDone, t.Muted.Render(q.Description))
				case q.Satisfied:
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconSparkle, q.Description, t.Gold.Render(fmt.Sprintf("+%d RC", q.Reward)), t.Good.Render("— claim with 'rj quests claim "+q.ID+"'"))
				default:
					fmt.Fprintf(out, "%s %s %s\n", "⬜", q.Description, t.Muted.Render(fmt.Sprintf("+%d RC", q.Reward)))
				}
			}
			fmt.Fprintln(out, "")
			switch {
			case st.Bonus.Claimed:
				fmt.Fprintln(out, t.Muted.Render(ui.IconTrophy+" Daily bonus claimed."))
			case st.Bonus.Satisfied:
				fmt.Fprintln(out, t.Gold.Render(fmt.Sprintf("%s All quests done! Claim +%d RC with 'rj quests bonus'.", ui.IconTrophy, st.Bonus.Reward)))
			default:
				fmt.Fprintln(out, t.Muted.Render(fmt.Sprintf("%s Claim all quests to unlock a +%d RC bonus.", ui.IconTrophy, st.Bonus.Reward)))
			}
			return nil
		},
	}

	cmd.AddCommand(newQuestsClaimCmd(), newQuestsBonusCmd())
	return cmd
}

func newQuestsClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <quest-id>",
		Short: "Claim a completed quest's reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimQuest(ctx, args[0])
			if err != nil {
				return err
			}
			t := themeFor(res.State)
			if res.AlreadyClaimed {
				fmt.Fprintln(cmd.OutOrStdout(), t.Muted.Render("Already claimed."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Good.Render(fmt.Sprintf("%s +%d RC (balance %d)", ui.IconDone, res.Reward, res.BalanceAfter)))
			return nil
		},
	}
}

func newQuestsBonusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonus",
		Short: "Claim the all-quests daily bonus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimDailyBonus(ctx)
			if err != nil {
				return err
			}
			t := themeFor(res.State)
			if res.AlreadyClaimed {
				fmt.Fprintln(cmd.OutOrStdout(), t.Muted.Render("Bonus already claimed."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Gold.Render(fmt.Sprintf("%s Daily bonus +%d RC (balance %d)", ui.IconTrophy, res.Reward, res.BalanceAfter)))
			return nil
		},
	}
}
