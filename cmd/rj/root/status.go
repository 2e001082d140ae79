package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rapjournal/internal/prompts"
	"rapjournal/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show balance, streaks and today's prompt",
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
			m := st.Metrics

			fmt.Fprintln(out, t.Heading(ui.IconMic, "Rap Journal"))
			if !st.Found {
				fmt.Fprintln(out, t.Muted.Render("No journal yet. 'rj init' creates one, or just 'rj write' your first bars."))
				fmt.Fprintln(out, "")
			}
			fmt.Fprintln(out, t.LabelValue("Balance", t.Gold.Render(fmt.Sprintf("%d RC", m.Balance))))
			fmt.Fprintln(out, t.LabelValue("Streak", t.Streak(m.CurrentStreak)))
			fmt.Fprintln(out, t.LabelValue("Longest streak", fmt.Sprintf("%d days", m.LongestStreak)))
			fmt.Fprintln(out, t.LabelValue("Sessions", m.Sessions))
			fmt.Fprintln(out, t.LabelValue("Total words", m.TotalWords))
			if m.WordsToday > 0 {
				fmt.Fprintln(out, t.LabelValue("Words today", m.WordsToday))
			}
			fmt.Fprintln(out, "")

			word := prompts.WordOfDay(st.Today)
			fmt.Fprintln(out, t.H2.Render("🎯 Today"))
			fmt.Fprintln(out, t.LabelValue("Word of the day", t.Gold.Render(strings.ToUpper(word.Word))))
			if len(word.Rhymes) > 0 {
				fmt.Fprintln(out, t.LabelValue("Rhymes", strings.Join(word.Rhymes, ", ")))
			}
			fmt.Fprintln(out, t.LabelValue("Prompt", prompts.PromptOfDay(st.Today)))
			fmt.Fprintln(out, "")

			open := 0
			for _, q := range st.Quests {
				if !q.Claimed {
					open++
				}
			}
			earned := 0
			for _, a := range st.Achievements {
				if a.Satisfied {
					earned++
				}
			}
			fmt.Fprintln(out, t.LabelValue("Quests open", fmt.Sprintf("%d of %d", open, len(st.Quests))))
			fmt.Fprintln(out, t.LabelValue("Achievements", fmt.Sprintf("%d of %d", earned, len(st.Achievements))))
			if st.Ledger.Theme != "" && st.Ledger.Theme != "default" {
				fmt.Fprintln(out, t.LabelValue("Theme", st.Ledger.Theme))
			}
			if len(st.Ledger.Gear) > 0 {
				fmt.Fprintln(out, t.LabelValue("Gear", strings.Join(st.Ledger.Gear, ", ")))
			}
			return nil
		},
	}
}
