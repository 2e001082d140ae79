package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapjournal/internal/ui"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Init(ctx); err != nil {
				return err
			}
			t := ui.Default()
			fmt.Fprintln(cmd.OutOrStdout(), t.Good.Render(ui.IconSparkle+" Journal created. Write your first bars with 'rj write'."))
			return nil
		},
	}
}
