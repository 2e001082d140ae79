package root

import (
	"context"

	"github.com/spf13/cobra"

	"rapjournal/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, svc, cmd.OutOrStdout())
		},
	}
}
