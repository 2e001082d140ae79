package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rapjournal/internal/storage"
	"rapjournal/internal/ui"
)

const Version = "0.1.0"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:           "rj",
	Short:         "Rap journal — daily lyrics with streaks, quests and a shop",
	Long:          "rj keeps a daily lyrics journal in a version-controlled text file and turns the habit into a game: streaks, rap coins, daily quests, achievements and cosmetic unlocks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log journal store requests")

	rootCmd.AddCommand(
		newInitCmd(),
		newWriteCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newShopCmd(),
		newAchievementsCmd(),
		newTimelineCmd(),
		newThemeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		t := ui.Default()
		if errors.Is(err, storage.ErrConflict) {
			fmt.Fprintln(os.Stderr, t.Warn.Render(ui.IconWarn+" The journal changed while you were working. Please retry."))
		} else {
			fmt.Fprintln(os.Stderr, t.Bad.Render(ui.IconError+" "+err.Error()))
		}
		os.Exit(1)
	}
}
