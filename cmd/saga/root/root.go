package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studysaga/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "saga",
	Short:         "StudySaga — pomodoro focus timer with RPG progression",
	Long:          "StudySaga is a local-first pomodoro + lofi companion with XP, levels, login streaks, event buffs and daily gifts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newFocusCmd(),
		newStatusCmd(),
		newBuffsCmd(),
		newGiftCmd(),
		newNotifyCmd(),
		newChatCmd(),
		newSettingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
