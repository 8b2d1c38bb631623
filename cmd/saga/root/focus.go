package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studysaga/internal/tui"
	"studysaga/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro and earn XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("focus takes no arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.SettingsRepo().GetMain(ctx)
			if err != nil {
				return err
			}
			if minutes <= 0 {
				minutes = s.FocusMinutes
			}

			// Starting a session counts as today's login.
			if _, err := svc.TouchLogin(ctx, nowFunc()); err != nil {
				return err
			}

			res, err := tui.RunFocus(ctx, svc, minutes, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Session abandoned. No XP this time."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Session complete"))
			award := fmt.Sprintf("+%d XP (%d base", res.XPAwarded, res.BaseXP)
			if res.Multiplier > 1.0 {
				award += fmt.Sprintf(" ×%.2g", res.Multiplier)
			}
			if res.FlatBonus > 0 {
				award += fmt.Sprintf(" +%d bonus", res.FlatBonus)
			}
			award += ")"
			fmt.Fprintln(out, ui.Good.Render(award))
			for _, b := range res.ActiveBuffs {
				fmt.Fprintf(out, "  %s %s\n", b.Icon, ui.Muted.Render(b.Title))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s Level %d → %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length (default: your focus setting)")

	return cmd
}
