package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studysaga/internal/engine"
	"studysaga/internal/ui"
)

func newGiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gift",
		Short: "Claim today's login gift",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimDailyGift(ctx, nowFunc())
			out := cmd.OutOrStdout()
			if err != nil {
				var claimed engine.GiftClaimedError
				if errors.As(err, &claimed) {
					fmt.Fprintln(out, ui.Muted.Render("Already claimed today. Come back tomorrow!"))
					return nil
				}
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconGift, "Daily Gift"))
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("+%d XP", res.XPAwarded))+
				ui.Muted.Render(fmt.Sprintf("  (streak day %d)", res.Streak)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s Level %d → %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
