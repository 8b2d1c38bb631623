package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studysaga/internal/engine"
	"studysaga/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and recent sessions",
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
			level := engine.LevelForTotalXP(s.XPTotal)
			nextReq := engine.XPRequiredForLevel(level + 1)
			toNext := nextReq - s.XPTotal
			if toNext < 0 {
				toNext = 0
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "StudySaga Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next at %d, %d to go)", s.XPTotal, nextReq, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s) (best %d)", ui.IconFlame, s.StreakCurrent, s.StreakLongest)))
			fmt.Fprintln(out, ui.LabelValue("Role", s.Role))
			fmt.Fprintln(out, ui.LabelValue("Scene", fmt.Sprintf("%s / %s %s", s.Background, s.Playlist, ui.IconMusic)))
			fmt.Fprintln(out, "")

			now := time.Now()
			if active := svc.Catalog().Active(now); len(active) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Active buffs"))
				for _, b := range active {
					fmt.Fprintf(out, "- %s %s ×%.2g %s\n", b.Icon, b.Title, b.XPMultiplier, ui.Muted.Render(b.Description))
				}
				fmt.Fprintln(out, "")
			}

			recent, err := svc.SessionRepo().ListRecent(ctx, 5)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconClock+" Recent sessions"))
			if len(recent) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet — run `saga focus`)"))
				return nil
			}
			for _, fs := range recent {
				line := fmt.Sprintf("- %s  %d min  +%d XP", fs.CompletedAt.Local().Format("Jan 02 15:04"), fs.Minutes, fs.XPAwarded)
				if fs.Multiplier > 1.0 {
					line += " " + ui.Gold.Render(fmt.Sprintf("(×%.2g)", fs.Multiplier))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
