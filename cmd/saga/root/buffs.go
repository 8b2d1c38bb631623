package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studysaga/internal/buff"
	"studysaga/internal/ui"
)

func newBuffsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buffs",
		Short: "Show active and upcoming XP buffs",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := buff.Default()
			now := nowFunc()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Event Buffs"))
			fmt.Fprintln(out, "")

			active := catalog.Active(now)
			fmt.Fprintln(out, ui.H2.Render("Active now"))
			if len(active) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			for _, b := range active {
				fmt.Fprintln(out, renderBuff(b))
			}
			fmt.Fprintln(out, "")

			upcoming := catalog.Upcoming(now)
			fmt.Fprintln(out, ui.H2.Render("Coming up"))
			if len(upcoming) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing on the horizon)"))
				return nil
			}
			for _, b := range upcoming {
				fmt.Fprintln(out, renderBuff(b))
			}
			return nil
		},
	}

	return cmd
}

func renderBuff(b buff.Buff) string {
	line := fmt.Sprintf("- %s %s ×%.2g", b.Icon, ui.Key.Render(b.Title), b.XPMultiplier)
	if b.FlatXPBonus > 0 {
		line += ui.Gold.Render(fmt.Sprintf(" +%d XP", b.FlatXPBonus))
	}
	if b.Rule.DurationHours > 0 {
		line += ui.Muted.Render(fmt.Sprintf(" (%s window)", time.Duration(b.Rule.DurationHours*float64(time.Hour))))
	}
	return line + "  " + ui.Muted.Render(b.Description)
}
