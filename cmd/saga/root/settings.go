package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studysaga/internal/storage"
	"studysaga/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change your settings",
	}

	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFocus, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("focus", fmt.Sprintf("%d min", s.FocusMinutes)))
			fmt.Fprintln(out, ui.LabelValue("short-break", fmt.Sprintf("%d min", s.ShortBreakMinutes)))
			fmt.Fprintln(out, ui.LabelValue("long-break", fmt.Sprintf("%d min", s.LongBreakMinutes)))
			fmt.Fprintln(out, ui.LabelValue("music-volume", s.MusicVolume))
			fmt.Fprintln(out, ui.LabelValue("ambient-volume", s.AmbientVolume))
			fmt.Fprintln(out, ui.LabelValue("role", s.Role))
			fmt.Fprintln(out, ui.LabelValue("background", s.Background))
			fmt.Fprintln(out, ui.LabelValue("playlist", s.Playlist))
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (focus, short-break, long-break, music-volume, ambient-volume, role, background, playlist)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("expected a key and a value")
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
			if err := applySetting(&s, args[0], args[1]); err != nil {
				return err
			}
			if err := svc.SettingsRepo().PutMain(ctx, s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" saved"))
			return nil
		},
	}
}

func applySetting(s *storage.Settings, key, value string) error {
	minutes := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 180 {
			return fmt.Errorf("%s must be minutes in 1..180", key)
		}
		*dst = n
		return nil
	}
	volume := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 100 {
			return fmt.Errorf("%s must be 0..100", key)
		}
		*dst = n
		return nil
	}

	switch key {
	case "focus":
		return minutes(&s.FocusMinutes)
	case "short-break":
		return minutes(&s.ShortBreakMinutes)
	case "long-break":
		return minutes(&s.LongBreakMinutes)
	case "music-volume":
		return volume(&s.MusicVolume)
	case "ambient-volume":
		return volume(&s.AmbientVolume)
	case "role":
		s.Role = value
	case "background":
		s.Background = value
	case "playlist":
		s.Playlist = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
