package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studysaga/internal/notify"
	"studysaga/internal/ui"
)

const defaultBackendURL = "https://api.studysaga.app"

func backendURL() string {
	if u := os.Getenv("STUDYSAGA_BACKEND"); u != "" {
		return u
	}
	return defaultBackendURL
}

func newNotifyCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show system notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			client := notify.NewClient(backendURL(), logger)
			out := cmd.OutOrStdout()

			if !watch {
				// Degrades to an empty list on backend failure; the error
				// is logged, never fatal.
				ns := client.ActiveOrNone(context.Background())
				fmt.Fprintln(out, ui.Heading(ui.IconBell, "System Notifications"))
				if len(ns) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
					return nil
				}
				for _, n := range ns {
					fmt.Fprintln(out, renderNotification(n))
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Watching for notifications every %s (ctrl+c to stop)…", interval)))
			sub := client.Subscribe(ctx, interval, func(n notify.Notification) {
				fmt.Fprintln(out, renderNotification(n))
			})
			defer sub.Close()

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling and print inserts/updates")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Poll interval in watch mode")

	return cmd
}

func renderNotification(n notify.Notification) string {
	line := fmt.Sprintf("%s %s", ui.NotificationIcon(string(n.Type)), n.Message)
	if n.HasAction() {
		if n.IsReloadAction() {
			line += "  " + ui.Warn.Render("["+n.ActionLabel+": restart the app]")
		} else {
			line += "  " + ui.Key.Render("["+n.ActionLabel+"]") + " " + ui.Muted.Render(n.ActionURL)
		}
	}
	return line
}
