package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studysaga/internal/chat"
	"studysaga/internal/notify"
	"studysaga/internal/ui"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send messages to the community room",
		Long:  "Reads lines from stdin and sends each as a chat message. Sends are rate limited per session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			client := notify.NewClient(backendURL(), logger)
			guard := chat.NewDefaultGuard()
			ctx := context.Background()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMusic, "Community Chat"))
			fmt.Fprintln(out, ui.Muted.Render("Type a message and press enter. Ctrl+D to leave."))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				msg, err := guard.Check(scanner.Text())
				if err != nil {
					var ve chat.ValidationError
					var rle chat.RateLimitError
					switch {
					case errors.As(err, &ve):
						fmt.Fprintln(out, ui.Warn.Render(ve.Error()))
					case errors.As(err, &rle):
						fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("slow down — try again in %ds", rle.RetryAfterSeconds)))
					default:
						return err
					}
					continue
				}

				if err := client.SendMessage(ctx, msg); err != nil {
					// Same degrade policy as notifications: log and move on.
					logger.Warn("chat send failed", zap.Error(err))
					fmt.Fprintln(out, ui.Bad.Render("message not delivered"))
					continue
				}
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("sent (%d left this minute)", guard.Remaining())))
			}
			return scanner.Err()
		},
	}

	return cmd
}
