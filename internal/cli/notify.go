package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lockd/internal/constants"
)

type NotifyCmd struct {
	Text   []string `arg:"" help:"Notification text."`
	DryRun bool     `help:"Print the notification instead of sending it."`
}

func (cmd *NotifyCmd) Run(ctx *Context) error {
	text := strings.TrimSpace(strings.Join(cmd.Text, " "))
	if text == "" {
		return fmt.Errorf("notification text is empty")
	}
	if cmd.DryRun {
		fmt.Fprintf(ctx.out(), "[%s] %s\n", constants.AppName, text)
		return nil
	}
	if ctx.Notifier == nil {
		return fmt.Errorf("notifier not configured")
	}
	if err := ctx.Notifier.Notify(text); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Fprintln(ctx.out(), "Notification sent.")
	return nil
}
