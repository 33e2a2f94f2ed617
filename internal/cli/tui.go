package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lockd/internal/reminder"
	"github.com/julianstephens/lockd/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx.Store.SyncLiveStatus()

	var n reminder.Notifier
	if ctx.Notifier != nil && ctx.Config != nil && ctx.Config.Notifications.Enabled {
		n = ctx.Notifier
	}

	p := tea.NewProgram(tui.NewModel(runCtx, ctx.Store, ctx.Board, n), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
