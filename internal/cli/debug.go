package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type DebugCmd struct {
	Config    *DebugConfigCmd    `cmd:"" help:"Show the resolved configuration."`
	DumpDay   *DebugDumpDayCmd   `cmd:"" help:"Dump a day's tasks as JSON."`
	DumpTask  *DebugDumpTaskCmd  `cmd:"" help:"Dump task data as JSON."`
	Reminders *DebugRemindersCmd `cmd:"" help:"List pending reminders."`
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *Context) error {
	data, err := yaml.Marshal(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprintf(ctx.out(), "# %s\n", ctx.Config.Path)
	_, err = ctx.out().Write(data)
	return err
}

type DebugDumpDayCmd struct {
	Date string `arg:"" optional:"" help:"Date to dump (YYYY-MM-DD)." default:"today"`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(cmd.Date)
	if err != nil {
		return err
	}
	return writeJSON(ctx, ctx.Store.TasksForDay(day))
}

type DebugDumpTaskCmd struct {
	ID string `arg:"" help:"Task ID to dump."`
}

func (cmd *DebugDumpTaskCmd) Run(ctx *Context) error {
	task, err := ctx.Store.Task(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	return writeJSON(ctx, task)
}

type DebugRemindersCmd struct{}

func (cmd *DebugRemindersCmd) Run(ctx *Context) error {
	if ctx.Reminders == nil {
		fmt.Fprintln(ctx.out(), "Reminder scheduler not running.")
		return nil
	}
	pending := ctx.Reminders.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(ctx.out(), "No pending reminders.")
		return nil
	}
	for _, p := range pending {
		fmt.Fprintf(ctx.out(), "%s  %s  %s\n", p.FireAt.In(ctx.Store.Location()).Format("2006-01-02 15:04"), p.TaskID, p.Title)
	}
	return nil
}

func writeJSON(ctx *Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(ctx.out(), string(data))
	return nil
}
