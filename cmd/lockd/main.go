package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lockd/internal/cli"
	"github.com/julianstephens/lockd/internal/config"
	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/errors"
	"github.com/julianstephens/lockd/internal/livestatus"
	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/notifier"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/reminder"
	"github.com/julianstephens/lockd/internal/seed"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Now       cli.NowCmd       `cmd:"" help:"Show the current and next task."`
	Day       cli.DayCmd       `cmd:"" help:"Show the plan for a day."`
	History   cli.HistoryCmd   `cmd:"" help:"Show per-day completion history."`
	Habits    cli.HabitsCmd    `cmd:"" help:"Show and log habits."`
	Trend     cli.TrendCmd     `cmd:"" help:"Show strength trends."`
	Templates cli.TemplatesCmd `cmd:"" help:"List or apply templates."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Validate days for conflicts."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Inspect   cli.DebugCmd     `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Notify    cli.NotifyCmd    `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Lock in your day: planner, habits and gym tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	appCtx, err := setup()
	if err != nil {
		errors.Fatal(err)
	}
	defer appCtx.Reminders.Stop()

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Reminders.Stop()
		errors.Fatal(err)
	}
}

func setup() (*cli.Context, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	dir, err := cfg.Dir()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: dir}); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	n := notifier.New(cfg.Notifier())
	reminders := reminder.New(n)
	board := livestatus.NewBoard(nil)
	board.OnChange = func(a livestatus.Activity) {
		logger.Debug("live status", "current", a.CurrentTitle, "next", a.NextTitle, "active", a.Active)
	}

	opts, err := cfg.PlannerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, planner.WithReminders(reminders), planner.WithLiveStatus(board))
	if cfg.Planner.Seed {
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		opts = append(opts, planner.WithState(seed.State(time.Now(), loc)))
	}

	return &cli.Context{
		Store:     planner.New(opts...),
		Config:    cfg,
		Notifier:  n,
		Board:     board,
		Reminders: reminders,
	}, nil
}
