package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/notifier"
	"github.com/julianstephens/lockd/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	w := ctx.out()
	fmt.Fprintln(w, "Running diagnostics...")
	fmt.Fprintln(w)

	hasError := false
	check := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(w, "%s %s: FAIL\n", failMark("❌"), name)
			fmt.Fprintf(w, "   Error: %v\n", err)
			hasError = true
			return
		}
		fmt.Fprintf(w, "%s %s: OK\n", okMark("✓"), name)
	}
	warn := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(w, "%s %s: WARNING\n", warnMark("⚠"), name)
			fmt.Fprintf(w, "   %v\n", err)
			return
		}
		fmt.Fprintf(w, "%s %s: OK\n", okMark("✓"), name)
	}

	check("Configuration", ctx.Config.Validate())
	check("Clock/timezone", checkClockTimezone(ctx, w))
	warn("Log directory", checkLogDir(ctx))
	warn("Notification tray", checkTray(ctx))
	check("Data validation", checkValidation(ctx))

	fmt.Fprintln(w)
	if hasError {
		fmt.Fprintln(w, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(w, "All diagnostics passed!")
	return nil
}

func checkClockTimezone(ctx *Context, w io.Writer) error {
	if !utils.ValidateTimezone(ctx.Config.Timezone) {
		return fmt.Errorf("unknown timezone %q", ctx.Config.Timezone)
	}

	now := ctx.Store.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if ctx.Store.Location() == time.UTC {
		fmt.Fprintln(w, "   Note: timezone is UTC")
	}
	return nil
}

func checkLogDir(ctx *Context) error {
	dir, err := ctx.Config.Dir()
	if err != nil {
		return err
	}
	logDir := filepath.Dir(logger.LogPath(dir))
	info, err := os.Stat(logDir)
	if err != nil {
		return fmt.Errorf("log directory %s not found (it is created on first run)", logDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", logDir)
	}
	return nil
}

func checkTray(ctx *Context) error {
	if !ctx.Config.Notifications.Enabled {
		return fmt.Errorf("notifications are disabled in config")
	}
	if ctx.Notifier == nil {
		return fmt.Errorf("notifier not configured")
	}
	status, err := ctx.Notifier.Status()
	switch {
	case errors.Is(err, notifier.ErrTrayNotRunning):
		return fmt.Errorf("tray app is not running, reminders will be logged only")
	case err != nil:
		return err
	}
	logger.Debug("tray found", "pid", status.PID, "port", status.Port)
	return nil
}

func checkValidation(ctx *Context) error {
	seen := make(map[string]bool)
	for _, s := range ctx.Store.History() {
		for _, task := range ctx.Store.TasksForDay(s.Date) {
			if seen[task.ID] {
				return fmt.Errorf("duplicate task ID found: %s", task.ID)
			}
			seen[task.ID] = true
			if !task.End.After(task.Start) {
				return fmt.Errorf("task %q ends before it starts", task.Title)
			}
		}
	}
	return nil
}
