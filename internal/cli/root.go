package cli

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/lockd/internal/config"
	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/livestatus"
	"github.com/julianstephens/lockd/internal/notifier"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/reminder"
	"github.com/julianstephens/lockd/internal/utils"
)

// Context is passed to every command's Run method.
type Context struct {
	Store     *planner.Store
	Config    *config.Config
	Notifier  *notifier.Notifier
	Board     *livestatus.Board
	Reminders *reminder.Scheduler
	Out       io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// resolveDay parses an optional YYYY-MM-DD argument against the store clock.
func (c *Context) resolveDay(date string) (time.Time, error) {
	if date == "today" {
		date = ""
	}
	return utils.ResolveDate(date, c.Store.Now(), c.Store.Location())
}

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	bold     = color.New(color.Bold).SprintFunc()
)

func clock(t time.Time) string {
	return t.Format(constants.TimeFormat)
}
