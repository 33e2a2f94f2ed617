package cli

import (
	"fmt"

	"github.com/julianstephens/lockd/internal/format"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *Context) error {
	w := ctx.out()
	now := ctx.Store.Now()

	if current, ok := ctx.Store.CurrentTask(now); ok {
		fmt.Fprintf(w, "Now (%s): %s  %s [%s]\n", clock(now), format.TimeRange(current.Start, current.End), current.Title, current.Category)
	} else {
		fmt.Fprintf(w, "Now (%s): Free time\n", clock(now))
	}

	if next, ok := ctx.Store.NextTask(now); ok {
		fmt.Fprintf(w, "Next: %s  %s (in %s)\n", format.TimeRange(next.Start, next.End), next.Title,
			format.Minutes(int(next.Start.Sub(now).Minutes())))
	} else if !ctx.Store.HasOpenTasks(now) {
		fmt.Fprintln(w, "Day complete. Everything is locked in.")
	} else {
		fmt.Fprintln(w, "Next: nothing else scheduled")
	}
	return nil
}
