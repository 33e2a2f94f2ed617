package cli

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
	"github.com/julianstephens/lockd/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}
	w := ctx.out()
	tasks := ctx.Store.TasksForDay(day)

	fmt.Fprintf(w, "Plan for %s:\n\n", day.Format(constants.DateFormat))
	if len(tasks) == 0 {
		fmt.Fprintln(w, "  No tasks scheduled")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold("Time"), bold("Task"), bold("Category"), bold("Priority"), "")
	done := 0
	for _, t := range tasks {
		status := "[ ]"
		if t.IsCompleted() {
			status = okMark("[x]")
			done++
		}
		flag := ""
		if ctx.Store.HasOverlap(t) {
			flag = warnMark("overlap")
		}
		tbl.AddRow(status, format.TimeRange(t.Start, t.End), t.Title, t.Category, string(t.Priority), flag)
	}
	fmt.Fprintln(w, tbl)

	summary := models.DaySummary{Date: day, TotalTasks: len(tasks), CompletedTasks: done}
	fmt.Fprintf(w, "\n%d/%d done (%s)\n", done, len(tasks), format.Percent(summary.CompletionRate()))

	for _, pair := range ctx.Store.Conflicts(day) {
		fmt.Fprintf(w, "%s %s (%s) overlaps %s (%s)\n", warnMark("⚠"),
			pair[0].Title, format.TimeRange(pair[0].Start, pair[0].End),
			pair[1].Title, format.TimeRange(pair[1].Start, pair[1].End))
	}
	return nil
}
