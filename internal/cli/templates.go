package cli

import (
	"fmt"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
)

type TemplatesCmd struct {
	Apply string `help:"Apply the named day template and show the result."`
	Date  string `help:"Target date for --apply (YYYY-MM-DD)." default:"today"`
}

func (c *TemplatesCmd) Run(ctx *Context) error {
	w := ctx.out()

	if c.Apply != "" {
		day, err := ctx.resolveDay(c.Date)
		if err != nil {
			return err
		}
		for _, tmpl := range ctx.Store.DayTemplates() {
			if tmpl.Name != c.Apply && tmpl.ID != c.Apply {
				continue
			}
			added := ctx.Store.ApplyTemplate(tmpl, day)
			fmt.Fprintf(w, "Applied %q to %s: %d task(s) added, %d already present.\n\n",
				tmpl.Name, day.Format(constants.DateFormat), len(added), len(tmpl.Tasks)-len(added))
			return (&DayCmd{Date: day.Format(constants.DateFormat)}).Run(ctx)
		}
		return fmt.Errorf("unknown day template %q", c.Apply)
	}

	fmt.Fprintln(w, bold("Day templates"))
	for _, tmpl := range ctx.Store.DayTemplates() {
		fmt.Fprintf(w, "  %s (%d blocks, %s)\n", tmpl.Name, len(tmpl.Tasks), format.Minutes(tmpl.TotalMinutes()))
		for _, b := range tmpl.Tasks {
			fmt.Fprintf(w, "    %02d:%02d  %-16s %s\n", b.StartHour, b.StartMinute, b.Title, format.Minutes(b.DurationMinutes))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Workout templates"))
	for _, wt := range ctx.Store.WorkoutTemplates() {
		fmt.Fprintf(w, "  %s\n", wt.Name)
		for _, ex := range wt.Exercises {
			fmt.Fprintf(w, "    %-24s %dx%d\n", ex.Name, ex.TargetSets, ex.TargetReps)
		}
	}
	return nil
}
