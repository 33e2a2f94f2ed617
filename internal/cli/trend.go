package cli

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
)

type TrendCmd struct {
	Exercise string `arg:"" optional:"" help:"Exercise name. Lists exercises when omitted."`
}

func (c *TrendCmd) Run(ctx *Context) error {
	w := ctx.out()
	names := ctx.Store.ExerciseNames()

	if c.Exercise == "" {
		if len(names) == 0 {
			fmt.Fprintln(w, "No exercises logged yet.")
			return nil
		}
		for _, name := range names {
			pr, _ := ctx.Store.PersonalRecord(name)
			fmt.Fprintf(w, "%-24s PR %s\n", name, format.Weight(pr))
		}
		return nil
	}

	name := ""
	for _, n := range names {
		if strings.EqualFold(n, c.Exercise) {
			name = n
			break
		}
	}
	if name == "" {
		return fmt.Errorf("no trend for %q (known: %s)", c.Exercise, strings.Join(names, ", "))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Day"), bold("Top set"), bold("Volume"), "")
	for _, p := range ctx.Store.Trend(name) {
		pr := ""
		if p.IsPersonalRecord {
			pr = okMark("PR")
		}
		tbl.AddRow(p.Day.In(ctx.Store.Location()).Format(constants.DateFormat), format.Weight(p.TopSetWeight), format.Volume(p.TotalVolume), pr)
	}
	fmt.Fprintf(w, "%s\n\n", bold(name))
	fmt.Fprintln(w, tbl)
	return nil
}
