package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lockd/internal/validation"
)

type ValidateCmd struct {
	Date string `arg:"" optional:"" help:"Day to validate (YYYY-MM-DD). Validates every known day when omitted."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	w := ctx.out()

	result, days, err := cmd.validate(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Validated %d day(s).\n", days)
	fmt.Fprintln(w, result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found", len(result.Conflicts))
	}
	return nil
}

func (cmd *ValidateCmd) validate(ctx *Context) (validation.ValidationResult, int, error) {
	var days []time.Time
	if cmd.Date != "" {
		day, err := ctx.resolveDay(cmd.Date)
		if err != nil {
			return validation.ValidationResult{}, 0, err
		}
		days = append(days, day)
	} else {
		for _, s := range ctx.Store.History() {
			days = append(days, s.Date)
		}
	}

	var all validation.ValidationResult
	for _, day := range days {
		result := validation.ValidateDay(day, ctx.Store.TasksForDay(day))
		all.Conflicts = append(all.Conflicts, result.Conflicts...)
	}
	return all, len(days), nil
}
