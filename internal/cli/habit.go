package cli

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/lockd/internal/models"
)

type HabitsCmd struct {
	Log    string `help:"Log a completed day for the named habit."`
	Missed bool   `help:"With --log, record a missed day instead."`
}

func (c *HabitsCmd) Run(ctx *Context) error {
	w := ctx.out()

	if c.Log != "" {
		h, err := findHabit(ctx, c.Log)
		if err != nil {
			return err
		}
		res, err := ctx.Store.LogHabit(h.ID, !c.Missed)
		if err != nil {
			return err
		}
		if c.Missed {
			fmt.Fprintf(w, "Logged a miss for %s. Streak reset.\n", res.Habit.Name)
		} else {
			fmt.Fprintf(w, "Logged %s: %d/%d this week, streak %d.\n",
				res.Habit.Name, res.Habit.WeeklyCompleted, res.Habit.WeeklyTarget, res.Habit.CurrentStreak)
		}
		if res.Achievement != nil {
			fmt.Fprintf(w, "%s %s: %s\n", okMark("*"), res.Achievement.Title, res.Achievement.Detail)
		}
		fmt.Fprintln(w)
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet.")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Habit"), bold("Type"), bold("Week"), bold("Streak"), bold("Best"), bold("Reminder"))
	for _, h := range habits {
		week := fmt.Sprintf("%d/%d", h.WeeklyCompleted, h.WeeklyTarget)
		if h.IsGoalCompleted() {
			week = okMark(week)
		}
		tbl.AddRow(h.Name, h.Type.Label(), week, h.CurrentStreak, h.BestStreak, h.ReminderTime())
	}
	fmt.Fprintln(w, tbl)

	if achievements := ctx.Store.Achievements(); len(achievements) > 0 {
		fmt.Fprintf(w, "\n%d achievement(s), latest: %s\n", len(achievements), achievements[0].Detail)
	}
	return nil
}

func findHabit(ctx *Context, name string) (models.Habit, error) {
	for _, h := range ctx.Store.Habits() {
		if strings.EqualFold(h.Name, name) || h.ID == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("unknown habit %q", name)
}
