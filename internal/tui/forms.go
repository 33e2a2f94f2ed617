package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/utils"
	"github.com/julianstephens/lockd/internal/validation"
)

// TaskFormModel backs the add-task form.
type TaskFormModel struct {
	Title    string
	Category string
	Start    string
	End      string
	Priority models.Priority
	Notes    string
}

func newTaskFormModel() *TaskFormModel {
	return &TaskFormModel{
		Category: "Focus",
		Start:    "09:00",
		End:      "10:00",
		Priority: models.PriorityMedium,
	}
}

// NewTask converts the form into store input for day.
func (fm *TaskFormModel) NewTask(day time.Time, loc *time.Location) (planner.NewTask, error) {
	date := utils.DayString(day, loc)
	start, err := utils.CombineDateAndTime(date, fm.Start, loc)
	if err != nil {
		return planner.NewTask{}, err
	}
	end, err := utils.CombineDateAndTime(date, fm.End, loc)
	if err != nil {
		return planner.NewTask{}, err
	}
	title := strings.TrimSpace(fm.Title)
	if err := validation.ValidateTaskInput(title, start, end); err != nil {
		return planner.NewTask{}, err
	}
	return planner.NewTask{
		Title:    title,
		Category: strings.TrimSpace(fm.Category),
		Notes:    strings.TrimSpace(fm.Notes),
		Start:    start,
		End:      end,
		Priority: fm.Priority,
	}, nil
}

type TemplateFormModel struct {
	Name       string
	TemplateID string
}

type HabitFormModel struct {
	Name   string
	Type   models.HabitType
	Target string
}

func (fm *HabitFormModel) WeeklyTarget() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(fm.Target))
	if err != nil || n < 1 || n > 7 {
		return 0, fmt.Errorf("weekly target must be 1-7")
	}
	return n, nil
}

type SetFormModel struct {
	Exercise string
	Weight   string
	Reps     string
	Sets     string
}

// Parse returns weight, reps and sets.
func (fm *SetFormModel) Parse() (float64, int, int, error) {
	if strings.TrimSpace(fm.Exercise) == "" {
		return 0, 0, 0, fmt.Errorf("exercise cannot be empty")
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(fm.Weight), 64)
	if err != nil || weight < 0 {
		return 0, 0, 0, fmt.Errorf("invalid weight %q", fm.Weight)
	}
	reps, err := positiveInt(fm.Reps, "reps")
	if err != nil {
		return 0, 0, 0, err
	}
	sets, err := positiveInt(fm.Sets, "sets")
	if err != nil {
		return 0, 0, 0, err
	}
	return weight, reps, sets, nil
}

type CardioFormModel struct {
	Machine  models.CardioMachine
	Duration string
	Speed    string
	Incline  string
	Level    string
}

func (fm *CardioFormModel) CardioLog() (models.CardioLog, error) {
	duration, err := positiveInt(fm.Duration, "duration")
	if err != nil {
		return models.CardioLog{}, err
	}
	speed, err := optionalFloat(fm.Speed, "speed")
	if err != nil {
		return models.CardioLog{}, err
	}
	incline, err := optionalFloat(fm.Incline, "incline")
	if err != nil {
		return models.CardioLog{}, err
	}
	level := 0
	if strings.TrimSpace(fm.Level) != "" {
		if level, err = positiveInt(fm.Level, "level"); err != nil {
			return models.CardioLog{}, err
		}
	}
	return models.CardioLog{
		Machine:         fm.Machine,
		DurationMinutes: duration,
		Speed:           speed,
		Incline:         incline,
		Level:           level,
	}, nil
}

func positiveInt(s, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", field)
	}
	return n, nil
}

func optionalFloat(s, field string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	return f, nil
}

func validateClock(s string) error {
	if _, err := utils.ParseTime(s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

func NewTaskForm(fm *TaskFormModel) *huh.Form {
	priorities := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorities = append(priorities, huh.NewOption(strings.ToUpper(string(p[:1]))+string(p[1:]), p))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return validation.ErrEmptyTitle
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&fm.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Value(&fm.End).
				Validate(validateClock),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(priorities...).
				Value(&fm.Priority),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewCreateTemplateForm(fm *TemplateFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("template name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewApplyTemplateForm(fm *TemplateFormModel, templates []models.DayTemplate) *huh.Form {
	opts := make([]huh.Option[string], 0, len(templates))
	for _, t := range templates {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d blocks)", t.Name, len(t.Tasks)), t.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Apply Day Template").
				Options(opts...).
				Value(&fm.TemplateID),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewScheduleWorkoutForm(fm *TemplateFormModel, templates []models.WorkoutTemplate) *huh.Form {
	opts := make([]huh.Option[string], 0, len(templates))
	for _, t := range templates {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d exercises)", t.Name, len(t.Exercises)), t.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Schedule Workout").
				Description(fmt.Sprintf("Booked at %02d:%02d on the selected day", constants.WorkoutStartHour, constants.WorkoutStartMinute)).
				Options(opts...).
				Value(&fm.TemplateID),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.HabitType]().
				Title("Type").
				Options(
					huh.NewOption("Build", models.HabitBuild),
					huh.NewOption("Remove", models.HabitRemove),
				).
				Value(&fm.Type),
			huh.NewInput().
				Title("Weekly Target (1-7)").
				Value(&fm.Target).
				Validate(func(s string) error {
					_, err := (&HabitFormModel{Target: s}).WeeklyTarget()
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewSetForm(fm *SetFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Value(&fm.Exercise),
			huh.NewInput().
				Title("Top Set Weight (lb)").
				Value(&fm.Weight),
			huh.NewInput().
				Title("Reps").
				Value(&fm.Reps),
			huh.NewInput().
				Title("Sets").
				Value(&fm.Sets),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewCardioForm(fm *CardioFormModel) *huh.Form {
	machines := make([]huh.Option[models.CardioMachine], 0, len(models.CardioMachines))
	for _, m := range models.CardioMachines {
		machines = append(machines, huh.NewOption(m.Label(), m))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.CardioMachine]().
				Title("Machine").
				Options(machines...).
				Value(&fm.Machine),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(func(s string) error {
					_, err := positiveInt(s, "duration")
					return err
				}),
			huh.NewInput().
				Title("Speed").
				Value(&fm.Speed),
			huh.NewInput().
				Title("Incline").
				Value(&fm.Incline),
			huh.NewInput().
				Title("Level").
				Value(&fm.Level),
		),
	).WithTheme(huh.ThemeDracula())
}
