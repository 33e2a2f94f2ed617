package planner

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/lockd/internal/models"
)

func lockInDay() models.DayTemplate {
	return models.DayTemplate{
		ID:   "standard",
		Name: "Standard Lock-In Day",
		Tasks: []models.TemplateTask{
			{Title: "Hydration", Category: "Habit", StartHour: 8, DurationMinutes: 10, Priority: models.PriorityLow, Source: models.SourceHabit},
			{Title: "Focus Block", Category: "Work", StartHour: 9, DurationMinutes: 120, Priority: models.PriorityHigh, Source: models.SourceManual},
			{Title: "Lift Session", Category: "Workout", StartHour: 18, DurationMinutes: 70, Priority: models.PriorityHigh, Source: models.SourceWorkout},
		},
	}
}

type taskShape struct {
	Title      string
	Start, End time.Time
}

func shapes(tasks []models.Task) []taskShape {
	out := make([]taskShape, len(tasks))
	for i, t := range tasks {
		out[i] = taskShape{t.Title, t.Start, t.End}
	}
	return out
}

func TestApplyTemplate_Materializes(t *testing.T) {
	s := newTestStore()
	added := s.ApplyTemplate(lockInDay(), dayOffset(1, 15, 0))

	if len(added) != 3 {
		t.Fatalf("ApplyTemplate() added %d tasks, want 3", len(added))
	}
	focus := added[1]
	if !focus.Start.Equal(dayOffset(1, 9, 0)) || !focus.End.Equal(dayOffset(1, 11, 0)) {
		t.Errorf("Focus Block = %v-%v, want 09:00-11:00 tomorrow", focus.Start, focus.End)
	}
	if focus.Notes != "" || focus.IsCompleted() || focus.Priority != models.PriorityHigh {
		t.Errorf("Focus Block = %+v, want empty notes, incomplete, high", focus)
	}
}

func TestApplyTemplate_Idempotent(t *testing.T) {
	once := newTestStore()
	once.ApplyTemplate(lockInDay(), at(0, 0))

	twice := newTestStore()
	twice.ApplyTemplate(lockInDay(), at(0, 0))
	if again := twice.ApplyTemplate(lockInDay(), at(0, 0)); len(again) != 0 {
		t.Errorf("second ApplyTemplate() added %d tasks, want 0", len(again))
	}

	if a, b := shapes(once.TasksForDay(at(0, 0))), shapes(twice.TasksForDay(at(0, 0))); !reflect.DeepEqual(a, b) {
		t.Errorf("task sets differ:\nonce  %v\ntwice %v", a, b)
	}
}

func TestApplyTemplate_DedupesByTitleAndHour(t *testing.T) {
	s := newTestStore()
	// Same title, same hour, different minute: suppressed.
	mustAdd(t, s, "Focus Block", at(9, 30), at(10, 0))
	// Same title, different hour: not suppressed.
	mustAdd(t, s, "Hydration", at(7, 0), at(7, 10))

	added := s.ApplyTemplate(lockInDay(), at(0, 0))
	var titles []string
	for _, task := range added {
		titles = append(titles, task.Title)
	}
	if want := []string{"Hydration", "Lift Session"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("ApplyTemplate() added %v, want %v", titles, want)
	}
}

func TestApplyTemplateByID(t *testing.T) {
	s := newTestStore(WithState(State{DayTemplates: []models.DayTemplate{lockInDay()}}))

	added, err := s.ApplyTemplateByID("standard", at(0, 0))
	if err != nil || len(added) != 3 {
		t.Errorf("ApplyTemplateByID() = %d tasks, %v, want 3, nil", len(added), err)
	}
	if _, err := s.ApplyTemplateByID("missing", at(0, 0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("ApplyTemplateByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCreateTemplate_EmptyDay(t *testing.T) {
	s := newTestStore(WithState(State{DayTemplates: []models.DayTemplate{lockInDay()}}))

	_, err := s.CreateTemplate("Nothing", dayOffset(4, 0, 0))
	if !errors.Is(err, ErrEmptyDay) {
		t.Fatalf("CreateTemplate() error = %v, want ErrEmptyDay", err)
	}
	if got := len(s.DayTemplates()); got != 1 {
		t.Errorf("DayTemplates() len = %d, want 1", got)
	}
}

func TestCreateTemplate_CapturesBlocks(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, "Deep Work Sprint", at(10, 0), at(11, 30))
	mustAdd(t, s, "Morning Run", at(7, 0), at(7, 40))

	tmpl, err := s.CreateTemplate("Copy of today", at(12, 0))
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	want := []models.TemplateTask{
		{Title: "Morning Run", Category: "Work", StartHour: 7, StartMinute: 0, DurationMinutes: 40, Priority: models.PriorityHigh, Source: models.SourceManual},
		{Title: "Deep Work Sprint", Category: "Work", StartHour: 10, StartMinute: 0, DurationMinutes: 90, Priority: models.PriorityHigh, Source: models.SourceManual},
	}
	if len(tmpl.Tasks) != len(want) {
		t.Fatalf("template has %d blocks, want %d", len(tmpl.Tasks), len(want))
	}
	for i := range want {
		got := tmpl.Tasks[i]
		got.ID = ""
		if got != want[i] {
			t.Errorf("block[%d] = %+v, want %+v", i, got, want[i])
		}
	}
	if tmpl.TotalMinutes() != 130 {
		t.Errorf("TotalMinutes() = %d, want 130", tmpl.TotalMinutes())
	}

	stored, err := s.DayTemplate(tmpl.ID)
	if err != nil || stored.Name != "Copy of today" {
		t.Errorf("DayTemplate() = %v, %v", stored, err)
	}

	// Templates are detached from the day they were captured from.
	s.ApplyTemplate(tmpl, dayOffset(1, 0, 0))
	if got := len(s.TasksForDay(dayOffset(1, 0, 0))); got != 2 {
		t.Errorf("applied captured template, got %d tasks, want 2", got)
	}
}

func TestApplyTemplate_EmptyTemplateCreatesBucket(t *testing.T) {
	s := newTestStore()
	s.ApplyTemplate(models.DayTemplate{Name: "Blank"}, dayOffset(3, 0, 0))

	history := s.History()
	if len(history) != 1 || history[0].TotalTasks != 0 {
		t.Errorf("History() = %+v, want a single empty day", history)
	}
}

func TestApplyTemplate_InvalidTimeStaysOnDay(t *testing.T) {
	tmpl := models.DayTemplate{
		ID: "odd",
		Tasks: []models.TemplateTask{
			{Title: "Late", StartHour: 25, DurationMinutes: 30},
			{Title: "Overflow", StartHour: 9, StartMinute: 75, DurationMinutes: 30},
		},
	}
	s := newTestStore()
	added := s.ApplyTemplate(tmpl, at(15, 0))

	if len(added) != 2 {
		t.Fatalf("ApplyTemplate() added %d tasks, want 2", len(added))
	}
	for _, task := range added {
		if !task.Start.Equal(at(0, 0)) {
			t.Errorf("%s start = %v, want midnight of the target day", task.Title, task.Start)
		}
	}
	if got := len(s.TasksForDay(at(0, 0))); got != 2 {
		t.Errorf("TasksForDay() = %d tasks, want 2", got)
	}
	if got := len(s.TasksForDay(dayOffset(1, 0, 0))); got != 0 {
		t.Errorf("TasksForDay(next day) = %d tasks, want 0", got)
	}
	// Both blocks sit at 00:00-00:30 in the same bucket.
	if !s.HasOverlap(added[0]) {
		t.Error("HasOverlap() = false, want true for blocks sharing a bucket")
	}
	if history := s.History(); len(history) != 1 || history[0].TotalTasks != 2 {
		t.Errorf("History() = %+v, want one day with 2 tasks", history)
	}
	if again := s.ApplyTemplate(tmpl, at(15, 0)); len(again) != 0 {
		t.Errorf("second ApplyTemplate() added %d tasks, want 0", len(again))
	}
}

func TestApplyTemplate_IdempotentAcrossDSTGap(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	springForward := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	s := New(
		WithClock(func() time.Time { return springForward }),
		WithLocation(loc),
	)
	tmpl := models.DayTemplate{
		ID:    "early",
		Tasks: []models.TemplateTask{{Title: "Night Shift", StartHour: 2, StartMinute: 30, DurationMinutes: 60}},
	}

	if added := s.ApplyTemplate(tmpl, springForward); len(added) != 1 {
		t.Fatalf("ApplyTemplate() added %d tasks, want 1", len(added))
	}
	if again := s.ApplyTemplate(tmpl, springForward); len(again) != 0 {
		t.Errorf("second ApplyTemplate() added %d tasks, want 0", len(again))
	}
	if got := len(s.TasksForDay(springForward)); got != 1 {
		t.Errorf("TasksForDay() = %d tasks, want 1", got)
	}
}
