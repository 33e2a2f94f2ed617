package seed

import (
	"testing"
	"time"

	"github.com/julianstephens/lockd/internal/planner"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newSeededStore() *planner.Store {
	return planner.New(
		planner.WithClock(func() time.Time { return now }),
		planner.WithLocation(time.UTC),
		planner.WithState(State(now, time.UTC)),
	)
}

func TestState_Tasks(t *testing.T) {
	s := newSeededStore()

	today := s.TasksForDay(now)
	if len(today) != 3 {
		t.Fatalf("today has %d tasks, want 3", len(today))
	}
	wantTitles := []string{"Morning Run", "Deep Work Sprint", "Upper Body Session"}
	for i, title := range wantTitles {
		if today[i].Title != title {
			t.Errorf("today[%d] = %q, want %q", i, today[i].Title, title)
		}
	}
	if !today[0].IsCompleted() {
		t.Error("Morning Run should start completed")
	}

	tomorrow := s.TasksForDay(now.AddDate(0, 0, 1))
	if len(tomorrow) != 1 || tomorrow[0].Title != "Plan Review" {
		t.Errorf("tomorrow = %v, want [Plan Review]", tomorrow)
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("History() len = %d, want 2", len(history))
	}
	if rate := history[1].CompletionRate(); rate < 0.33 || rate > 0.34 {
		t.Errorf("today's rate = %v, want 1/3", rate)
	}

	next, ok := s.NextTask(now)
	if !ok || next.Title != "Deep Work Sprint" {
		t.Errorf("NextTask() = %q, %v, want Deep Work Sprint", next.Title, ok)
	}
}

func TestState_TemplatesAndHabits(t *testing.T) {
	s := newSeededStore()

	templates := s.DayTemplates()
	if len(templates) != 1 || templates[0].Name != "Standard Lock-In Day" || len(templates[0].Tasks) != 3 {
		t.Errorf("DayTemplates() = %+v", templates)
	}
	if templates[0].TotalMinutes() != 200 {
		t.Errorf("TotalMinutes() = %d, want 200", templates[0].TotalMinutes())
	}

	habits := s.Habits()
	if len(habits) != 2 {
		t.Fatalf("Habits() len = %d, want 2", len(habits))
	}
	if habits[0].ReminderTime() != "21:30" || habits[1].ReminderTime() != "20:00" {
		t.Errorf("reminders = %s, %s", habits[0].ReminderTime(), habits[1].ReminderTime())
	}

	workouts := s.WorkoutTemplates()
	if len(workouts) != 2 || workouts[0].Name != "Push Day" || workouts[1].Name != "Leg Day" {
		t.Errorf("WorkoutTemplates() = %+v", workouts)
	}
}

func TestState_Trends(t *testing.T) {
	s := newSeededStore()

	bench := s.Trend("Bench Press")
	if len(bench) != 6 {
		t.Fatalf("Bench Press has %d points, want 6", len(bench))
	}
	if bench[0].TopSetWeight != 185 || bench[5].TopSetWeight != 195 {
		t.Errorf("Bench Press weights = %v..%v, want 185..195", bench[0].TopSetWeight, bench[5].TopSetWeight)
	}
	if bench[5].TotalVolume != 195*14 || !bench[5].IsPersonalRecord || bench[4].IsPersonalRecord {
		t.Errorf("last points = %+v, %+v", bench[4], bench[5])
	}

	if pr, ok := s.PersonalRecord("Back Squat"); !ok || pr != 240 {
		t.Errorf("Back Squat PR = %v, %v, want 240", pr, ok)
	}

	// Logging on top of the seed follows the usual record rule.
	if p := s.LogSet("Back Squat", 240, 5, 5); !p.IsPersonalRecord {
		t.Error("tying the seeded PR should be a record")
	}

	cardio := s.CardioLogs()
	if len(cardio) != 2 || cardio[0].Machine != "treadmill" {
		t.Errorf("CardioLogs() = %+v", cardio)
	}
}

func TestState_SuggestionsAccepted(t *testing.T) {
	s := newSeededStore()
	added := s.AcceptHabitSuggestions(now)
	if len(added) != 2 {
		t.Errorf("AcceptHabitSuggestions() added %d, want 2", len(added))
	}
	if len(s.TasksForDay(now)) != 5 {
		t.Errorf("today has %d tasks after suggestions, want 5", len(s.TasksForDay(now)))
	}
}
