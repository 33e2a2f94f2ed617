package models

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestTask_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Task
		b    Task
		want bool
	}{
		{
			name: "partial overlap",
			a:    Task{ID: "a", Start: at(7, 0), End: at(7, 40)},
			b:    Task{ID: "b", Start: at(7, 15), End: at(8, 0)},
			want: true,
		},
		{
			name: "touching intervals do not overlap",
			a:    Task{ID: "a", Start: at(7, 0), End: at(8, 0)},
			b:    Task{ID: "b", Start: at(8, 0), End: at(9, 0)},
			want: false,
		},
		{
			name: "containment",
			a:    Task{ID: "a", Start: at(9, 0), End: at(12, 0)},
			b:    Task{ID: "b", Start: at(10, 0), End: at(10, 30)},
			want: true,
		},
		{
			name: "same id never overlaps",
			a:    Task{ID: "a", Start: at(9, 0), End: at(12, 0)},
			b:    Task{ID: "a", Start: at(9, 0), End: at(12, 0)},
			want: false,
		},
		{
			name: "inverted range never overlaps",
			a:    Task{ID: "a", Start: at(12, 0), End: at(9, 0)},
			b:    Task{ID: "b", Start: at(10, 0), End: at(11, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Task.Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Task.Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_Contains(t *testing.T) {
	task := Task{ID: "a", Start: at(10, 0), End: at(11, 0)}

	if !task.Contains(at(10, 0)) {
		t.Error("expected start instant to be contained")
	}
	if task.Contains(at(11, 0)) {
		t.Error("expected end instant to be excluded")
	}
	if task.Contains(at(9, 59)) {
		t.Error("expected instant before start to be excluded")
	}
}

func TestTask_IsCompleted(t *testing.T) {
	task := Task{ID: "a"}
	if task.IsCompleted() {
		t.Error("expected new task to be incomplete")
	}
	done := at(8, 0)
	task.CompletedAt = &done
	if !task.IsCompleted() {
		t.Error("expected task with completion timestamp to be completed")
	}
}

func TestDaySummary_CompletionRate(t *testing.T) {
	tests := []struct {
		name    string
		summary DaySummary
		want    float64
	}{
		{name: "empty day", summary: DaySummary{}, want: 0},
		{name: "half done", summary: DaySummary{TotalTasks: 2, CompletedTasks: 1}, want: 0.5},
		{name: "all done", summary: DaySummary{TotalTasks: 2, CompletedTasks: 2}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.CompletionRate(); got != tt.want {
				t.Errorf("DaySummary.CompletionRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if p, err := ParsePriority(" HIGH "); err != nil || p != PriorityHigh {
		t.Errorf("ParsePriority() = %q, %v, want high", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
	if s, err := ParseSource("Workout"); err != nil || s != SourceWorkout {
		t.Errorf("ParseSource() = %q, %v, want workout", s, err)
	}
	if _, err := ParseSource("calendar"); err == nil {
		t.Error("expected error for unknown source")
	}
	if h, err := ParseHabitType("REMOVE"); err != nil || h != HabitRemove {
		t.Errorf("ParseHabitType() = %q, %v, want remove", h, err)
	}
	if m, err := ParseCardioMachine("bike"); err != nil || m != MachineBike {
		t.Errorf("ParseCardioMachine() = %q, %v, want bike", m, err)
	}
	if MachineStairmaster.Label() != "Stairmaster" {
		t.Errorf("Label() = %q, want Stairmaster", MachineStairmaster.Label())
	}
}

func TestHabit_IsGoalCompleted(t *testing.T) {
	h := Habit{WeeklyTarget: 3, WeeklyCompleted: 2}
	if h.IsGoalCompleted() {
		t.Error("expected goal to be incomplete below target")
	}
	h.WeeklyCompleted = 3
	if !h.IsGoalCompleted() {
		t.Error("expected goal to be complete at target")
	}
	if got := (Habit{ReminderHour: 8, ReminderMinute: 5}).ReminderTime(); got != "08:05" {
		t.Errorf("ReminderTime() = %q, want 08:05", got)
	}
}
