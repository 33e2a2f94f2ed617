package models

import (
	"fmt"
	"strings"
	"time"
)

type HabitType string

const (
	HabitBuild  HabitType = "build"
	HabitRemove HabitType = "remove"
)

func (t HabitType) Valid() bool {
	return t == HabitBuild || t == HabitRemove
}

// Label is the upper-case badge shown next to a habit.
func (t HabitType) Label() string {
	return strings.ToUpper(string(t))
}

// ParseHabitType parses a habit type name, case-insensitively.
func ParseHabitType(s string) (HabitType, error) {
	t := HabitType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid habit type %q (expected build|remove)", s)
	}
	return t, nil
}

// Habit represents a recurring practice to track.
// WeeklyCompleted and the streak counters are cumulative for the process lifetime.
type Habit struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Type            HabitType `json:"type" yaml:"type"`
	WeeklyTarget    int       `json:"weekly_target" yaml:"weekly_target"`
	WeeklyCompleted int       `json:"weekly_completed" yaml:"weekly_completed"`
	CurrentStreak   int       `json:"current_streak" yaml:"current_streak"`
	BestStreak      int       `json:"best_streak" yaml:"best_streak"`
	ReminderHour    int       `json:"reminder_hour" yaml:"reminder_hour"`
	ReminderMinute  int       `json:"reminder_minute" yaml:"reminder_minute"`
}

func (h Habit) IsGoalCompleted() bool {
	return h.WeeklyCompleted >= h.WeeklyTarget
}

// ReminderTime returns the reminder as HH:MM.
func (h Habit) ReminderTime() string {
	return fmt.Sprintf("%02d:%02d", h.ReminderHour, h.ReminderMinute)
}

// Achievement records a habit reaching its weekly goal.
type Achievement struct {
	ID      string    `json:"id" yaml:"id"`
	HabitID string    `json:"habit_id" yaml:"habit_id"`
	Title   string    `json:"title" yaml:"title"`
	Detail  string    `json:"detail" yaml:"detail"`
	Date    time.Time `json:"date" yaml:"date"`
}
