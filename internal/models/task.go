package models

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (expected low|medium|high)", s)
	}
	return p, nil
}

type Source string

const (
	SourceManual  Source = "manual"
	SourceHabit   Source = "habit"
	SourceWorkout Source = "workout"
)

func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceHabit, SourceWorkout:
		return true
	}
	return false
}

// ParseSource parses a task source name, case-insensitively.
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToLower(strings.TrimSpace(s)))
	if !src.Valid() {
		return "", fmt.Errorf("invalid source %q (expected manual|habit|workout)", s)
	}
	return src, nil
}

// Task is a time block owned by the day bucket of its Start.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Category    string     `json:"category" yaml:"category"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Start       time.Time  `json:"start" yaml:"start"`
	End         time.Time  `json:"end" yaml:"end"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Source      Source     `json:"source" yaml:"source"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

func (t Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Contains reports whether at falls inside [Start, End).
func (t Task) Contains(at time.Time) bool {
	return !t.Start.After(at) && at.Before(t.End)
}

// Overlaps reports whether two tasks share any instant. A task never overlaps itself.
func (t Task) Overlaps(other Task) bool {
	if t.ID == other.ID {
		return false
	}
	start := t.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := t.End
	if other.End.Before(end) {
		end = other.End
	}
	return start.Before(end)
}

// DaySummary is the completion record for one day bucket.
type DaySummary struct {
	Date           time.Time `json:"date" yaml:"date"`
	TotalTasks     int       `json:"total_tasks" yaml:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks" yaml:"completed_tasks"`
}

// CompletionRate returns completed/total, or 0 for an empty day.
func (s DaySummary) CompletionRate() float64 {
	if s.TotalTasks <= 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks)
}
