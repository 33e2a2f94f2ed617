package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingTasks ConflictType = "overlapping_tasks"
	ConflictInvalidTimeRange ConflictType = "invalid_time_range"
	ConflictDuplicateBlock   ConflictType = "duplicate_block"
)

var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrInvalidRange = errors.New("end time must be after start time")
)

// Conflict represents a problem detected in one day's tasks
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD
	Items       []string // task titles involved
	TimeRange   string   // e.g. "07:15-07:40"
	TaskIDs     []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// ByType returns the conflicts of type t.
func (vr *ValidationResult) ByType(t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range vr.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// ValidateTaskInput applies the checks the add-task form runs before calling the store.
func ValidateTaskInput(title string, start, end time.Time) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if !end.After(start) {
		return fmt.Errorf("%w (%s-%s)", ErrInvalidRange,
			start.Format(constants.TimeFormat), end.Format(constants.TimeFormat))
	}
	return nil
}

// ValidateDay checks one day's tasks for invalid ranges, overlaps and blocks
// a template would treat as duplicates.
func ValidateDay(day time.Time, tasks []models.Task) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	date := day.Format(constants.DateFormat)

	sorted := append([]models.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for _, task := range sorted {
		if task.End.Before(task.Start) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTimeRange,
				Description: fmt.Sprintf("Task %q ends (%s) before it starts (%s)", task.Title, clock(task.End), clock(task.Start)),
				Date:        date,
				Items:       []string{task.Title},
				TimeRange:   clock(task.Start) + "-" + clock(task.End),
				TaskIDs:     []string{task.ID},
			})
		}
	}

	// O(n²), days hold a handful of tasks.
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			t1, t2 := sorted[i], sorted[j]
			if !t1.Overlaps(t2) {
				continue
			}
			overlapStart, overlapEnd := t2.Start, t1.End
			if t2.End.Before(overlapEnd) {
				overlapEnd = t2.End
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingTasks,
				Description: fmt.Sprintf("Tasks %q (%s-%s) and %q (%s-%s) overlap",
					t1.Title, clock(t1.Start), clock(t1.End), t2.Title, clock(t2.Start), clock(t2.End)),
				Date:      date,
				Items:     []string{t1.Title, t2.Title},
				TimeRange: clock(overlapStart) + "-" + clock(overlapEnd),
				TaskIDs:   []string{t1.ID, t2.ID},
			})
		}
	}

	type blockKey struct {
		title string
		hour  int
	}
	seen := make(map[blockKey][]models.Task)
	var order []blockKey
	for _, task := range sorted {
		k := blockKey{task.Title, task.Start.Hour()}
		if _, ok := seen[k]; !ok {
			order = append(order, k)
		}
		seen[k] = append(seen[k], task)
	}
	for _, k := range order {
		dupes := seen[k]
		if len(dupes) < 2 {
			continue
		}
		ids := make([]string, len(dupes))
		for i, t := range dupes {
			ids[i] = t.ID
		}
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateBlock,
			Description: fmt.Sprintf("Task %q appears %d times in the %02d:00 hour", k.title, len(dupes), k.hour),
			Date:        date,
			Items:       []string{k.title},
			TaskIDs:     ids,
		})
	}

	return result
}

func clock(t time.Time) string {
	return t.Format(constants.TimeFormat)
}
