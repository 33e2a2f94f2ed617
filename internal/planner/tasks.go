package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/utils"
)

// NewTask is the input to AddTask. An empty Source means manual and an empty
// Priority means medium.
type NewTask struct {
	Title    string
	Category string
	Notes    string
	Start    time.Time
	End      time.Time
	Priority models.Priority
	Source   models.Source
}

// SelectedDay returns the day cursor.
func (s *Store) SelectedDay() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// TasksForDay returns day's tasks ordered by start time.
func (s *Store) TasksForDay(day time.Time) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedTasks(day)
}

// TasksForSelectedDay returns the selected day's tasks ordered by start time.
func (s *Store) TasksForSelectedDay() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedTasks(s.selected)
}

// CurrentTask returns the earliest incomplete task on asOf's day whose interval contains asOf.
func (s *Store) CurrentTask(asOf time.Time) (models.Task, bool) {
	s.mu.RLock()
	tasks := s.sortedTasks(asOf)
	s.mu.RUnlock()
	return currentTask(tasks, asOf)
}

// NextTask returns the earliest incomplete task on asOf's day starting after asOf.
func (s *Store) NextTask(asOf time.Time) (models.Task, bool) {
	s.mu.RLock()
	tasks := s.sortedTasks(asOf)
	s.mu.RUnlock()
	return nextTask(tasks, asOf)
}

// HasOpenTasks reports whether asOf's day still has incomplete tasks.
func (s *Store) HasOpenTasks(asOf time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasOpenTasks(s.sortedTasks(asOf))
}

func currentTask(sorted []models.Task, asOf time.Time) (models.Task, bool) {
	for _, t := range sorted {
		if !t.IsCompleted() && t.Contains(asOf) {
			return t, true
		}
	}
	return models.Task{}, false
}

func nextTask(sorted []models.Task, asOf time.Time) (models.Task, bool) {
	for _, t := range sorted {
		if !t.IsCompleted() && t.Start.After(asOf) {
			return t, true
		}
	}
	return models.Task{}, false
}

func hasOpenTasks(tasks []models.Task) bool {
	for _, t := range tasks {
		if !t.IsCompleted() {
			return true
		}
	}
	return false
}

// History summarises every day bucket, most recent day first.
func (s *Store) History() []models.DaySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.DaySummary, 0, len(s.days))
	for _, b := range s.days {
		summary := models.DaySummary{Date: b.day, TotalTasks: len(b.tasks)}
		for _, t := range b.tasks {
			if t.IsCompleted() {
				summary.CompletedTasks++
			}
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.After(summaries[j].Date)
	})
	return summaries
}

// HasOverlap reports whether another task in task's day bucket overlaps it.
func (s *Store) HasOverlap(task models.Task) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.days[s.keyString(task.Start)]
	if !ok {
		return false
	}
	for _, other := range b.tasks {
		if task.Overlaps(other) {
			return true
		}
	}
	return false
}

// Conflicts returns every overlapping pair in day's bucket, in start order.
func (s *Store) Conflicts(day time.Time) [][2]models.Task {
	tasks := s.TasksForDay(day)

	var pairs [][2]models.Task
	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			if tasks[i].Overlaps(tasks[j]) {
				pairs = append(pairs, [2]models.Task{tasks[i], tasks[j]})
			}
		}
	}
	return pairs
}

// Task finds a task by id on any day.
func (s *Store) Task(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.days {
		for _, t := range b.tasks {
			if t.ID == id {
				return t, nil
			}
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// AddTask appends a task to the bucket of its start day.
func (s *Store) AddTask(in NewTask) (models.Task, error) {
	if s.strictRanges && in.End.Before(in.Start) {
		return models.Task{}, fmt.Errorf("add task %q: %w", in.Title, ErrInvalidRange)
	}

	task := models.Task{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Category: in.Category,
		Notes:    in.Notes,
		Start:    in.Start,
		End:      in.End,
		Priority: in.Priority,
		Source:   in.Source,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Source == "" {
		task.Source = models.SourceManual
	}

	s.mu.Lock()
	b := s.bucket(task.Start)
	b.tasks = append(b.tasks, task)
	day := b.day
	s.mu.Unlock()

	s.dispatch(effects{
		events:    []Event{{Type: EventTaskAdded, Day: day, TaskID: task.ID}},
		scheduled: []models.Task{task},
		syncLive:  true,
	})
	return task, nil
}

// ToggleComplete flips a task's completion. Completing stamps the current time
// and cancels its reminder; reopening clears the stamp and reschedules it.
func (s *Store) ToggleComplete(id string) (models.Task, error) {
	now := s.now()

	s.mu.Lock()
	var found *models.Task
	var day time.Time
	if s.toggleScope == ToggleSelectedDay {
		if b, ok := s.days[s.keyString(s.selected)]; ok {
			found, day = findTask(b, id)
		}
	} else {
		for _, b := range s.days {
			if found, day = findTask(b, id); found != nil {
				break
			}
		}
	}
	if found == nil {
		scope := s.toggleScope
		s.mu.Unlock()
		return models.Task{}, fmt.Errorf("toggle task %s (%s): %w", id, scope, ErrNotFound)
	}

	if found.CompletedAt == nil {
		stamp := now
		found.CompletedAt = &stamp
	} else {
		found.CompletedAt = nil
	}
	task := *found
	s.mu.Unlock()

	fx := effects{
		events:   []Event{{Type: EventTaskToggled, Day: day, TaskID: task.ID}},
		syncLive: true,
	}
	if task.IsCompleted() {
		fx.cancelled = []string{task.ID}
	} else {
		fx.scheduled = []models.Task{task}
	}
	s.dispatch(fx)
	return task, nil
}

func findTask(b *dayBucket, id string) (*models.Task, time.Time) {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return &b.tasks[i], b.day
		}
	}
	return nil, time.Time{}
}

// UpdateSelectedDay moves the day cursor to date's day and returns it.
func (s *Store) UpdateSelectedDay(date time.Time) time.Time {
	s.mu.Lock()
	s.selected = s.dayKey(date)
	day := s.selected
	s.mu.Unlock()

	s.dispatch(effects{events: []Event{{Type: EventSelectedDayChanged, Day: day}}})
	return day
}

// SuggestHabitTasks proposes one 20 minute block per habit at its reminder time on day.
// It does not change the store.
func (s *Store) SuggestHabitTasks(day time.Time) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suggestHabitTasks(day)
}

func (s *Store) suggestHabitTasks(day time.Time) []models.Task {
	suggestions := make([]models.Task, 0, len(s.habits))
	for _, h := range s.habits {
		start := s.atTime(day, h.ReminderHour, h.ReminderMinute)
		suggestions = append(suggestions, models.Task{
			ID:       uuid.NewString(),
			Title:    h.Name,
			Category: constants.HabitCategory,
			Notes:    constants.HabitSuggestionNotes,
			Start:    start,
			End:      start.Add(constants.HabitSuggestionMinutes * time.Minute),
			Priority: models.PriorityMedium,
			Source:   models.SourceHabit,
		})
	}
	return suggestions
}

// AcceptHabitSuggestions adds every suggestion whose title is not already on
// day as a Habit task. It returns the tasks it added.
func (s *Store) AcceptHabitSuggestions(day time.Time) []models.Task {
	s.mu.Lock()
	b := s.bucket(day)
	added := []models.Task{}
	for _, suggestion := range s.suggestHabitTasks(day) {
		if containsTask(b.tasks, func(t models.Task) bool {
			return t.Title == suggestion.Title && t.Category == constants.HabitCategory
		}) {
			continue
		}
		b.tasks = append(b.tasks, suggestion)
		added = append(added, suggestion)
	}
	key := b.day
	s.mu.Unlock()

	fx := effects{scheduled: added, syncLive: true}
	for _, t := range added {
		fx.events = append(fx.events, Event{Type: EventTaskAdded, Day: key, TaskID: t.ID})
	}
	s.dispatch(fx)
	return added
}

func containsTask(tasks []models.Task, match func(models.Task) bool) bool {
	for _, t := range tasks {
		if match(t) {
			return true
		}
	}
	return false
}

// atTime places hour:minute on day. An out-of-range time falls back to
// midnight so the result never leaves day's bucket.
func (s *Store) atTime(day time.Time, hour, minute int) time.Time {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return s.dayKey(day)
	}
	return utils.AtTime(day, hour, minute, s.loc)
}
