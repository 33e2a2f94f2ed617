package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lockd/internal/models"
)

// DayTemplates returns every day template in creation order.
func (s *Store) DayTemplates() []models.DayTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DayTemplate, len(s.dayTemplates))
	for i, tmpl := range s.dayTemplates {
		out[i] = copyTemplate(tmpl)
	}
	return out
}

// DayTemplate looks up a day template by id.
func (s *Store) DayTemplate(id string) (models.DayTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tmpl := range s.dayTemplates {
		if tmpl.ID == id {
			return copyTemplate(tmpl), nil
		}
	}
	return models.DayTemplate{}, fmt.Errorf("day template %s: %w", id, ErrNotFound)
}

func copyTemplate(tmpl models.DayTemplate) models.DayTemplate {
	tmpl.Tasks = append([]models.TemplateTask(nil), tmpl.Tasks...)
	return tmpl
}

// ApplyTemplate materialises tmpl's blocks on day, skipping any block whose
// title already appears on that day at the same start hour. Blocks with an
// invalid time start at midnight. It returns the
// tasks it added; applying the same template twice adds nothing the second time.
func (s *Store) ApplyTemplate(tmpl models.DayTemplate, day time.Time) []models.Task {
	s.mu.Lock()
	b := s.bucket(day)
	added := []models.Task{}
	for _, block := range tmpl.Tasks {
		// Compare against the materialised start so blocks shifted by a
		// DST gap still match on the next apply.
		start := s.atTime(day, block.StartHour, block.StartMinute)
		hour := start.In(s.loc).Hour()
		if containsTask(b.tasks, func(t models.Task) bool {
			return t.Title == block.Title && t.Start.In(s.loc).Hour() == hour
		}) {
			continue
		}

		task := models.Task{
			ID:       uuid.NewString(),
			Title:    block.Title,
			Category: block.Category,
			Start:    start,
			End:      start.Add(time.Duration(block.DurationMinutes) * time.Minute),
			Priority: block.Priority,
			Source:   block.Source,
		}
		b.tasks = append(b.tasks, task)
		added = append(added, task)
	}
	key := b.day
	s.mu.Unlock()

	fx := effects{
		events:    []Event{{Type: EventTemplateApplied, Day: key, TemplateID: tmpl.ID}},
		scheduled: added,
		syncLive:  true,
	}
	for _, t := range added {
		fx.events = append(fx.events, Event{Type: EventTaskAdded, Day: key, TaskID: t.ID})
	}
	s.dispatch(fx)
	return added
}

// ApplyTemplateByID applies a stored template to day.
func (s *Store) ApplyTemplateByID(id string, day time.Time) ([]models.Task, error) {
	tmpl, err := s.DayTemplate(id)
	if err != nil {
		return nil, fmt.Errorf("apply template: %w", err)
	}
	return s.ApplyTemplate(tmpl, day), nil
}

// CreateTemplate captures fromDay's tasks as a new day template.
func (s *Store) CreateTemplate(name string, fromDay time.Time) (models.DayTemplate, error) {
	s.mu.Lock()
	tasks := s.sortedTasks(fromDay)
	if len(tasks) == 0 {
		s.mu.Unlock()
		return models.DayTemplate{}, fmt.Errorf("create template %q from %s: %w",
			name, s.keyString(fromDay), ErrEmptyDay)
	}

	tmpl := models.DayTemplate{
		ID:    uuid.NewString(),
		Name:  name,
		Tasks: make([]models.TemplateTask, 0, len(tasks)),
	}
	for _, t := range tasks {
		start := t.Start.In(s.loc)
		tmpl.Tasks = append(tmpl.Tasks, models.TemplateTask{
			ID:              uuid.NewString(),
			Title:           t.Title,
			Category:        t.Category,
			StartHour:       start.Hour(),
			StartMinute:     start.Minute(),
			DurationMinutes: int(t.End.Sub(t.Start) / time.Minute),
			Priority:        t.Priority,
			Source:          t.Source,
		})
	}
	s.dayTemplates = append(s.dayTemplates, tmpl)
	s.mu.Unlock()

	s.dispatch(effects{events: []Event{{Type: EventTemplateCreated, Day: s.dayKey(fromDay), TemplateID: tmpl.ID}}})
	return copyTemplate(tmpl), nil
}
