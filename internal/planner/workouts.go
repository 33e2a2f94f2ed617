package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
)

// WorkoutTemplates returns every workout template in creation order.
func (s *Store) WorkoutTemplates() []models.WorkoutTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WorkoutTemplate, len(s.workoutTemplates))
	for i, w := range s.workoutTemplates {
		w.Exercises = append([]models.Exercise(nil), w.Exercises...)
		out[i] = w
	}
	return out
}

// WorkoutTemplate looks up a workout template by id.
func (s *Store) WorkoutTemplate(id string) (models.WorkoutTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.workoutTemplates {
		if w.ID == id {
			w.Exercises = append([]models.Exercise(nil), w.Exercises...)
			return w, nil
		}
	}
	return models.WorkoutTemplate{}, fmt.Errorf("workout template %s: %w", id, ErrNotFound)
}

// AddWorkoutTemplate stores a workout template. Exercises without an id get one.
func (s *Store) AddWorkoutTemplate(name string, exercises []models.Exercise) models.WorkoutTemplate {
	w := models.WorkoutTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: make([]models.Exercise, len(exercises)),
	}
	for i, ex := range exercises {
		if ex.ID == "" {
			ex.ID = uuid.NewString()
		}
		w.Exercises[i] = ex
	}

	s.mu.Lock()
	s.workoutTemplates = append(s.workoutTemplates, w)
	s.mu.Unlock()

	s.dispatch(effects{events: []Event{{Type: EventWorkoutTemplateAdded, TemplateID: w.ID}}})
	w.Exercises = append([]models.Exercise(nil), w.Exercises...)
	return w
}

// ScheduleWorkout books a workout template as an 18:00 task on day.
func (s *Store) ScheduleWorkout(templateID string, day time.Time) (models.Task, error) {
	w, err := s.WorkoutTemplate(templateID)
	if err != nil {
		return models.Task{}, fmt.Errorf("schedule workout: %w", err)
	}

	start := s.atTime(day, constants.WorkoutStartHour, constants.WorkoutStartMinute)
	return s.AddTask(NewTask{
		Title:    w.Name,
		Category: constants.WorkoutCategory,
		Notes:    constants.WorkoutNotes,
		Start:    start,
		End:      start.Add(constants.WorkoutDurationMin * time.Minute),
		Priority: models.PriorityHigh,
		Source:   models.SourceWorkout,
	})
}

// ExerciseNames returns every exercise with a trend series, sorted by name.
func (s *Store) ExerciseNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.trends))
	for name := range s.trends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Trend returns the series for an exercise, oldest first.
func (s *Store) Trend(exercise string) []models.TrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TrendPoint{}, s.trends[exercise]...)
}

// PersonalRecord returns the heaviest top set logged for an exercise.
func (s *Store) PersonalRecord(exercise string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := s.trends[exercise]
	if len(series) == 0 {
		return 0, false
	}
	return maxTopSet(series), true
}

// maxTopSet is 0 for an empty series.
func maxTopSet(series []models.TrendPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	best := series[0].TopSetWeight
	for _, p := range series[1:] {
		if p.TopSetWeight > best {
			best = p.TopSetWeight
		}
	}
	return best
}

// LogSet appends a session to an exercise's trend. The point is a personal
// record when weight ties or beats every earlier top set.
func (s *Store) LogSet(exercise string, weight float64, reps, sets int) models.TrendPoint {
	now := s.now()

	s.mu.Lock()
	series := s.trends[exercise]
	point := models.TrendPoint{
		Exercise:         exercise,
		Day:              now,
		TopSetWeight:     weight,
		TotalVolume:      weight * float64(reps*sets),
		IsPersonalRecord: weight >= maxTopSet(series),
	}
	s.trends[exercise] = append(series, point)
	s.mu.Unlock()

	p := point
	s.dispatch(effects{events: []Event{{
		Type:     EventTrendPointRecorded,
		Day:      s.dayKey(now),
		Exercise: exercise,
		Point:    &p,
	}}})
	return point
}

// CardioLogs returns cardio sessions, newest first.
func (s *Store) CardioLogs() []models.CardioLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CardioLog{}, s.cardioLogs...)
}

// AddCardioLog records a cardio session at the front of the log. A missing id
// or date is filled in.
func (s *Store) AddCardioLog(log models.CardioLog) models.CardioLog {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Date.IsZero() {
		log.Date = s.now()
	}
	if log.Machine == "" {
		log.Machine = models.MachineOther
	}

	s.mu.Lock()
	s.cardioLogs = append([]models.CardioLog{log}, s.cardioLogs...)
	s.mu.Unlock()

	s.dispatch(effects{events: []Event{{Type: EventCardioLogged, Day: s.dayKey(log.Date)}}})
	return log
}
