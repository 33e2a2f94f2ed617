package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
)

// HabitLog is the outcome of LogHabit. Achievement is set when the log earned one.
type HabitLog struct {
	Habit       models.Habit
	Achievement *models.Achievement
}

// Habits returns every habit in creation order.
func (s *Store) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Habit{}, s.habits...)
}

// Habit looks up a habit by id.
func (s *Store) Habit(id string) (models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
}

// Achievements returns earned achievements, newest first.
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Achievement{}, s.achievements...)
}

// AddHabit creates a habit with zeroed counters and the default 08:00 reminder.
func (s *Store) AddHabit(name string, habitType models.HabitType, weeklyTarget int) models.Habit {
	h := models.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           habitType,
		WeeklyTarget:   weeklyTarget,
		ReminderHour:   constants.DefaultReminderHour,
		ReminderMinute: constants.DefaultReminderMinute,
	}

	s.mu.Lock()
	s.habits = append(s.habits, h)
	s.mu.Unlock()

	s.dispatch(effects{events: []Event{{Type: EventHabitAdded, HabitID: h.ID}}})
	return h
}

// LogHabit records a completed or missed day for a habit. A completed log
// advances the weekly count and streak; a missed log resets the streak only.
func (s *Store) LogHabit(id string, completed bool) (HabitLog, error) {
	now := s.now()

	s.mu.Lock()
	idx := -1
	for i := range s.habits {
		if s.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return HabitLog{}, fmt.Errorf("log habit %s: %w", id, ErrNotFound)
	}

	h := &s.habits[idx]
	wasComplete := h.IsGoalCompleted()
	if completed {
		h.WeeklyCompleted++
		h.CurrentStreak++
		if h.CurrentStreak > h.BestStreak {
			h.BestStreak = h.CurrentStreak
		}
	} else {
		h.CurrentStreak = 0
	}

	var earned *models.Achievement
	if h.IsGoalCompleted() && (s.achievementPolicy == AchievementEveryLog || !wasComplete) {
		a := models.Achievement{
			ID:      uuid.NewString(),
			HabitID: h.ID,
			Title:   constants.AchievementTitle,
			Detail:  fmt.Sprintf(constants.AchievementDetailPattern, h.Name),
			Date:    now,
		}
		s.achievements = append([]models.Achievement{a}, s.achievements...)
		earned = &a
	}
	result := HabitLog{Habit: *h, Achievement: earned}
	s.mu.Unlock()

	events := []Event{{Type: EventHabitLogged, Day: s.dayKey(now), HabitID: id}}
	if earned != nil {
		a := *earned
		events = append(events, Event{Type: EventHabitGoalCompleted, Day: s.dayKey(now), HabitID: id, Achievement: &a})
	}
	s.dispatch(effects{events: events})
	return result, nil
}
