package planner

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/models"
)

// EventType names a domain event.
type EventType string

const (
	EventTaskAdded            EventType = "task_added"
	EventTaskToggled          EventType = "task_toggled"
	EventTemplateApplied      EventType = "template_applied"
	EventTemplateCreated      EventType = "template_created"
	EventHabitAdded           EventType = "habit_added"
	EventHabitLogged          EventType = "habit_logged"
	EventHabitGoalCompleted   EventType = "habit_goal_completed"
	EventWorkoutTemplateAdded EventType = "workout_template_added"
	EventTrendPointRecorded   EventType = "trend_point_recorded"
	EventCardioLogged         EventType = "cardio_logged"
	EventSelectedDayChanged   EventType = "selected_day_changed"
)

// Event describes a change to store state. Only the fields relevant to Type are set.
type Event struct {
	Type        EventType
	Day         time.Time
	TaskID      string
	TemplateID  string
	HabitID     string
	Exercise    string
	Achievement *models.Achievement
	Point       *models.TrendPoint
}

type eventHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// Watch subscribes to domain events. The channel is closed when ctx is done.
// Delivery never blocks the store: a subscriber whose buffer is full misses the event.
func (s *Store) Watch(ctx context.Context) <-chan Event {
	return s.events.subscribe(ctx)
}

func (h *eventHub) subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, constants.EventBufferSize)

	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[int]chan Event)
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, id)
		close(ch)
		h.mu.Unlock()
	}()

	return ch
}

func (h *eventHub) publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ev := range events {
		for id, ch := range h.subs {
			select {
			case ch <- ev:
			default:
				logger.Warn("dropping planner event for slow subscriber", "subscriber", id, "type", string(ev.Type))
			}
		}
	}
}
