package planner

import (
	"time"

	"github.com/julianstephens/lockd/internal/models"
)

// LiveStatus presents the current and next task outside the app.
type LiveStatus interface {
	// Announce publishes the current and next task. Either may be nil.
	Announce(current, next *models.Task)
	// Clear ends the presentation when hasOpenTasksToday is false.
	Clear(hasOpenTasksToday bool)
}

// Reminders schedules timed local reminders for tasks.
type Reminders interface {
	Schedule(taskID string, fireAt time.Time, title string) error
	Cancel(taskID string) error
}

type noopLiveStatus struct{}

func (noopLiveStatus) Announce(current, next *models.Task) {}
func (noopLiveStatus) Clear(hasOpenTasksToday bool)        {}

type noopReminders struct{}

func (noopReminders) Schedule(taskID string, fireAt time.Time, title string) error { return nil }
func (noopReminders) Cancel(taskID string) error                                  { return nil }
