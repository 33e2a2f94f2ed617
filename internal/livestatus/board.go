// Package livestatus keeps the "now / next" card shown outside the planner view.
package livestatus

import (
	"sync"
	"time"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/models"
)

// Activity is the card content. Active is false once the day has nothing left open.
type Activity struct {
	DayLabel     string
	CurrentTitle string
	NextTitle    string
	CurrentRange string
	UpdatedAt    time.Time
	StaleAt      time.Time
	Active       bool
}

// Stale reports whether the card has not been refreshed since StaleAt.
func (a Activity) Stale(now time.Time) bool {
	return a.Active && !now.Before(a.StaleAt)
}

// Board implements the planner's live status collaborator.
type Board struct {
	mu       sync.Mutex
	now      func() time.Time
	activity Activity

	// OnChange, when set, receives every new snapshot.
	OnChange func(Activity)
}

func NewBoard(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{now: now}
}

func (b *Board) Announce(current, next *models.Task) {
	now := b.now()
	a := Activity{
		DayLabel:     now.Format("Mon Jan 2"),
		CurrentTitle: constants.NoActiveTaskTitle,
		NextTitle:    constants.NoNextTaskTitle,
		UpdatedAt:    now,
		StaleAt:      now.Add(constants.LiveStatusStale),
		Active:       true,
	}
	if current != nil {
		a.CurrentTitle = current.Title
		a.CurrentRange = current.Start.Format(constants.TimeFormat) + "-" + current.End.Format(constants.TimeFormat)
	}
	if next != nil {
		a.NextTitle = next.Title
	}
	b.set(a)
}

// Clear ends the activity when no tasks remain open today.
func (b *Board) Clear(hasOpenTasksToday bool) {
	if hasOpenTasksToday {
		return
	}
	b.mu.Lock()
	if !b.activity.Active {
		b.mu.Unlock()
		return
	}
	a := b.activity
	b.mu.Unlock()

	a.Active = false
	a.UpdatedAt = b.now()
	b.set(a)
}

func (b *Board) Snapshot() Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activity
}

func (b *Board) set(a Activity) {
	b.mu.Lock()
	b.activity = a
	cb := b.OnChange
	b.mu.Unlock()

	if cb != nil {
		cb(a)
	}
}
