// Package reminder fires one-shot task reminders through a Notifier.
package reminder

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/logger"
)

// Notifier delivers reminder text to the user.
type Notifier interface {
	Notify(text string) error
}

// ErrStopped is returned by Schedule after Stop.
var ErrStopped = errors.New("reminder scheduler stopped")

type timer interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) timer

func realAfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

// Pending is a scheduled reminder.
type Pending struct {
	TaskID string
	Title  string
	FireAt time.Time
}

type entry struct {
	Pending
	gen   uint64
	timer timer
}

// Scheduler keeps one timer per task id.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	now      func() time.Time
	after    afterFunc
	late     time.Duration
	gen      uint64
	entries  map[string]*entry
	stopped  bool
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLateThreshold drops reminders that fire more than d after their time,
// e.g. after the machine wakes from sleep. Zero disables the check.
func WithLateThreshold(d time.Duration) Option {
	return func(s *Scheduler) { s.late = d }
}

func New(n Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		notifier: n,
		now:      time.Now,
		after:    realAfterFunc,
		late:     5 * time.Minute,
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule arms a reminder for taskID, replacing any earlier one.
func (s *Scheduler) Schedule(taskID string, fireAt time.Time, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if old, ok := s.entries[taskID]; ok {
		old.timer.Stop()
	}

	s.gen++
	e := &entry{
		Pending: Pending{TaskID: taskID, Title: title, FireAt: fireAt},
		gen:     s.gen,
	}
	delay := fireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	gen := e.gen
	e.timer = s.after(delay, func() { s.fire(taskID, gen) })
	s.entries[taskID] = e

	logger.Debug("reminder scheduled", "task", taskID, "at", fireAt.Format(time.RFC3339))
	return nil
}

// Cancel disarms the reminder for taskID. Unknown ids are ignored.
func (s *Scheduler) Cancel(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[taskID]; ok {
		e.timer.Stop()
		delete(s.entries, taskID)
		logger.Debug("reminder cancelled", "task", taskID)
	}
	return nil
}

// Pending lists armed reminders, soonest first.
func (s *Scheduler) Pending() []Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Pending, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Pending)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FireAt.Equal(out[j].FireAt) {
			return out[i].TaskID < out[j].TaskID
		}
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out
}

// Stop disarms every reminder. Later Schedule calls fail with ErrStopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
	s.stopped = true
}

func (s *Scheduler) fire(taskID string, gen uint64) {
	s.mu.Lock()
	e, ok := s.entries[taskID]
	if !ok || e.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.entries, taskID)
	s.mu.Unlock()

	if delay := s.now().Sub(e.FireAt); s.late > 0 && delay > s.late {
		logger.Warn("skipping late reminder", "task", taskID, "delay", delay.String())
		return
	}

	text := fmt.Sprintf("%s: %s", constants.ReminderTitlePrefix, e.Title)
	if err := s.notifier.Notify(text); err != nil {
		logger.Warn("reminder delivery failed", "task", taskID, "error", err)
	}
}
