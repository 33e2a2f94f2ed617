// Package planner holds the in-memory planner store: the day-keyed task
// ledger, day templates, habits, workout templates, exercise trends, cardio
// logs and achievements.
//
// All mutation goes through a single write lock. Collaborators and event
// subscribers are notified after the lock is released.
package planner

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/utils"
)

// AchievementPolicy decides when LogHabit records an achievement.
type AchievementPolicy int

const (
	// AchievementOnGoalReached records one achievement when a habit crosses its weekly target.
	AchievementOnGoalReached AchievementPolicy = iota
	// AchievementEveryLog records an achievement on every log while the target is met.
	AchievementEveryLog
)

func (p AchievementPolicy) String() string {
	if p == AchievementEveryLog {
		return "every_log"
	}
	return "goal_reached"
}

// ParseAchievementPolicy parses "goal_reached" or "every_log".
func ParseAchievementPolicy(s string) (AchievementPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "goal_reached":
		return AchievementOnGoalReached, nil
	case "every_log":
		return AchievementEveryLog, nil
	}
	return 0, fmt.Errorf("invalid achievement policy %q (expected goal_reached|every_log)", s)
}

// ToggleScope decides which tasks ToggleComplete can reach.
type ToggleScope int

const (
	// ToggleAnyDay looks the task up across every day bucket.
	ToggleAnyDay ToggleScope = iota
	// ToggleSelectedDay only looks in the selected day's bucket.
	ToggleSelectedDay
)

func (s ToggleScope) String() string {
	if s == ToggleSelectedDay {
		return "selected_day"
	}
	return "any_day"
}

// ParseToggleScope parses "any_day" or "selected_day".
func ParseToggleScope(s string) (ToggleScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any_day":
		return ToggleAnyDay, nil
	case "selected_day":
		return ToggleSelectedDay, nil
	}
	return 0, fmt.Errorf("invalid toggle scope %q (expected any_day|selected_day)", s)
}

// State is the initial content of a store.
type State struct {
	Tasks            []models.Task
	DayTemplates     []models.DayTemplate
	Habits           []models.Habit
	WorkoutTemplates []models.WorkoutTemplate
	Trends           map[string][]models.TrendPoint
	CardioLogs       []models.CardioLog // newest first
	Achievements     []models.Achievement
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the current-time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the calendar used to derive day keys.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithLiveStatus(ls LiveStatus) Option {
	return func(s *Store) {
		if ls != nil {
			s.live = ls
		}
	}
}

func WithReminders(r Reminders) Option {
	return func(s *Store) {
		if r != nil {
			s.reminders = r
		}
	}
}

func WithAchievementPolicy(p AchievementPolicy) Option {
	return func(s *Store) { s.achievementPolicy = p }
}

func WithToggleScope(scope ToggleScope) Option {
	return func(s *Store) { s.toggleScope = scope }
}

// WithStrictRanges makes AddTask reject tasks that end before they start.
func WithStrictRanges(strict bool) Option {
	return func(s *Store) { s.strictRanges = strict }
}

// WithSelectedDay sets the initial day cursor. It defaults to today.
func WithSelectedDay(day time.Time) Option {
	return func(s *Store) { s.initialDay = &day }
}

// WithState loads initial collections into the store.
func WithState(state State) Option {
	return func(s *Store) { s.initial = &state }
}

type dayBucket struct {
	day   time.Time
	tasks []models.Task
}

// Store is the planner's single source of truth.
type Store struct {
	mu sync.RWMutex

	now               func() time.Time
	loc               *time.Location
	live              LiveStatus
	reminders         Reminders
	achievementPolicy AchievementPolicy
	toggleScope       ToggleScope
	strictRanges      bool

	initial    *State
	initialDay *time.Time

	days             map[string]*dayBucket
	selected         time.Time
	dayTemplates     []models.DayTemplate
	habits           []models.Habit
	workoutTemplates []models.WorkoutTemplate
	trends           map[string][]models.TrendPoint
	cardioLogs       []models.CardioLog
	achievements     []models.Achievement

	events eventHub
}

// New creates a store. Without WithState it starts empty.
func New(opts ...Option) *Store {
	s := &Store{
		now:       time.Now,
		loc:       time.Local,
		live:      noopLiveStatus{},
		reminders: noopReminders{},
		days:      make(map[string]*dayBucket),
		trends:    make(map[string][]models.TrendPoint),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.initialDay != nil {
		s.selected = s.dayKey(*s.initialDay)
	} else {
		s.selected = s.dayKey(s.now())
	}

	if st := s.initial; st != nil {
		for _, t := range st.Tasks {
			b := s.bucket(t.Start)
			b.tasks = append(b.tasks, t)
		}
		s.dayTemplates = append(s.dayTemplates, st.DayTemplates...)
		s.habits = append(s.habits, st.Habits...)
		s.workoutTemplates = append(s.workoutTemplates, st.WorkoutTemplates...)
		for name, series := range st.Trends {
			s.trends[name] = append([]models.TrendPoint(nil), series...)
		}
		s.cardioLogs = append(s.cardioLogs, st.CardioLogs...)
		s.achievements = append(s.achievements, st.Achievements...)
		s.initial = nil
	}

	logger.Debug("planner store ready",
		"location", s.loc.String(),
		"selected", s.selected.Format(constants.DateFormat),
		"days", len(s.days),
		"habits", len(s.habits))
	return s
}

// Location returns the calendar used for day keys.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// DayKey returns midnight of t's calendar day in the store location.
func (s *Store) DayKey(t time.Time) time.Time {
	return s.dayKey(t)
}

func (s *Store) dayKey(t time.Time) time.Time {
	return utils.StartOfDay(t, s.loc)
}

func (s *Store) keyString(t time.Time) string {
	return utils.DayString(t, s.loc)
}

// bucket returns the bucket for t's day, creating it. Callers hold the write lock.
func (s *Store) bucket(t time.Time) *dayBucket {
	key := s.keyString(t)
	b, ok := s.days[key]
	if !ok {
		b = &dayBucket{day: s.dayKey(t)}
		s.days[key] = b
	}
	return b
}

// sortedTasks returns a sorted copy of the bucket for t's day. Callers hold a lock.
func (s *Store) sortedTasks(t time.Time) []models.Task {
	b, ok := s.days[s.keyString(t)]
	if !ok {
		return []models.Task{}
	}
	tasks := append([]models.Task(nil), b.tasks...)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})
	return tasks
}

// effects collects what a command must announce once the lock is released.
type effects struct {
	events    []Event
	scheduled []models.Task
	cancelled []string
	syncLive  bool
}

func (s *Store) dispatch(fx effects) {
	now := s.now()
	for _, t := range fx.scheduled {
		if !t.Start.After(now) {
			continue
		}
		if err := s.reminders.Schedule(t.ID, t.Start, t.Title); err != nil {
			logger.Warn("failed to schedule reminder", "task", t.ID, "error", err)
		}
	}
	for _, id := range fx.cancelled {
		if err := s.reminders.Cancel(id); err != nil {
			logger.Warn("failed to cancel reminder", "task", id, "error", err)
		}
	}
	if fx.syncLive {
		s.SyncLiveStatus()
	}
	s.events.publish(fx.events...)
}

// SyncLiveStatus pushes the current and next task to the live status collaborator
// and clears it when nothing is left open today.
func (s *Store) SyncLiveStatus() {
	now := s.now()

	s.mu.RLock()
	tasks := s.sortedTasks(now)
	s.mu.RUnlock()

	var current, next *models.Task
	if t, ok := currentTask(tasks, now); ok {
		current = &t
	}
	if t, ok := nextTask(tasks, now); ok {
		next = &t
	}
	s.live.Announce(current, next)
	s.live.Clear(hasOpenTasks(tasks))
}
