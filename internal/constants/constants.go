package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "lockd"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/lockd/config.yaml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Habit defaults
	DefaultReminderHour      = 8
	DefaultReminderMinute    = 0
	HabitSuggestionMinutes   = 20
	HabitCategory            = "Habit"
	HabitSuggestionNotes     = "Auto-suggested from Habit tab"
	AchievementTitle         = "Goal Locked"
	AchievementDetailPattern = "%s weekly target complete"

	// Workout defaults
	WorkoutCategory    = "Workout"
	WorkoutNotes       = "Template workout day"
	WorkoutStartHour   = 18
	WorkoutStartMinute = 0
	WorkoutDurationMin = 70

	// Live status constants
	NoActiveTaskTitle = "No active task"
	NoNextTaskTitle   = "No next task"
	LiveStatusStale   = 30 * time.Minute

	// Notify constants
	ReminderTitlePrefix    = "Task Reminder"
	NotifierLockfileName   = "lockd-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.lockd"
	TrayExecutablePrefix   = "lockd-tray"

	// Event delivery
	EventBufferSize = 64

	// TUI timing
	CelebrationDuration = 1200 * time.Millisecond
	MilestoneDuration   = 4 * time.Second
	HistoryDays         = 7
)

// Session States
const (
	StatePlanner SessionState = iota
	StateHabits
	StateGym
	StateAddTask
	StateCreateTemplate
	StateAddHabit
	StateLogSet
	StateAddCardio
	StateApplyTemplate
	StateScheduleWorkout
)
