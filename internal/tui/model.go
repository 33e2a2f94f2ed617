package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/livestatus"
	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/reminder"
	"github.com/julianstephens/lockd/internal/tui/components/tasklist"
	"github.com/julianstephens/lockd/internal/tui/components/trend"
	"github.com/julianstephens/lockd/internal/validation"
)

type eventMsg planner.Event

type celebrationDoneMsg struct{ gen int }

type milestoneDoneMsg struct{ gen int }

type tickMsg time.Time

type Model struct {
	store    *planner.Store
	board    *livestatus.Board
	notifier reminder.Notifier

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	taskList    tasklist.Model
	trendModel  trend.Model
	habitCursor int
	exerciseIdx int

	form         *huh.Form
	taskForm     *TaskFormModel
	templateForm *TemplateFormModel
	habitForm    *HabitFormModel
	setForm      *SetFormModel
	cardioForm   *CardioFormModel

	// celebration and milestone are dismissed by tick messages carrying
	// the generation they were started with; a stale tick is ignored.
	celebration    string
	celebrationGen int
	milestone      string
	milestoneGen   int

	events <-chan planner.Event

	status            string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

// NewModel builds the TUI over store. Events are delivered until ctx is done.
// board is the live status collaborator wired into store; milestones are also
// sent to notifier when it is non-nil.
func NewModel(ctx context.Context, store *planner.Store, board *livestatus.Board, notifier reminder.Notifier) Model {
	if board == nil {
		board = livestatus.NewBoard(store.Now)
	}
	m := Model{
		store:      store,
		board:      board,
		notifier:   notifier,
		state:      constants.StatePlanner,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		taskList:   tasklist.New(nil, 0, 0),
		trendModel: trend.New(0, 0),
		events:     store.Watch(ctx),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick())
}

func waitForEvent(ch <-chan planner.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StatePlanner:
		keys = append(keys, m.keys.Add, m.keys.PrevDay, m.keys.NextDay, m.keys.ApplyTemplate)
	case constants.StateHabits:
		keys = append(keys, m.keys.Log, m.keys.Miss, m.keys.Add)
	case constants.StateGym:
		keys = append(keys, m.keys.LogSet, m.keys.Cardio, m.keys.Workout)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	switch m.state {
	case constants.StatePlanner:
		actions = []key.Binding{m.keys.Add, m.taskList.ToggleKey(), m.keys.ApplyTemplate, m.keys.SaveTemplate, m.keys.Suggest}
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Log, m.keys.Miss, m.keys.Add}
	case constants.StateGym:
		actions = []key.Binding{m.keys.LogSet, m.keys.Cardio, m.keys.Workout}
	}

	return [][]key.Binding{global, navigation, actions}
}

// refresh reloads every view from the store.
func (m *Model) refresh() {
	day := m.store.SelectedDay()
	tasks := m.store.TasksForDay(day)

	items := make([]tasklist.Item, len(tasks))
	for i, t := range tasks {
		items[i] = tasklist.Item{Task: t, Overlap: m.store.HasOverlap(t)}
	}
	m.taskList.SetItems(items)

	if n := len(m.store.Habits()); m.habitCursor >= n {
		m.habitCursor = max(0, n-1)
	}

	names := m.store.ExerciseNames()
	if m.exerciseIdx >= len(names) {
		m.exerciseIdx = 0
	}
	if len(names) > 0 {
		name := names[m.exerciseIdx]
		m.trendModel.SetSeries(name, m.store.Trend(name))
	}

	result := validation.ValidateDay(day, tasks)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m *Model) celebrate(title string) tea.Cmd {
	m.celebrationGen++
	gen := m.celebrationGen
	m.celebration = title
	return tea.Tick(constants.CelebrationDuration, func(time.Time) tea.Msg {
		return celebrationDoneMsg{gen: gen}
	})
}

// notify delivers text to the tray off the update loop.
func (m *Model) notify(text string) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	n := m.notifier
	return func() tea.Msg {
		if err := n.Notify(text); err != nil {
			logger.Warn("milestone notification failed", "error", err)
		}
		return nil
	}
}

func (m *Model) showMilestone(text string) tea.Cmd {
	m.milestoneGen++
	gen := m.milestoneGen
	m.milestone = text
	return tea.Tick(constants.MilestoneDuration, func(time.Time) tea.Msg {
		return milestoneDoneMsg{gen: gen}
	})
}
