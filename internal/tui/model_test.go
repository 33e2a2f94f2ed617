package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/livestatus"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/reminder"
	"github.com/julianstephens/lockd/internal/tui/components/tasklist"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, state planner.State) (Model, *planner.Store) {
	t.Helper()
	return newTestModelAt(t, state, func() time.Time { return testNow }, nil)
}

func newTestModelAt(t *testing.T, state planner.State, now func() time.Time, n reminder.Notifier) (Model, *planner.Store) {
	t.Helper()
	board := livestatus.NewBoard(now)
	store := planner.New(
		planner.WithClock(now),
		planner.WithLocation(time.UTC),
		planner.WithLiveStatus(board),
		planner.WithState(state),
	)
	m := NewModel(testContext(t), store, board, n)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), store
}

type fakeNotifier struct {
	sent chan string
}

func (f *fakeNotifier) Notify(text string) error {
	f.sent <- text
	return nil
}

// runCmd executes cmd and any batched children in the background.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		if batch, ok := cmd().(tea.BatchMsg); ok {
			for _, c := range batch {
				runCmd(c)
			}
		}
	}()
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TabCycling(t *testing.T) {
	m, _ := newTestModel(t, planner.State{})

	want := []constants.SessionState{constants.StateHabits, constants.StateGym, constants.StatePlanner}
	for _, w := range want {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != w {
			t.Errorf("state after tab = %v, want %v", m.state, w)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != constants.StateGym {
		t.Errorf("state after shift+tab = %v, want %v", m.state, constants.StateGym)
	}
}

func TestModel_ToggleCelebrates(t *testing.T) {
	task := models.Task{ID: "t1", Title: "Deep Work", Category: "Focus", Start: at(10, 0), End: at(11, 0), Priority: models.PriorityHigh, Source: models.SourceManual}
	m, store := newTestModel(t, planner.State{Tasks: []models.Task{task}})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected toggle command from task list")
	}
	msg, ok := cmd().(tasklist.ToggleTaskMsg)
	if !ok || msg.ID != "t1" {
		t.Fatalf("cmd() = %#v, want ToggleTaskMsg{ID: t1}", msg)
	}

	m, cmd = send(t, m, msg)
	if m.celebration != "Deep Work" {
		t.Errorf("celebration = %q, want %q", m.celebration, "Deep Work")
	}
	if cmd == nil {
		t.Error("expected celebration dismissal tick")
	}
	got, err := store.Task("t1")
	if err != nil || !got.IsCompleted() {
		t.Errorf("Task() = %+v, %v, want completed", got, err)
	}

	gen := m.celebrationGen
	m, _ = send(t, m, celebrationDoneMsg{gen: gen - 1})
	if m.celebration == "" {
		t.Error("stale dismissal cleared the celebration")
	}
	m, _ = send(t, m, celebrationDoneMsg{gen: gen})
	if m.celebration != "" {
		t.Errorf("celebration = %q after dismissal, want empty", m.celebration)
	}

	// Reopening does not celebrate.
	m, cmd = send(t, m, tasklist.ToggleTaskMsg{ID: "t1"})
	if m.celebration != "" || cmd != nil {
		t.Errorf("reopen celebration = %q, cmd = %v, want none", m.celebration, cmd)
	}
}

func TestModel_MilestoneFromEvents(t *testing.T) {
	m, _ := newTestModel(t, planner.State{})

	a := &models.Achievement{Title: constants.AchievementTitle, Detail: "Read weekly target complete"}
	m, cmd := send(t, m, eventMsg(planner.Event{Type: planner.EventHabitGoalCompleted, Achievement: a}))
	if m.milestone != "Goal Locked: Read weekly target complete" {
		t.Errorf("milestone = %q", m.milestone)
	}
	if cmd == nil {
		t.Error("expected milestone tick and event wait commands")
	}

	m, _ = send(t, m, milestoneDoneMsg{gen: m.milestoneGen})
	if m.milestone != "" {
		t.Errorf("milestone = %q after dismissal, want empty", m.milestone)
	}

	p := &models.TrendPoint{Exercise: "Bench Press", TopSetWeight: 190, IsPersonalRecord: true}
	m, _ = send(t, m, eventMsg(planner.Event{Type: planner.EventTrendPointRecorded, Exercise: "Bench Press", Point: p}))
	if m.milestone != "New PR: Bench Press 190 lb" {
		t.Errorf("milestone = %q, want PR message", m.milestone)
	}
}

func TestModel_PlannerDayNavigation(t *testing.T) {
	m, store := newTestModel(t, planner.State{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC); !store.SelectedDay().Equal(want) {
		t.Errorf("SelectedDay() = %v, want %v", store.SelectedDay(), want)
	}

	m, _ = send(t, m, runes("h"))
	m, _ = send(t, m, runes("h"))
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !store.SelectedDay().Equal(want) {
		t.Errorf("SelectedDay() = %v, want %v", store.SelectedDay(), want)
	}

	_, _ = send(t, m, runes("."))
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !store.SelectedDay().Equal(want) {
		t.Errorf("SelectedDay() = %v, want %v", store.SelectedDay(), want)
	}
}

func TestModel_AcceptSuggestions(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Read", Type: models.HabitBuild, WeeklyTarget: 5, ReminderHour: 8},
		{ID: "h2", Name: "Walk", Type: models.HabitBuild, WeeklyTarget: 3, ReminderHour: 12},
	}
	m, store := newTestModel(t, planner.State{Habits: habits})

	if got := m.pendingSuggestions(); len(got) != 2 {
		t.Fatalf("pendingSuggestions() = %v, want 2 names", got)
	}

	m, _ = send(t, m, runes("s"))
	if got := len(store.TasksForSelectedDay()); got != 2 {
		t.Errorf("TasksForSelectedDay() = %d tasks, want 2", got)
	}
	if m.status != "Added 2 habit block(s)" {
		t.Errorf("status = %q", m.status)
	}
	if got := m.pendingSuggestions(); len(got) != 0 {
		t.Errorf("pendingSuggestions() = %v after accept, want none", got)
	}

	m, _ = send(t, m, runes("s"))
	if m.status != "Added 0 habit block(s)" {
		t.Errorf("status = %q, want no duplicates added", m.status)
	}
}

func TestModel_HabitLogging(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Read", Type: models.HabitBuild, WeeklyTarget: 5, WeeklyCompleted: 1, CurrentStreak: 1, BestStreak: 4},
		{ID: "h2", Name: "No Sugar", Type: models.HabitRemove, WeeklyTarget: 2, WeeklyCompleted: 1, CurrentStreak: 3, BestStreak: 3},
	}
	m, store := newTestModel(t, planner.State{Habits: habits})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.habitCursor != 1 {
		t.Fatalf("habitCursor = %d, want 1", m.habitCursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.habitCursor != 1 {
		t.Errorf("habitCursor = %d, want cursor clamped at 1", m.habitCursor)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	h, _ := store.Habit("h2")
	if h.WeeklyCompleted != 2 || h.CurrentStreak != 4 || h.BestStreak != 4 {
		t.Errorf("Habit() = %+v, want 2 completed, streak 4, best 4", h)
	}
	if len(store.Achievements()) != 1 {
		t.Errorf("Achievements() = %d, want 1", len(store.Achievements()))
	}

	_, _ = send(t, m, runes("x"))
	h, _ = store.Habit("h2")
	if h.CurrentStreak != 0 || h.WeeklyCompleted != 2 {
		t.Errorf("Habit() after miss = %+v, want streak reset only", h)
	}
}

func TestModel_GymExerciseCycling(t *testing.T) {
	trends := map[string][]models.TrendPoint{
		"Bench Press": {{Exercise: "Bench Press", Day: testNow, TopSetWeight: 185}},
		"Squat":       {{Exercise: "Squat", Day: testNow, TopSetWeight: 275}},
	}
	m, _ := newTestModel(t, planner.State{Trends: trends})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	if m.trendModel.Exercise != "Bench Press" {
		t.Errorf("trend exercise = %q, want Bench Press", m.trendModel.Exercise)
	}
	m, _ = send(t, m, runes("l"))
	if m.trendModel.Exercise != "Squat" {
		t.Errorf("trend exercise = %q, want Squat", m.trendModel.Exercise)
	}
	m, _ = send(t, m, runes("l"))
	if m.trendModel.Exercise != "Bench Press" {
		t.Errorf("trend exercise = %q, want wrap to Bench Press", m.trendModel.Exercise)
	}
}

func TestModel_FormOpenAndEscape(t *testing.T) {
	m, _ := newTestModel(t, planner.State{})

	m, cmd := send(t, m, runes("a"))
	if cmd == nil {
		t.Fatal("expected add task command")
	}
	m, _ = send(t, m, cmd())
	if m.state != constants.StateAddTask || m.form == nil {
		t.Fatalf("state = %v, form = %v, want add task form", m.state, m.form)
	}
	if m.viewTabs() == "" {
		t.Error("viewTabs() is empty while a form is open")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StatePlanner || m.form != nil {
		t.Errorf("state = %v, form = %v, want planner with no form", m.state, m.form)
	}
}

func TestModel_ApplyTemplateWithoutTemplates(t *testing.T) {
	m, _ := newTestModel(t, planner.State{})
	m, cmd := send(t, m, runes("t"))
	if cmd != nil || m.state != constants.StatePlanner {
		t.Errorf("state = %v, cmd = %v, want planner without form", m.state, cmd)
	}
	if m.status == "" {
		t.Error("expected a status hint when no templates exist")
	}
}

func TestModel_ValidationWarning(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Title: "Gym", Start: at(7, 0), End: at(8, 0)},
		{ID: "b", Title: "Call", Start: at(7, 30), End: at(8, 30)},
	}
	m, _ := newTestModel(t, planner.State{Tasks: tasks})
	if m.validationWarning == "" {
		t.Error("expected validation warning for overlapping tasks")
	}
}

func TestModel_QuitAndView(t *testing.T) {
	m, _ := newTestModel(t, planner.State{})
	if m.View() == "" {
		t.Error("View() is empty")
	}
	m, cmd := send(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Errorf("quitting = %v, cmd = %v, want quit", m.quitting, cmd)
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModel_LiveCardFollowsBoard(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Title: "Deep Work", Start: at(9, 0), End: at(10, 0)},
		{ID: "b", Title: "Review", Start: at(11, 0), End: at(11, 30)},
	}
	m, store := newTestModel(t, planner.State{Tasks: tasks})

	if got := m.viewLiveCard(testNow); !strings.Contains(got, "waiting for today's plan") {
		t.Errorf("viewLiveCard() before sync = %q, want waiting state", got)
	}

	store.SyncLiveStatus()
	got := m.viewLiveCard(testNow)
	if !strings.Contains(got, "Now: Deep Work (09:00-10:00)") || !strings.Contains(got, "Next: Review") {
		t.Errorf("viewLiveCard() after announce = %q, want current and next", got)
	}
	if !strings.Contains(m.View(), "Now: Deep Work (09:00-10:00)") {
		t.Error("View() does not show the live card")
	}

	for _, id := range []string{"a", "b"} {
		if _, err := store.ToggleComplete(id); err != nil {
			t.Fatalf("ToggleComplete(%q) error = %v", id, err)
		}
	}
	if got := m.viewLiveCard(testNow); !strings.Contains(got, "day complete") {
		t.Errorf("viewLiveCard() after clear = %q, want ended state", got)
	}
}

func TestModel_LiveCardMarksStale(t *testing.T) {
	now := testNow
	tasks := []models.Task{{ID: "a", Title: "Deep Work", Start: at(9, 0), End: at(12, 0)}}
	m, store := newTestModelAt(t, planner.State{Tasks: tasks}, func() time.Time { return now }, nil)

	store.SyncLiveStatus()
	if got := m.viewLiveCard(now); strings.Contains(got, "stale") {
		t.Errorf("viewLiveCard() = %q, want fresh card", got)
	}

	now = testNow.Add(constants.LiveStatusStale + time.Minute)
	if got := m.viewLiveCard(now); !strings.Contains(got, "(stale since 09:00)") {
		t.Errorf("viewLiveCard() = %q, want stale marker", got)
	}
}

func TestModel_MilestoneNotifiesTray(t *testing.T) {
	n := &fakeNotifier{sent: make(chan string, 1)}
	m, _ := newTestModelAt(t, planner.State{}, func() time.Time { return testNow }, n)

	a := &models.Achievement{Title: constants.AchievementTitle, Detail: "Read weekly target complete"}
	runCmd(m.handleEvent(planner.Event{Type: planner.EventHabitGoalCompleted, Achievement: a}))

	select {
	case got := <-n.sent:
		if want := "Goal Locked: Read weekly target complete"; got != want {
			t.Errorf("Notify() text = %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("milestone was not sent to the notifier")
	}
}

func TestModel_PersonalRecordDoesNotNotify(t *testing.T) {
	n := &fakeNotifier{sent: make(chan string, 1)}
	m, _ := newTestModelAt(t, planner.State{}, func() time.Time { return testNow }, n)

	p := &models.TrendPoint{Exercise: "Squat", TopSetWeight: 300, IsPersonalRecord: true}
	runCmd(m.handleEvent(planner.Event{Type: planner.EventTrendPointRecorded, Exercise: "Squat", Point: p}))

	select {
	case got := <-n.sent:
		t.Errorf("Notify() called with %q, want no tray notification for PRs", got)
	case <-time.After(100 * time.Millisecond):
	}
}

// testContext returns a context canceled when the test finishes, mirroring
// testing.T.Context (unavailable before Go 1.24).
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
