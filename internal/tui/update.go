package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
	"github.com/julianstephens/lockd/internal/logger"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/tui/components/tasklist"
)

const tabCount = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(max(0, msg.Width-4), max(0, msg.Height-14))
		m.trendModel.SetSize(max(0, msg.Width-4), max(0, msg.Height-16))
		return m, nil

	case eventMsg:
		cmd := m.handleEvent(planner.Event(msg))
		return m, tea.Batch(cmd, waitForEvent(m.events))

	case celebrationDoneMsg:
		if msg.gen == m.celebrationGen {
			m.celebration = ""
		}
		return m, nil

	case milestoneDoneMsg:
		if msg.gen == m.milestoneGen {
			m.milestone = ""
		}
		return m, nil

	case tickMsg:
		m.store.SyncLiveStatus()
		m.refresh()
		return m, tick()

	case tasklist.AddTaskMsg:
		m.taskForm = newTaskFormModel()
		return m, m.openForm(constants.StateAddTask, NewTaskForm(m.taskForm))

	case tasklist.ToggleTaskMsg:
		return m, m.toggleTask(msg.ID)
	}

	if m.inForm() {
		return m, m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
		var handled bool
		var cmd tea.Cmd
		switch m.state {
		case constants.StatePlanner:
			handled, cmd = m.handlePlannerKeys(msg)
		case constants.StateHabits:
			handled, cmd = m.handleHabitKeys(msg)
		case constants.StateGym:
			handled, cmd = m.handleGymKeys(msg)
		}
		if handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StatePlanner:
		m.taskList, cmd = m.taskList.Update(msg)
	case constants.StateGym:
		m.trendModel, cmd = m.trendModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleEvent(ev planner.Event) tea.Cmd {
	logger.Debug("tui event", "type", ev.Type, "task", ev.TaskID, "habit", ev.HabitID)
	m.refresh()

	switch ev.Type {
	case planner.EventHabitGoalCompleted:
		if ev.Achievement != nil {
			text := ev.Achievement.Title + ": " + ev.Achievement.Detail
			return tea.Batch(m.showMilestone(text), m.notify(text))
		}
	case planner.EventTrendPointRecorded:
		if ev.Point != nil && ev.Point.IsPersonalRecord {
			return m.showMilestone(fmt.Sprintf("New PR: %s %s", ev.Exercise, format.Weight(ev.Point.TopSetWeight)))
		}
	}
	return nil
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.status = ""
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		m.status = ""
		return true, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}
	return false, nil
}

func (m *Model) handlePlannerKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	day := m.store.SelectedDay()
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.store.UpdateSelectedDay(day.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		m.store.UpdateSelectedDay(day.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		m.store.UpdateSelectedDay(m.store.Now())
	case key.Matches(msg, m.keys.Suggest):
		added := m.store.AcceptHabitSuggestions(day)
		m.status = fmt.Sprintf("Added %d habit block(s)", len(added))
	case key.Matches(msg, m.keys.ApplyTemplate):
		templates := m.store.DayTemplates()
		if len(templates) == 0 {
			m.status = "No day templates yet. Press 'T' to save this day as one."
			return true, nil
		}
		m.templateForm = &TemplateFormModel{TemplateID: templates[0].ID}
		return true, m.openForm(constants.StateApplyTemplate, NewApplyTemplateForm(m.templateForm, templates))
	case key.Matches(msg, m.keys.SaveTemplate):
		m.templateForm = &TemplateFormModel{}
		return true, m.openForm(constants.StateCreateTemplate, NewCreateTemplateForm(m.templateForm))
	case key.Matches(msg, m.keys.Workout):
		return true, m.openWorkoutForm()
	default:
		return false, nil
	}
	m.refresh()
	return true, nil
}

func (m *Model) handleHabitKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	habits := m.store.Habits()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitCursor < len(habits)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keys.Log), key.Matches(msg, m.keys.Miss):
		if len(habits) == 0 {
			return true, nil
		}
		completed := key.Matches(msg, m.keys.Log)
		res, err := m.store.LogHabit(habits[m.habitCursor].ID, completed)
		if err != nil {
			m.status = err.Error()
			return true, nil
		}
		if completed {
			m.status = fmt.Sprintf("Logged %s (%d/%d this week)", res.Habit.Name, res.Habit.WeeklyCompleted, res.Habit.WeeklyTarget)
		} else {
			m.status = fmt.Sprintf("Logged a miss for %s", res.Habit.Name)
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Type: models.HabitBuild, Target: "5"}
		return true, m.openForm(constants.StateAddHabit, NewHabitForm(m.habitForm))
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) handleGymKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	names := m.store.ExerciseNames()
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if len(names) > 0 {
			m.exerciseIdx = (m.exerciseIdx - 1 + len(names)) % len(names)
		}
	case key.Matches(msg, m.keys.NextDay):
		if len(names) > 0 {
			m.exerciseIdx = (m.exerciseIdx + 1) % len(names)
		}
	case key.Matches(msg, m.keys.LogSet):
		m.setForm = &SetFormModel{Exercise: m.trendModel.Exercise, Reps: "5", Sets: "3"}
		return true, m.openForm(constants.StateLogSet, NewSetForm(m.setForm))
	case key.Matches(msg, m.keys.Cardio):
		m.cardioForm = &CardioFormModel{Machine: models.MachineTreadmill, Duration: "20"}
		return true, m.openForm(constants.StateAddCardio, NewCardioForm(m.cardioForm))
	case key.Matches(msg, m.keys.Workout):
		return true, m.openWorkoutForm()
	default:
		return false, nil
	}
	m.refresh()
	return true, nil
}

func (m *Model) openWorkoutForm() tea.Cmd {
	templates := m.store.WorkoutTemplates()
	if len(templates) == 0 {
		m.status = "No workout templates yet."
		return nil
	}
	m.templateForm = &TemplateFormModel{TemplateID: templates[0].ID}
	return m.openForm(constants.StateScheduleWorkout, NewScheduleWorkoutForm(m.templateForm, templates))
}

func (m *Model) toggleTask(id string) tea.Cmd {
	task, err := m.store.ToggleComplete(id)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.refresh()
	if task.IsCompleted() {
		return m.celebrate(task.Title)
	}
	return nil
}

func (m *Model) inForm() bool {
	return m.form != nil && m.state >= constants.StateAddTask
}

func (m *Model) openForm(state constants.SessionState, form *huh.Form) tea.Cmd {
	if !m.inForm() {
		m.previousState = m.state
	}
	m.state = state
	m.form = form
	m.status = ""
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
	m.taskForm = nil
	m.templateForm = nil
	m.habitForm = nil
	m.setForm = nil
	m.cardioForm = nil
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			// Stay in the form so the user can correct the input or press esc.
			m.status = err.Error()
			m.form.State = huh.StateNormal
			break
		}
		m.closeForm()
		m.refresh()
	case huh.StateAborted:
		m.closeForm()
	}
	return tea.Batch(cmds...)
}

func (m *Model) submitForm() error {
	day := m.store.SelectedDay()

	switch m.state {
	case constants.StateAddTask:
		in, err := m.taskForm.NewTask(day, m.store.Location())
		if err != nil {
			return err
		}
		task, err := m.store.AddTask(in)
		if err != nil {
			return err
		}
		m.status = "Added " + task.Title

	case constants.StateApplyTemplate:
		added, err := m.store.ApplyTemplateByID(m.templateForm.TemplateID, day)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Applied template: %d block(s) added", len(added))

	case constants.StateCreateTemplate:
		tmpl, err := m.store.CreateTemplate(strings.TrimSpace(m.templateForm.Name), day)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Saved %q with %d block(s)", tmpl.Name, len(tmpl.Tasks))

	case constants.StateScheduleWorkout:
		task, err := m.store.ScheduleWorkout(m.templateForm.TemplateID, day)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("Scheduled %s at %s", task.Title, task.Start.Format(constants.TimeFormat))

	case constants.StateAddHabit:
		target, err := m.habitForm.WeeklyTarget()
		if err != nil {
			return err
		}
		h := m.store.AddHabit(strings.TrimSpace(m.habitForm.Name), m.habitForm.Type, target)
		m.status = "Added habit " + h.Name

	case constants.StateLogSet:
		weight, reps, sets, err := m.setForm.Parse()
		if err != nil {
			return err
		}
		p := m.store.LogSet(strings.TrimSpace(m.setForm.Exercise), weight, reps, sets)
		m.status = fmt.Sprintf("Logged %s %s x %d x %d", p.Exercise, format.Weight(weight), reps, sets)

	case constants.StateAddCardio:
		log, err := m.cardioForm.CardioLog()
		if err != nil {
			return err
		}
		log = m.store.AddCardioLog(log)
		m.status = fmt.Sprintf("Logged %s %s", log.Machine.Label(), format.Minutes(log.DurationMinutes))
	}
	return nil
}
