package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StatePlanner:
		content = m.viewPlanner()
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateGym:
		content = m.viewGym()
	default:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	sections := []string{m.viewTabs()}
	if m.milestone != "" {
		sections = append(sections, milestoneStyle.Render("🏆 "+m.milestone))
	}
	sections = append(sections, content)
	if m.status != "" {
		sections = append(sections, mutedStyle.Render("  "+m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	active := m.state
	if m.inForm() {
		active = m.previousState
	}
	var tabs []string
	for i, title := range []string{"Planner", "Habits", "Gym"} {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPlanner() string {
	now := m.store.Now()
	loc := m.store.Location()
	day := m.store.SelectedDay()
	tasks := m.store.TasksForDay(day)

	done := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			done++
		}
	}
	summary := models.DaySummary{Date: day, TotalTasks: len(tasks), CompletedTasks: done}

	label := day.Format("Mon, Jan 2")
	if utils.DayString(day, loc) == utils.DayString(now, loc) {
		label += " (today)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", headerStyle.Render(label),
		mutedStyle.Render(fmt.Sprintf("%d/%d done · %s", done, len(tasks), format.Percent(summary.CompletionRate()))))

	b.WriteString(m.viewLiveCard(now) + "\n")

	if m.celebration != "" {
		b.WriteString(celebrationStyle.Render("✓ Locked in: "+m.celebration) + "\n")
	}
	if m.validationWarning != "" {
		b.WriteString(warningStyle.Render(m.validationWarning) + "\n")
	}

	b.WriteString(m.taskList.View() + "\n")

	if suggestions := m.pendingSuggestions(); len(suggestions) > 0 {
		b.WriteString(mutedStyle.Render("Habit blocks available (s): "+strings.Join(suggestions, ", ")) + "\n")
	}
	b.WriteString(m.viewHistory())

	return docStyle.Render(b.String())
}

// viewLiveCard renders the live status board's current/next card.
func (m Model) viewLiveCard(now time.Time) string {
	a := m.board.Snapshot()
	if !a.Active {
		if a.UpdatedAt.IsZero() {
			return mutedStyle.Render("Live: waiting for today's plan")
		}
		return mutedStyle.Render("Live: day complete. Everything is locked in.")
	}

	current := a.CurrentTitle
	if a.CurrentRange != "" {
		current += " (" + a.CurrentRange + ")"
	}
	line := fmt.Sprintf("Now: %s  ·  Next: %s", current, a.NextTitle)
	if a.Stale(now) {
		line += "  " + warningStyle.Render("(stale since "+a.UpdatedAt.In(m.store.Location()).Format(constants.TimeFormat)+")")
	}
	return line
}

// pendingSuggestions lists habit blocks not yet on the selected day.
func (m Model) pendingSuggestions() []string {
	day := m.store.SelectedDay()
	existing := make(map[string]bool)
	for _, t := range m.store.TasksForDay(day) {
		if t.Category == constants.HabitCategory {
			existing[t.Title] = true
		}
	}
	var names []string
	for _, s := range m.store.SuggestHabitTasks(day) {
		if !existing[s.Title] {
			names = append(names, s.Title)
		}
	}
	return names
}

func (m Model) viewHistory() string {
	history := m.store.History()
	if len(history) > constants.HistoryDays {
		history = history[:constants.HistoryDays]
	}
	if len(history) == 0 {
		return ""
	}
	parts := make([]string, 0, len(history))
	for _, s := range history {
		parts = append(parts, fmt.Sprintf("%s %s", s.Date.Format("Jan 02"), format.Percent(s.CompletionRate())))
	}
	return mutedStyle.Render("History: " + strings.Join(parts, "  "))
}

func (m Model) viewHabits() string {
	habits := m.store.Habits()
	var b strings.Builder
	b.WriteString(headerStyle.Render("Habits") + "\n\n")

	if len(habits) == 0 {
		b.WriteString("No habits yet. Press 'a' to add one.\n")
		return docStyle.Render(b.String())
	}

	for i, h := range habits {
		cursor := "  "
		name := h.Name
		if i == m.habitCursor {
			cursor = "> "
			name = selectedStyle.Render(name)
		}
		mark := "○"
		if h.IsGoalCompleted() {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s%s %s [%s]  %d/%d this week  streak %d (best %d)  ⏰ %s\n",
			cursor, mark, name, h.Type.Label(), h.WeeklyCompleted, h.WeeklyTarget,
			h.CurrentStreak, h.BestStreak, h.ReminderTime())
	}

	if achievements := m.store.Achievements(); len(achievements) > 0 {
		b.WriteString("\n" + headerStyle.Render("Achievements") + "\n")
		for i, a := range achievements {
			if i == 3 {
				fmt.Fprintf(&b, "  … and %d more\n", len(achievements)-3)
				break
			}
			fmt.Fprintf(&b, "  🏆 %s  %s\n", a.Detail, mutedStyle.Render(format.Ago(a.Date, m.store.Now())))
		}
	}
	return docStyle.Render(b.String())
}

func (m Model) viewGym() string {
	var b strings.Builder

	names := m.store.ExerciseNames()
	if len(names) > 0 {
		tabs := make([]string, len(names))
		for i, n := range names {
			if i == m.exerciseIdx {
				tabs[i] = selectedStyle.Render(n)
			} else {
				tabs[i] = mutedStyle.Render(n)
			}
		}
		b.WriteString(strings.Join(tabs, "  ") + "\n")
		name := names[m.exerciseIdx]
		if pr, ok := m.store.PersonalRecord(name); ok {
			var volume float64
			for _, p := range m.store.Trend(name) {
				volume += p.TotalVolume
			}
			fmt.Fprintf(&b, "PR %s  ·  total volume %s\n", format.Weight(pr), format.CompactCount(int(volume)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.trendModel.View() + "\n\n")

	b.WriteString(headerStyle.Render("Workout templates") + "\n")
	for _, w := range m.store.WorkoutTemplates() {
		fmt.Fprintf(&b, "  %s (%d exercises)\n", w.Name, len(w.Exercises))
	}

	if logs := m.store.CardioLogs(); len(logs) > 0 {
		b.WriteString("\n" + headerStyle.Render("Cardio") + "\n")
		for i, l := range logs {
			if i == 3 {
				break
			}
			line := fmt.Sprintf("  %s  %s %s", l.Date.In(m.store.Location()).Format("Jan 02"), l.Machine.Label(), format.Minutes(l.DurationMinutes))
			if l.Speed > 0 {
				line += " @ " + format.Decimal(l.Speed)
			}
			b.WriteString(line + "\n")
		}
	}
	return docStyle.Render(b.String())
}
