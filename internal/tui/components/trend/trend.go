package trend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lockd/internal/format"
	"github.com/julianstephens/lockd/internal/models"
)

const maxBarWidth = 30

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(8)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	prStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
)

type Model struct {
	viewport viewport.Model
	Exercise string
	Points   []models.TrendPoint
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Exercise == "" {
		return "No exercises logged yet. Press 'L' to log a set."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetSeries(exercise string, points []models.TrendPoint) {
	m.Exercise = exercise
	m.Points = points
	m.Render()
}

// Render draws one bar per session, scaled to the heaviest top set.
func (m *Model) Render() {
	if len(m.Points) == 0 {
		m.viewport.SetContent("No sessions logged.")
		return
	}

	best := 0.0
	for _, p := range m.Points {
		if p.TopSetWeight > best {
			best = p.TopSetWeight
		}
	}

	var b strings.Builder
	for _, p := range m.Points {
		width := 1
		if best > 0 {
			width = max(1, int(p.TopSetWeight/best*maxBarWidth))
		}
		line := fmt.Sprintf("%s %s %s  vol %s",
			dayStyle.Render(p.Day.Format("Jan 02")),
			barStyle.Render(strings.Repeat("█", width)),
			format.Weight(p.TopSetWeight),
			format.Volume(p.TotalVolume),
		)
		if p.IsPersonalRecord {
			line += " " + prStyle.Render("PR")
		}
		b.WriteString(line + "\n")
	}
	m.viewport.SetContent(b.String())
}
