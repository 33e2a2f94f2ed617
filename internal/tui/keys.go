package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab           key.Binding
	ShiftTab      key.Binding
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	PrevDay       key.Binding
	NextDay       key.Binding
	Today         key.Binding
	Help          key.Binding
	Add           key.Binding
	Log           key.Binding
	Miss          key.Binding
	ApplyTemplate key.Binding
	SaveTemplate  key.Binding
	Suggest       key.Binding
	LogSet        key.Binding
	Cardio        key.Binding
	Workout       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Up, k.Down, k.PrevDay, k.NextDay, k.Today},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "today"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Log: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "log done"),
		),
		Miss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "log miss"),
		),
		ApplyTemplate: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "apply template"),
		),
		SaveTemplate: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "save day as template"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "add habit blocks"),
		),
		LogSet: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log set"),
		),
		Cardio: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "log cardio"),
		),
		Workout: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "schedule workout"),
		),
	}
}
