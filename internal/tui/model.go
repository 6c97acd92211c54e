package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one mode offered by the picker.
type Item struct {
	Name     string
	Bound    int // keys with a command
	Disabled int // keys showing the diagnostic or passing through
}

type Model struct {
	items    []Item
	cursor   int
	current  string
	Selected string // set when the user confirms a mode
	quitting bool
}

// NewModel returns a picker over items with the cursor on current, if present.
func NewModel(items []Item, current string) Model {
	m := Model{items: items, current: current}
	for i, it := range items {
		if it.Name == current {
			m.cursor = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.CtrlC), key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.Enter):
		if len(m.items) > 0 {
			m.Selected = m.items[m.cursor].Name
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
