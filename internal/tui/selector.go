package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

type model struct {
	label    string
	choices  []string
	cursor   int
	selected bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := labelStyle.Render(m.label) + "\n\n"
	for i, choice := range m.choices {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		s += cursor + choice + "\n"
	}
	return s
}

// Select shows a list under the given label and returns the choice the
// user lands on. Quitting without confirming returns the first choice.
func Select(label string, choices []string) (string, error) {
	p := tea.NewProgram(model{label: label, choices: choices})
	m, err := p.Run()
	if err != nil {
		return "", err
	}
	final := m.(model)
	if !final.selected {
		return choices[0], nil
	}
	return choices[final.cursor], nil
}
