package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options are labelled A, B, C…
// and can be picked with arrows + Enter or with the number keys.
type MultiChoice struct {
	Options  []string
	Selected int
	chosen   int
	correct  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		chosen:  -1,
		correct: -1,
	}
}

// Update handles keyboard navigation and selection. Once an option is
// chosen the component ignores further input.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted() {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.chosen = m.Selected
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.chosen = i
			}
		}
	}

	return m, nil
}

// Submitted reports whether an option has been chosen.
func (m MultiChoice) Submitted() bool {
	return m.chosen >= 0
}

// Choice returns the chosen option text, or "" before submission.
func (m MultiChoice) Choice() string {
	if !m.Submitted() {
		return ""
	}
	return m.Options[m.chosen]
}

// Reveal marks the correct option so View can color the outcome.
func (m *MultiChoice) Reveal(correct string) {
	m.correct = -1
	for i, opt := range m.Options {
		if opt == correct {
			m.correct = i
			break
		}
	}
}

// Reopen clears the choice so the player can pick again, for example
// after the answer was refused.
func (m *MultiChoice) Reopen() {
	m.chosen = -1
	m.correct = -1
}

// Label returns the letter shown before option i.
func Label(i int) string {
	return string(rune('A' + i))
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	revealed := m.Submitted() && m.correct >= 0

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, Label(i), opt)

		var style lipgloss.Style
		switch {
		case revealed && i == m.correct:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case revealed && i == m.chosen:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Submitted() && i == m.chosen:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case m.Submitted():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
