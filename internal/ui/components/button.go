package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizline/internal/ui/theme"
)

// Button fires OnPress when one of its keys is pressed. Keys default to
// Enter.
type Button struct {
	Label   string
	Keys    []string
	OnPress func() tea.Cmd
}

// NewButton creates a button triggered by the given keys, or Enter.
func NewButton(label string, onPress func() tea.Cmd, keys ...string) Button {
	if len(keys) == 0 {
		keys = []string{"enter"}
	}
	return Button{
		Label:   label,
		Keys:    keys,
		OnPress: onPress,
	}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || b.OnPress == nil {
		return b, nil
	}
	if slices.Contains(b.Keys, kmsg.String()) {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	return theme.Button.Render("▸ " + b.Label)
}
