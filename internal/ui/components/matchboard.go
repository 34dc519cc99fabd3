package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/match"
	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/ui/theme"
)

// Board columns.
const (
	ColumnItems = iota
	ColumnTargets
)

// MatchBoard lets the player drag items onto targets with the keyboard:
// pick an item with Enter, then drop it on a target with Enter. Dropping
// onto an occupied target, or moving an already placed item, replaces the
// earlier placement.
type MatchBoard struct {
	Items   []quiz.Item
	Targets []quiz.Item

	board     *match.Board
	column    int
	cursor    [2]int
	held      string
	submitted bool
	pairing   map[string]string
}

// NewMatchBoard creates an empty board for the given items and targets.
func NewMatchBoard(items, targets []quiz.Item) MatchBoard {
	return MatchBoard{
		Items:   items,
		Targets: targets,
		board:   match.NewBoard(),
	}
}

// Update handles keyboard input. The board is frozen once submitted.
func (m MatchBoard) Update(msg tea.Msg) (MatchBoard, tea.Cmd) {
	if m.submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h":
		m.column = ColumnItems
	case "right", "l":
		m.column = ColumnTargets
	case "tab":
		m.column = 1 - m.column
	case "up", "k":
		if m.cursor[m.column] > 0 {
			m.cursor[m.column]--
		}
	case "down", "j":
		if m.cursor[m.column] < m.columnLen(m.column)-1 {
			m.cursor[m.column]++
		}
	case "enter", "space", " ":
		m.activate()
	case "x", "backspace", "delete":
		m.clear()
	case "s":
		m.submitted = true
		m.held = ""
	}
	return m, nil
}

func (m *MatchBoard) columnLen(col int) int {
	if col == ColumnItems {
		return len(m.Items)
	}
	return len(m.Targets)
}

func (m *MatchBoard) activate() {
	switch m.column {
	case ColumnItems:
		if len(m.Items) == 0 {
			return
		}
		m.held = m.Items[m.cursor[ColumnItems]].ID
		m.column = ColumnTargets
	case ColumnTargets:
		if len(m.Targets) == 0 {
			return
		}
		target := m.Targets[m.cursor[ColumnTargets]].ID
		if m.held == "" {
			// Pick up whatever sits on the target to move it elsewhere.
			if item, ok := m.board.ItemAt(target); ok {
				m.held = item
			}
			return
		}
		m.board.Place(quiz.Assignment{ItemID: m.held, TargetID: target})
		m.held = ""
		m.column = ColumnItems
		m.cursor[ColumnItems] = m.nextUnplaced()
	}
}

func (m *MatchBoard) clear() {
	switch m.column {
	case ColumnItems:
		if len(m.Items) > 0 {
			m.board.Remove(m.Items[m.cursor[ColumnItems]].ID)
		}
	case ColumnTargets:
		if len(m.Targets) == 0 {
			return
		}
		if item, ok := m.board.ItemAt(m.Targets[m.cursor[ColumnTargets]].ID); ok {
			m.board.Remove(item)
		}
	}
	m.held = ""
}

// nextUnplaced returns the first item without a target after the cursor,
// wrapping around, or the cursor itself when everything is placed.
func (m *MatchBoard) nextUnplaced() int {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := (m.cursor[ColumnItems] + step) % n
		if _, ok := m.board.TargetOf(m.Items[i].ID); !ok {
			return i
		}
	}
	return m.cursor[ColumnItems]
}

// Submitted reports whether the player has submitted the board.
func (m MatchBoard) Submitted() bool {
	return m.submitted
}

// Reopen unfreezes a submitted board, keeping its placements.
func (m *MatchBoard) Reopen() {
	m.submitted = false
	m.pairing = nil
}

// Held returns the ID of the item picked up, or "".
func (m MatchBoard) Held() string {
	return m.held
}

// Placed returns how many items currently sit on a target.
func (m MatchBoard) Placed() int {
	return m.board.Len()
}

// Answer returns the board's placements in the order they were made.
func (m MatchBoard) Answer() quiz.MatchingAnswer {
	return quiz.MatchingAnswer{Assignments: m.board.Assignments()}
}

// Reveal shows which placements are correct.
func (m *MatchBoard) Reveal(pairing map[string]string) {
	m.pairing = pairing
}

// View renders items on the left and numbered targets on the right.
func (m MatchBoard) View(width int) string {
	colWidth := (width - 6) / 2
	if colWidth < 16 {
		colWidth = 16
	}

	targetNo := make(map[string]int, len(m.Targets))
	for i, t := range m.Targets {
		targetNo[t.ID] = i + 1
	}

	var left strings.Builder
	left.WriteString(m.columnHeader("Items", ColumnItems))
	for i, it := range m.Items {
		slot := "[ ]"
		target, placed := m.board.TargetOf(it.ID)
		if placed {
			slot = fmt.Sprintf("[%d]", targetNo[target])
		}
		line := fmt.Sprintf("%s%s %s", m.pointer(ColumnItems, i), slot, it.Content)
		left.WriteString(m.itemStyle(i, it.ID, target, placed).Width(colWidth).Render(line))
		left.WriteString("\n")
	}

	var right strings.Builder
	right.WriteString(m.columnHeader("Targets", ColumnTargets))
	for i, t := range m.Targets {
		line := fmt.Sprintf("%s%d. %s", m.pointer(ColumnTargets, i), i+1, t.Content)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if m.column == ColumnTargets && i == m.cursor[ColumnTargets] && !m.submitted {
			style = theme.Selected
		}
		right.WriteString(style.Width(colWidth).Render(line))
		right.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "  ", right.String())
}

func (m MatchBoard) columnHeader(title string, col int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Underline(true)
	if m.column == col && !m.submitted {
		style = style.Foreground(theme.Secondary)
	}
	return style.Render(title) + "\n"
}

func (m MatchBoard) pointer(col, i int) string {
	if !m.submitted && m.column == col && m.cursor[col] == i {
		return "▸ "
	}
	return "  "
}

func (m MatchBoard) itemStyle(i int, itemID, target string, placed bool) lipgloss.Style {
	switch {
	case m.pairing != nil && placed && m.pairing[itemID] == target:
		return theme.Correct
	case m.pairing != nil:
		return theme.Incorrect
	case itemID == m.held:
		return theme.Held
	case m.column == ColumnItems && i == m.cursor[ColumnItems] && !m.submitted:
		return theme.Selected
	case placed:
		return theme.Placed
	default:
		return theme.Unselected
	}
}
