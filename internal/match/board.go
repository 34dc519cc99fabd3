package match

import (
	"slices"

	"github.com/abhisek/quizline/internal/quiz"
)

// Board holds the active item→target placements of a matching question.
// An item occupies at most one target and a target holds at most one item.
type Board struct {
	placed []quiz.Assignment
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place puts an item on a target. Any placement that shares the item or the
// target is removed first, so the newest drag always wins.
func (b *Board) Place(a quiz.Assignment) {
	b.placed = slices.DeleteFunc(b.placed, func(p quiz.Assignment) bool {
		return p.ItemID == a.ItemID || p.TargetID == a.TargetID
	})
	b.placed = append(b.placed, a)
}

// Remove takes an item off the board. Returns false if it wasn't placed.
func (b *Board) Remove(itemID string) bool {
	n := len(b.placed)
	b.placed = slices.DeleteFunc(b.placed, func(p quiz.Assignment) bool {
		return p.ItemID == itemID
	})
	return len(b.placed) != n
}

// TargetOf returns the target the item currently sits on.
func (b *Board) TargetOf(itemID string) (string, bool) {
	for _, p := range b.placed {
		if p.ItemID == itemID {
			return p.TargetID, true
		}
	}
	return "", false
}

// ItemAt returns the item currently sitting on the target.
func (b *Board) ItemAt(targetID string) (string, bool) {
	for _, p := range b.placed {
		if p.TargetID == targetID {
			return p.ItemID, true
		}
	}
	return "", false
}

// Len returns the number of active placements.
func (b *Board) Len() int {
	return len(b.placed)
}

// Assignments returns a copy of the active placements in placement order.
func (b *Board) Assignments() []quiz.Assignment {
	return slices.Clone(b.placed)
}
