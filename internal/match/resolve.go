package match

import "github.com/abhisek/quizline/internal/quiz"

// Resolve replays assignments onto a fresh board in order. Assignments that
// name an unknown item or target are dropped without displacing anything.
func Resolve(items, targets []quiz.Item, assignments []quiz.Assignment) *Board {
	itemIDs := idSet(items)
	targetIDs := idSet(targets)

	b := NewBoard()
	for _, a := range assignments {
		if !itemIDs[a.ItemID] || !targetIDs[a.TargetID] {
			continue
		}
		b.Place(a)
	}
	return b
}

// CorrectCount returns how many placements on the resolved board agree with
// the pairing table.
func CorrectCount(items, targets []quiz.Item, pairing map[string]string, assignments []quiz.Assignment) int {
	b := Resolve(items, targets, assignments)
	correct := 0
	for _, p := range b.placed {
		if want, ok := pairing[p.ItemID]; ok && want == p.TargetID {
			correct++
		}
	}
	return correct
}

// CorrectCountFor is CorrectCount for a matching question.
func CorrectCountFor(q quiz.Question, assignments []quiz.Assignment) int {
	return CorrectCount(q.Items, q.Targets, q.Pairing, assignments)
}

func idSet(items []quiz.Item) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it.ID] = true
	}
	return set
}
