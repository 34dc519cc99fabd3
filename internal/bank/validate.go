package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizline/internal/quiz"
)

// validateQuestions performs all structural checks on a question set.
// Returns one error describing every problem found, or nil if valid.
func validateQuestions(questions []quiz.Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	ids := make(map[int]bool, len(questions))
	for _, q := range questions {
		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("question ID must be > 0, got %d", q.ID))
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		ids[q.ID] = true

		prefix := fmt.Sprintf("question %d", q.ID)
		if q.Points <= 0 {
			errs = append(errs, fmt.Sprintf("%s: points must be > 0, got %d", prefix, q.Points))
		}

		switch q.Kind {
		case quiz.KindMultipleChoice:
			errs = append(errs, validateMultipleChoice(prefix, q)...)
		case quiz.KindMatching:
			errs = append(errs, validateMatching(prefix, q)...)
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, q.Kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: bank validation failed:\n  %s", quiz.ErrInvalidQuestion, strings.Join(errs, "\n  "))
	}
	return nil
}

func validateMultipleChoice(prefix string, q quiz.Question) []string {
	var errs []string

	if len(q.Options) == 0 {
		errs = append(errs, fmt.Sprintf("%s: multiple-choice question has no options", prefix))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
		}
		seen[opt] = true
	}

	if !seen[q.CorrectOption] {
		errs = append(errs, fmt.Sprintf("%s: correct option %q is not one of the options", prefix, q.CorrectOption))
	}
	return errs
}

func validateMatching(prefix string, q quiz.Question) []string {
	var errs []string

	if len(q.Items) == 0 {
		errs = append(errs, fmt.Sprintf("%s: matching question has no items", prefix))
	}

	itemIDs, dupItems := collectIDs(q.Items)
	for _, id := range dupItems {
		errs = append(errs, fmt.Sprintf("%s: duplicate item ID %q", prefix, id))
	}
	targetIDs, dupTargets := collectIDs(q.Targets)
	for _, id := range dupTargets {
		errs = append(errs, fmt.Sprintf("%s: duplicate target ID %q", prefix, id))
	}

	// Every item pairs with exactly one existing target, and no two items
	// share a target: a target can hold only one item at a time.
	for _, it := range q.Items {
		if _, ok := q.Pairing[it.ID]; !ok {
			errs = append(errs, fmt.Sprintf("%s: item %q has no entry in the pairing table", prefix, it.ID))
		}
	}
	claimed := make(map[string]string, len(q.Pairing))
	for itemID, targetID := range q.Pairing {
		if !itemIDs[itemID] {
			errs = append(errs, fmt.Sprintf("%s: pairing references nonexistent item %q", prefix, itemID))
		}
		if !targetIDs[targetID] {
			errs = append(errs, fmt.Sprintf("%s: pairing for item %q references nonexistent target %q", prefix, itemID, targetID))
		}
		if other, ok := claimed[targetID]; ok {
			errs = append(errs, fmt.Sprintf("%s: target %q is paired with both %q and %q", prefix, targetID, other, itemID))
		}
		claimed[targetID] = itemID
	}
	return errs
}

func collectIDs(items []quiz.Item) (map[string]bool, []string) {
	set := make(map[string]bool, len(items))
	var dups []string
	for _, it := range items {
		if set[it.ID] {
			dups = append(dups, it.ID)
		}
		set[it.ID] = true
	}
	return set, dups
}
