package quiz

import (
	"errors"
	"slices"
)

// ErrInvalidQuestion is returned when a question cannot be scored or a bank
// cannot be built because a question is malformed.
var ErrInvalidQuestion = errors.New("invalid question")

// Kind identifies how a question is answered.
type Kind string

const (
	// KindMultipleChoice means the learner picks one option.
	KindMultipleChoice Kind = "multiple_choice"

	// KindMatching means the learner pairs items with targets.
	KindMatching Kind = "matching"
)

// Item is a draggable piece or a drop target of a matching question.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// Question is a single entry of a question bank. Questions are never
// mutated once a bank has been built from them.
type Question struct {
	// ID is unique within a bank and positive.
	ID int

	Kind Kind

	// Prompt is the display text. The engine never inspects it.
	Prompt string

	// Points is the total obtainable for this question.
	Points int

	// Options and CorrectOption are set for multiple-choice questions.
	Options       []string
	CorrectOption string

	// Items, Targets and Pairing are set for matching questions.
	// Pairing maps each item ID to the ID of its correct target.
	Items   []Item
	Targets []Item
	Pairing map[string]string

	// Explanation is optional text shown once the question is answered.
	Explanation string
}

// Clone returns a deep copy so callers can't reach into bank storage.
func (q Question) Clone() Question {
	c := q
	c.Options = slices.Clone(q.Options)
	c.Items = slices.Clone(q.Items)
	c.Targets = slices.Clone(q.Targets)
	if q.Pairing != nil {
		c.Pairing = make(map[string]string, len(q.Pairing))
		for k, v := range q.Pairing {
			c.Pairing[k] = v
		}
	}
	return c
}

// ItemContent returns the display content of the item with the given ID.
func (q Question) ItemContent(id string) string {
	for _, it := range q.Items {
		if it.ID == id {
			return it.Content
		}
	}
	return ""
}

// TargetContent returns the display content of the target with the given ID.
func (q Question) TargetContent(id string) string {
	for _, t := range q.Targets {
		if t.ID == id {
			return t.Content
		}
	}
	return ""
}
