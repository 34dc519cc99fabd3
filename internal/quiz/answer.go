package quiz

// Answer is a learner's response to one question. The concrete type must
// match the question's Kind.
type Answer interface {
	Kind() Kind
}

// MultipleChoiceAnswer holds the selected option text.
type MultipleChoiceAnswer struct {
	Option string `json:"option"`
}

func (MultipleChoiceAnswer) Kind() Kind { return KindMultipleChoice }

// Assignment places one item on one target.
type Assignment struct {
	ItemID   string `json:"item_id"`
	TargetID string `json:"target_id"`
}

// MatchingAnswer holds assignments in the order the learner made them.
// Later assignments replace earlier ones sharing an item or a target.
type MatchingAnswer struct {
	Assignments []Assignment `json:"assignments"`
}

func (MatchingAnswer) Kind() Kind { return KindMatching }
