package bank

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/abhisek/quizline/internal/quiz"
)

// Bank is a validated, immutable, ordered sequence of questions.
type Bank struct {
	title     string
	questions []quiz.Question
	byID      map[int]int
	total     int
}

// New validates the questions and builds a bank ordered by question ID.
// Any structural problem yields an error wrapping quiz.ErrInvalidQuestion.
func New(title string, questions []quiz.Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	qs := make([]quiz.Question, len(questions))
	for i, q := range questions {
		qs[i] = q.Clone()
	}
	slices.SortStableFunc(qs, func(a, b quiz.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})

	b := &Bank{
		title:     title,
		questions: qs,
		byID:      make(map[int]int, len(qs)),
	}
	for i, q := range qs {
		b.byID[q.ID] = i
		b.total += q.Points
	}
	return b, nil
}

// MustNew is New that panics on error. Intended for seed data.
func MustNew(title string, questions []quiz.Question) *Bank {
	b, err := New(title, questions)
	if err != nil {
		panic(fmt.Sprintf("bank: %v", err))
	}
	return b
}

// Title returns the display title of the bank.
func (b *Bank) Title() string {
	return b.title
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a deep copy of the ordered question list.
func (b *Bank) Questions() []quiz.Question {
	out := make([]quiz.Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.Clone()
	}
	return out
}

// At returns a copy of the question at index i.
func (b *Bank) At(i int) quiz.Question {
	return b.questions[i].Clone()
}

// Get returns a copy of the question with the given ID.
func (b *Bank) Get(id int) (quiz.Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return quiz.Question{}, false
	}
	return b.questions[i].Clone(), true
}

// IndexOf returns the position of the question with the given ID, or -1.
func (b *Bank) IndexOf(id int) int {
	i, ok := b.byID[id]
	if !ok {
		return -1
	}
	return i
}

// TotalPoints returns the sum of points over all questions.
func (b *Bank) TotalPoints() int {
	return b.total
}
