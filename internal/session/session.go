package session

import (
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/scoring"
)

// Session is one attempt at a bank's fixed question sequence. It is driven
// by a single caller and holds no external resources; abandon it by
// dropping the reference.
type Session struct {
	id    string
	bank  *bank.Bank
	now   func() time.Time
	index int
	score *big.Rat

	answers map[int]*AnswerRecord
	order   []int // question IDs in answering order

	completed  bool
	startedAt  time.Time
	shownAt    time.Time
	finishedAt time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session at the first question of b.
func New(b *bank.Bank, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New().String(),
		bank:    b,
		now:     time.Now,
		score:   new(big.Rat),
		answers: make(map[int]*AnswerRecord, b.Len()),
	}
	for _, o := range opts {
		o(s)
	}
	s.startedAt = s.now()
	s.shownAt = s.startedAt
	return s
}

// ID returns the session's unique ID.
func (s *Session) ID() string { return s.id }

// BankTitle returns the title of the bank being answered.
func (s *Session) BankTitle() string { return s.bank.Title() }

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// FinishedAt returns when Finish succeeded, or the zero time.
func (s *Session) FinishedAt() time.Time { return s.finishedAt }

// Questions returns the ordered question list.
func (s *Session) Questions() []quiz.Question {
	return s.bank.Questions()
}

// QuestionCount returns the number of questions in the session.
func (s *Session) QuestionCount() int {
	return s.bank.Len()
}

// State returns the current state machine position.
func (s *Session) State() State {
	if s.completed {
		return State{Phase: PhaseCompleted, CurrentIndex: s.index}
	}
	return State{
		Phase:          PhaseInProgress,
		CurrentIndex:   s.index,
		AwaitingFinish: s.allAnswered(),
	}
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() (quiz.Question, error) {
	if s.completed {
		return quiz.Question{}, ErrSessionCompleted
	}
	return s.bank.At(s.index), nil
}

// Submit records an answer for the question with the given ID, which must
// be the current question. The awarded points are added to the score and
// the session advances, except after the last question where it waits for
// Finish.
func (s *Session) Submit(questionID int, ans quiz.Answer) (SubmitResult, error) {
	if s.completed {
		return SubmitResult{}, ErrAlreadyCompleted
	}
	if _, ok := s.answers[questionID]; ok {
		return SubmitResult{}, fmt.Errorf("question %d: %w", questionID, ErrAlreadyAnswered)
	}

	q := s.bank.At(s.index)
	if q.ID != questionID {
		return SubmitResult{}, fmt.Errorf("question %d (current is %d): %w", questionID, q.ID, ErrNotCurrentQuestion)
	}

	awarded, err := scoring.Score(q, ans)
	if err != nil {
		return SubmitResult{}, err
	}

	now := s.now()
	s.answers[q.ID] = &AnswerRecord{
		QuestionID: q.ID,
		Answer:     cloneAnswer(ans),
		Awarded:    awarded,
		AnsweredAt: now,
		Elapsed:    now.Sub(s.shownAt),
	}
	s.order = append(s.order, q.ID)
	s.score.Add(s.score, awarded)

	if s.index < s.bank.Len()-1 {
		s.index++
		s.shownAt = now
	}

	return SubmitResult{
		QuestionID: q.ID,
		Delta:      new(big.Rat).Set(awarded),
		FullCredit: awarded.Cmp(scoring.MaxPoints(q)) == 0,
		State:      s.State(),
	}, nil
}

// Finish completes the session once every question has an answer.
func (s *Session) Finish() (Result, error) {
	if s.completed {
		return Result{}, ErrAlreadyCompleted
	}
	if !s.allAnswered() {
		return Result{}, fmt.Errorf("%d of %d answered: %w", len(s.answers), s.bank.Len(), ErrIncompleteQuiz)
	}

	s.completed = true
	s.finishedAt = s.now()
	return s.result(), nil
}

// Result returns the final result of a completed session.
func (s *Session) Result() (Result, bool) {
	if !s.completed {
		return Result{}, false
	}
	return s.result(), true
}

func (s *Session) result() Result {
	total := s.bank.TotalPoints()
	return Result{
		FinalScore:    new(big.Rat).Set(s.score),
		TotalPossible: total,
		Percentage:    scoring.Percentage(s.score, total),
	}
}

// Progress returns the accumulated score and the total obtainable points.
// Valid in every state.
func (s *Session) Progress() Progress {
	return Progress{
		Score:         new(big.Rat).Set(s.score),
		TotalPossible: s.bank.TotalPoints(),
		Answered:      len(s.answers),
		QuestionCount: s.bank.Len(),
	}
}

// Answer returns the stored answer for a question so the caller can
// re-render it.
func (s *Session) Answer(questionID int) (AnswerRecord, bool) {
	rec, ok := s.answers[questionID]
	if !ok {
		return AnswerRecord{}, false
	}
	out := *rec
	out.Answer = cloneAnswer(rec.Answer)
	out.Awarded = new(big.Rat).Set(rec.Awarded)
	return out, true
}

// cloneAnswer returns a value copy of ans that shares no memory with it.
// Pointer answers are stored as values.
func cloneAnswer(ans quiz.Answer) quiz.Answer {
	switch a := ans.(type) {
	case *quiz.MultipleChoiceAnswer:
		return *a
	case quiz.MatchingAnswer:
		return quiz.MatchingAnswer{Assignments: slices.Clone(a.Assignments)}
	case *quiz.MatchingAnswer:
		return quiz.MatchingAnswer{Assignments: slices.Clone(a.Assignments)}
	}
	return ans
}

// AnsweredIDs returns question IDs in the order they were answered.
func (s *Session) AnsweredIDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Session) allAnswered() bool {
	return len(s.answers) == s.bank.Len()
}
