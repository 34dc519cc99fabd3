package session

import (
	"errors"
	"math/big"
	"time"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/scoring"
)

var (
	// ErrAlreadyAnswered is returned when an answer is submitted for a
	// question that already has one. The score is left unchanged.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrNotCurrentQuestion is returned when an answer targets a question
	// the session hasn't reached yet.
	ErrNotCurrentQuestion = errors.New("question is not the current question")

	// ErrIncompleteQuiz is returned by Finish while questions remain unanswered.
	ErrIncompleteQuiz = errors.New("quiz has unanswered questions")

	// ErrAlreadyCompleted is returned by operations that change a finished session.
	ErrAlreadyCompleted = errors.New("quiz already completed")

	// ErrSessionCompleted is returned when asking for the current question
	// of a finished session.
	ErrSessionCompleted = errors.New("session completed")
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseInProgress Phase = iota // Answering questions, or waiting for Finish
	PhaseCompleted               // Finish accepted; terminal
)

func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "in_progress"
}

// State is the state machine position after an operation.
type State struct {
	Phase Phase

	// CurrentIndex is meaningful only while in progress.
	CurrentIndex int

	// AwaitingFinish is true once the last question has been answered and
	// the session is waiting for an explicit Finish.
	AwaitingFinish bool
}

// AnswerRecord is a stored answer. Records are never mutated once stored.
type AnswerRecord struct {
	QuestionID int
	Answer     quiz.Answer
	Awarded    *big.Rat
	AnsweredAt time.Time

	// Elapsed is the time between the question becoming current and the
	// answer arriving.
	Elapsed time.Duration
}

// SubmitResult is returned by a successful Submit.
type SubmitResult struct {
	QuestionID int

	// Delta is the score added by this answer.
	Delta *big.Rat

	// FullCredit is true when Delta equals the question's points.
	FullCredit bool

	State State
}

// Progress is a live view of the score for progress bars.
type Progress struct {
	Score         *big.Rat
	TotalPossible int
	Answered      int
	QuestionCount int
}

// Fraction returns Score/TotalPossible in [0, 1].
func (p Progress) Fraction() float64 {
	return scoring.Fraction(p.Score, p.TotalPossible)
}

// Result is the outcome of a finished session.
type Result struct {
	FinalScore    *big.Rat
	TotalPossible int
	Percentage    int
}
