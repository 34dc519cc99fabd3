package session

import (
	"math/big"
	"time"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/scoring"
)

// QuestionResult is one row of the results screen.
type QuestionResult struct {
	QuestionID int
	Kind       quiz.Kind
	Prompt     string
	Points     int
	Answered   bool
	Awarded    *big.Rat
	FullCredit bool
	Elapsed    time.Duration
}

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	SessionID     string
	BankTitle     string
	Duration      time.Duration
	Completed     bool
	Score         *big.Rat
	TotalPossible int
	Percentage    int
	FullCredit    int
	Results       []QuestionResult
}

// BuildSummary creates a SessionSummary from the session, in question order.
func BuildSummary(s *Session) *SessionSummary {
	end := s.finishedAt
	if end.IsZero() {
		end = s.now()
	}

	sum := &SessionSummary{
		SessionID:     s.id,
		BankTitle:     s.bank.Title(),
		Duration:      end.Sub(s.startedAt),
		Completed:     s.completed,
		Score:         new(big.Rat).Set(s.score),
		TotalPossible: s.bank.TotalPoints(),
		Percentage:    scoring.Percentage(s.score, s.bank.TotalPoints()),
	}

	for _, q := range s.bank.Questions() {
		r := QuestionResult{
			QuestionID: q.ID,
			Kind:       q.Kind,
			Prompt:     q.Prompt,
			Points:     q.Points,
			Awarded:    new(big.Rat),
		}
		if rec, ok := s.answers[q.ID]; ok {
			r.Answered = true
			r.Awarded.Set(rec.Awarded)
			r.FullCredit = rec.Awarded.Cmp(scoring.MaxPoints(q)) == 0
			r.Elapsed = rec.Elapsed
			if r.FullCredit {
				sum.FullCredit++
			}
		}
		sum.Results = append(sum.Results, r)
	}
	return sum
}
