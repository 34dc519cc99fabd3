package scoring

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/abhisek/quizline/internal/match"
	"github.com/abhisek/quizline/internal/quiz"
)

// ErrAnswerKindMismatch is returned when an answer's shape doesn't fit the
// question it was submitted for.
var ErrAnswerKindMismatch = errors.New("answer kind does not match question kind")

// Score returns the points awarded for answering q with ans. It never
// returns a negative value and has no side effects.
func Score(q quiz.Question, ans quiz.Answer) (*big.Rat, error) {
	switch q.Kind {
	case quiz.KindMultipleChoice:
		mc, ok := asMultipleChoice(ans)
		if !ok {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrAnswerKindMismatch)
		}
		return scoreMultipleChoice(q, mc), nil

	case quiz.KindMatching:
		ma, ok := asMatching(ans)
		if !ok {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrAnswerKindMismatch)
		}
		return scoreMatching(q, ma)
	}
	return nil, fmt.Errorf("question %d has unknown kind %q: %w", q.ID, q.Kind, quiz.ErrInvalidQuestion)
}

// scoreMultipleChoice awards all points or none. No partial credit.
func scoreMultipleChoice(q quiz.Question, ans quiz.MultipleChoiceAnswer) *big.Rat {
	if ans.Option == q.CorrectOption {
		return big.NewRat(int64(q.Points), 1)
	}
	return new(big.Rat)
}

// scoreMatching awards points × correct/items, always a multiple of
// points/items.
func scoreMatching(q quiz.Question, ans quiz.MatchingAnswer) (*big.Rat, error) {
	n := len(q.Items)
	if n == 0 {
		return nil, fmt.Errorf("question %d has no items: %w", q.ID, quiz.ErrInvalidQuestion)
	}
	correct := match.CorrectCountFor(q, ans.Assignments)
	return big.NewRat(int64(q.Points)*int64(correct), int64(n)), nil
}

func asMultipleChoice(ans quiz.Answer) (quiz.MultipleChoiceAnswer, bool) {
	switch v := ans.(type) {
	case quiz.MultipleChoiceAnswer:
		return v, true
	case *quiz.MultipleChoiceAnswer:
		if v != nil {
			return *v, true
		}
	}
	return quiz.MultipleChoiceAnswer{}, false
}

func asMatching(ans quiz.Answer) (quiz.MatchingAnswer, bool) {
	switch v := ans.(type) {
	case quiz.MatchingAnswer:
		return v, true
	case *quiz.MatchingAnswer:
		if v != nil {
			return *v, true
		}
	}
	return quiz.MatchingAnswer{}, false
}

// MaxPoints returns the points a fully correct answer would earn.
func MaxPoints(q quiz.Question) *big.Rat {
	return big.NewRat(int64(q.Points), 1)
}
