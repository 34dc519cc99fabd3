package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/abhisek/quizline/internal/scoring"
	"github.com/abhisek/quizline/internal/session"
)

// Recorder writes a session's lifecycle into the attempt log. Write failures
// are logged and swallowed: the log is a history, never a gate on the quiz.
// A Recorder with a nil repo records nothing.
type Recorder struct {
	repo   EventRepo
	player string
	log    zerolog.Logger
}

// NewRecorder creates a Recorder for the given player.
func NewRecorder(repo EventRepo, player string, log zerolog.Logger) *Recorder {
	return &Recorder{repo: repo, player: player, log: log}
}

// Start records that s has begun.
func (r *Recorder) Start(ctx context.Context, s *session.Session) {
	if r == nil || r.repo == nil {
		return
	}
	err := r.repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     s.ID(),
		Action:        ActionStart,
		Player:        r.player,
		BankTitle:     s.BankTitle(),
		QuestionCount: s.QuestionCount(),
	})
	r.check(err, s, "start")
}

// Answer records the stored answer for questionID.
func (r *Recorder) Answer(ctx context.Context, s *session.Session, questionID int) {
	if r == nil || r.repo == nil {
		return
	}
	rec, ok := s.Answer(questionID)
	if !ok {
		r.log.Warn().Str("session_id", s.ID()).Int("question_id", questionID).
			Msg("no stored answer to record")
		return
	}

	encoded, err := json.Marshal(rec.Answer)
	if err != nil {
		r.check(err, s, "encode answer")
		return
	}

	var full bool
	for _, q := range s.Questions() {
		if q.ID == questionID {
			full = rec.Awarded.Cmp(scoring.MaxPoints(q)) == 0
			break
		}
	}

	err = r.repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:    s.ID(),
		QuestionID:   questionID,
		Kind:         string(rec.Answer.Kind()),
		Answer:       string(encoded),
		Awarded:      rec.Awarded.RatString(),
		AwardedValue: scoring.Float(rec.Awarded),
		FullCredit:   full,
		TimeMs:       rec.Elapsed.Milliseconds(),
	})
	r.check(err, s, "answer")
}

// Finish records a completed session's result.
func (r *Recorder) Finish(ctx context.Context, s *session.Session) {
	r.end(ctx, s, ActionFinish)
}

// Abandon records that the player left s before finishing.
func (r *Recorder) Abandon(ctx context.Context, s *session.Session) {
	r.end(ctx, s, ActionAbandon)
}

func (r *Recorder) end(ctx context.Context, s *session.Session, action string) {
	if r == nil || r.repo == nil {
		return
	}
	p := s.Progress()
	err := r.repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     s.ID(),
		Action:        action,
		Player:        r.player,
		BankTitle:     s.BankTitle(),
		QuestionCount: p.QuestionCount,
		Answered:      p.Answered,
		Score:         p.Score.RatString(),
		ScoreValue:    scoring.Float(p.Score),
		TotalPossible: p.TotalPossible,
		Percentage:    scoring.Percentage(p.Score, p.TotalPossible),
	})
	r.check(err, s, action)
}

func (r *Recorder) check(err error, s *session.Session, event string) {
	if err == nil {
		return
	}
	r.log.Warn().Err(err).Str("session_id", s.ID()).Str("event", event).
		Msg("failed to record attempt event")
}
