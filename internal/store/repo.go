package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart   = "start"
	ActionFinish  = "finish"
	ActionAbandon = "abandon"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string
	Player        string
	BankTitle     string
	QuestionCount int

	// Set on finish and abandon only.
	Answered      int
	Score         string // exact rational, e.g. "25" or "20/3"
	ScoreValue    float64
	TotalPossible int
	Percentage    int
}

// AnswerEventData captures one accepted answer.
type AnswerEventData struct {
	SessionID    string
	QuestionID   int
	Kind         string
	Answer       string // JSON encoding of the submitted answer
	Awarded      string // exact rational
	AwardedValue float64
	FullCredit   bool
	TimeMs       int64
}

// SessionSummaryRecord is one row of the attempt history.
type SessionSummaryRecord struct {
	SessionID     string
	Player        string
	BankTitle     string
	QuestionCount int
	StartedAt     time.Time

	// Outcome is ActionFinish, ActionAbandon, or empty if the process
	// exited before either was recorded.
	Outcome       string
	EndedAt       time.Time
	Answered      int
	Score         string
	TotalPossible int
	Percentage    int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// EventRepo provides append and query access to the attempt log.
type EventRepo interface {
	// AppendSessionEvent records a session start, finish or abandon.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an accepted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionSummaries returns attempts, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryAnswerEvents returns a session's answers in sequence order.
	QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)
}
