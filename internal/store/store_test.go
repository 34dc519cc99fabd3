package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Errorf("sequence %d after %d, want increasing", n, prev)
		}
		prev = n
	}
	if prev != 5 {
		t.Errorf("last sequence = %d, want 5", prev)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: ActionStart, BankTitle: "Bank",
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	recs, err := s.EventRepo().QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "s1", recs[0].SessionID)

	// The counter resumes instead of reusing sequence 1.
	n, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestAppendSessionEventRequiresIDs(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	err := repo.AppendSessionEvent(context.Background(), SessionEventData{Action: ActionStart})
	assert.Error(t, err)
}

func TestSessionSummaries(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", Action: ActionStart, Player: "ann", BankTitle: "B", QuestionCount: 2},
		{SessionID: "a", Action: ActionFinish, Player: "ann", BankTitle: "B", QuestionCount: 2,
			Answered: 2, Score: "25", ScoreValue: 25, TotalPossible: 30, Percentage: 83},
		{SessionID: "b", Action: ActionStart, Player: "bob", BankTitle: "B", QuestionCount: 2},
		{SessionID: "b", Action: ActionAbandon, Player: "bob", BankTitle: "B", QuestionCount: 2,
			Answered: 1, Score: "10", ScoreValue: 10, TotalPossible: 30, Percentage: 33},
		{SessionID: "c", Action: ActionStart, Player: "cy", BankTitle: "B", QuestionCount: 2},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendSessionEvent(ctx, e))
	}

	recs, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first.
	assert.Equal(t, "c", recs[0].SessionID)
	assert.Equal(t, "", recs[0].Outcome)
	assert.Equal(t, "0", recs[0].Score)

	assert.Equal(t, "b", recs[1].SessionID)
	assert.Equal(t, ActionAbandon, recs[1].Outcome)
	assert.Equal(t, 33, recs[1].Percentage)

	assert.Equal(t, "a", recs[2].SessionID)
	assert.Equal(t, "ann", recs[2].Player)
	assert.Equal(t, ActionFinish, recs[2].Outcome)
	assert.Equal(t, "25", recs[2].Score)
	assert.Equal(t, 30, recs[2].TotalPossible)
	assert.Equal(t, 83, recs[2].Percentage)
	assert.False(t, recs[2].EndedAt.IsZero())

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].SessionID)
}

func TestRecorderRoundTrip(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()
	rec := NewRecorder(repo, "ada", zerolog.Nop())

	s := session.New(bank.Default())
	rec.Start(ctx, s)

	_, err := s.Submit(1, quiz.MultipleChoiceAnswer{Option: "It provides energy to make food"})
	require.NoError(t, err)
	rec.Answer(ctx, s, 1)

	_, err = s.Submit(2, quiz.MatchingAnswer{Assignments: []quiz.Assignment{
		{ItemID: "variable", TargetID: "variable-def"},
		{ItemID: "constant", TargetID: "constant-def"},
		{ItemID: "coefficient", TargetID: "coefficient-def"},
	}})
	require.NoError(t, err)
	rec.Answer(ctx, s, 2)

	_, err = s.Finish()
	require.NoError(t, err)
	rec.Finish(ctx, s)

	answers, err := repo.QueryAnswerEvents(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, answers, 2)

	assert.Equal(t, 1, answers[0].QuestionID)
	assert.Equal(t, "multiple_choice", answers[0].Kind)
	assert.Equal(t, "10", answers[0].Awarded)
	assert.True(t, answers[0].FullCredit)

	assert.Equal(t, 2, answers[1].QuestionID)
	assert.Equal(t, "15", answers[1].Awarded)
	assert.False(t, answers[1].FullCredit)
	assert.Less(t, answers[0].Sequence, answers[1].Sequence)

	var stored quiz.MatchingAnswer
	require.NoError(t, json.Unmarshal([]byte(answers[1].Answer), &stored))
	assert.Len(t, stored.Assignments, 3)

	recs, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ada", recs[0].Player)
	assert.Equal(t, ActionFinish, recs[0].Outcome)
	assert.Equal(t, 2, recs[0].Answered)
	assert.Equal(t, "25", recs[0].Score)
	assert.Equal(t, 83, recs[0].Percentage)
}

type failingRepo struct{ EventRepo }

func (failingRepo) AppendSessionEvent(context.Context, SessionEventData) error {
	return errors.New("disk full")
}

func TestRecorderSwallowsWriteFailures(t *testing.T) {
	rec := NewRecorder(failingRepo{}, "ada", zerolog.Nop())
	s := session.New(bank.Default())

	// Must not panic or block.
	rec.Start(context.Background(), s)
	rec.Abandon(context.Background(), s)

	var nilRec *Recorder
	nilRec.Start(context.Background(), s)
}
