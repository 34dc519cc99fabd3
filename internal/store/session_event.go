package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo on the attempt-log tables.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" || data.Action == "" {
		return fmt.Errorf("save session event: session ID and action are required")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	score := data.Score
	if score == "" {
		score = "0"
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO session_events
		(sequence, timestamp_ms, session_id, action, player, bank_title, question_count,
		 answered, score, score_value, total_possible, percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.Player, data.BankTitle,
		data.QuestionCount, data.Answered, score, data.ScoreValue, data.TotalPossible, data.Percentage,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO answer_events
		(sequence, timestamp_ms, session_id, question_id, kind, answer, awarded, awarded_value, full_credit, time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.QuestionID, data.Kind, data.Answer,
		data.Awarded, data.AwardedValue, data.FullCredit, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	limit := -1
	if opts.Limit > 0 {
		limit = opts.Limit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.session_id, s.player, s.bank_title, s.question_count, s.timestamp_ms,
		       e.action, e.timestamp_ms, e.score, e.total_possible, e.percentage,
		       (SELECT COUNT(*) FROM answer_events a WHERE a.session_id = s.session_id)
		FROM session_events s
		LEFT JOIN session_events e
		       ON e.session_id = s.session_id AND e.action IN (?, ?)
		WHERE s.action = ?
		ORDER BY s.sequence DESC
		LIMIT ?`,
		ActionFinish, ActionAbandon, ActionStart, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var (
			rec       SessionSummaryRecord
			startedMs int64
			outcome   sql.NullString
			endedMs   sql.NullInt64
			score     sql.NullString
			total     sql.NullInt64
			pct       sql.NullInt64
		)
		if err := rows.Scan(&rec.SessionID, &rec.Player, &rec.BankTitle, &rec.QuestionCount, &startedMs,
			&outcome, &endedMs, &score, &total, &pct, &rec.Answered); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.StartedAt = time.UnixMilli(startedMs)
		rec.Outcome = outcome.String
		if endedMs.Valid {
			rec.EndedAt = time.UnixMilli(endedMs.Int64)
		}
		rec.Score = score.String
		if rec.Score == "" {
			rec.Score = "0"
		}
		rec.TotalPossible = int(total.Int64)
		rec.Percentage = int(pct.Int64)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, timestamp_ms, session_id, question_id, kind, answer,
		       awarded, awarded_value, full_credit, time_ms
		FROM answer_events
		WHERE session_id = ?
		ORDER BY sequence`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var records []AnswerEventRecord
	for rows.Next() {
		var (
			rec  AnswerEventRecord
			tsMs int64
		)
		if err := rows.Scan(&rec.Sequence, &tsMs, &rec.SessionID, &rec.QuestionID, &rec.Kind, &rec.Answer,
			&rec.Awarded, &rec.AwardedValue, &rec.FullCredit, &rec.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(tsMs)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return records, nil
}
