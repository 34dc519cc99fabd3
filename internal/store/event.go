package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// schema is the attempt log. Every event row carries a global sequence
// number so start, answer and finish events interleave in a single order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS session_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		timestamp_ms   INTEGER NOT NULL,
		session_id     TEXT    NOT NULL,
		action         TEXT    NOT NULL,
		player         TEXT    NOT NULL DEFAULT '',
		bank_title     TEXT    NOT NULL DEFAULT '',
		question_count INTEGER NOT NULL DEFAULT 0,
		answered       INTEGER NOT NULL DEFAULT 0,
		score          TEXT    NOT NULL DEFAULT '0',
		score_value    REAL    NOT NULL DEFAULT 0,
		total_possible INTEGER NOT NULL DEFAULT 0,
		percentage     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events (session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_session_events_action ON session_events (action)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp_ms  INTEGER NOT NULL,
		session_id    TEXT    NOT NULL,
		question_id   INTEGER NOT NULL,
		kind          TEXT    NOT NULL,
		answer        TEXT    NOT NULL,
		awarded       TEXT    NOT NULL,
		awarded_value REAL    NOT NULL,
		full_credit   INTEGER NOT NULL,
		time_ms       INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events (session_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// sequenceCounter manages the global monotonic sequence number shared across
// event tables. Per-table auto-increment IDs can't order a session's answer
// events against its start and finish events; this counter can.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
