// Package history keeps a queryable local record of past verification
// runs. Unlike the audit trail it carries no integrity chain; it exists so
// an operator can ask "what did we verify last week" without parsing JSONL.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one stored verification run.
type Record struct {
	RunID     string
	Mode      string
	Domain    string
	JobID     string
	ShareID   string
	PolicyID  string
	Outcome   string // "reported" or "fatal"
	Decision  string
	Reason    string
	CreatedAt time.Time
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	domain     TEXT NOT NULL,
	job_id     TEXT NOT NULL DEFAULT '',
	share_id   TEXT NOT NULL DEFAULT '',
	policy_id  TEXT NOT NULL DEFAULT '',
	outcome    TEXT NOT NULL,
	decision   TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, mode, domain, job_id, share_id, policy_id, outcome, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Mode, r.Domain, r.JobID, r.ShareID, r.PolicyID, r.Outcome, r.Decision, r.Reason,
		r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, mode, domain, job_id, share_id, policy_id, outcome, decision, reason, created_at
		 FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Mode, &r.Domain, &r.JobID, &r.ShareID, &r.PolicyID,
			&r.Outcome, &r.Decision, &r.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return records, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
