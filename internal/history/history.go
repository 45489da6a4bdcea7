// Package history keeps an append-only SQLite ledger of past check
// results. It is bookkeeping only: the ledger is written after reporting
// and never consulted while computing a severity.
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

const schema = `
CREATE TABLE IF NOT EXISTS checks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	service     TEXT    NOT NULL,
	endpoint    TEXT    NOT NULL,
	severity    INTEGER NOT NULL,
	message     TEXT    NOT NULL,
	duration_ms INTEGER NOT NULL,
	checked_at  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_checks_service_time ON checks(service, checked_at);
`

// Entry is one recorded check result.
type Entry struct {
	Service   string
	Endpoint  string
	Severity  int
	Message   string
	Duration  time.Duration
	CheckedAt time.Time
}

// Store wraps the SQLite ledger.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the ledger at the given path, creating the
// parent directory if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite works best with a single connection for writes
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the ledger.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one entry.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checks (service, endpoint, severity, message, duration_ms, checked_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Service, e.Endpoint, e.Severity, e.Message,
		e.Duration.Milliseconds(), e.CheckedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record check: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first. An empty service
// matches all services.
func (s *Store) Recent(ctx context.Context, service string, limit int) ([]Entry, error) {
	query := `SELECT service, endpoint, severity, message, duration_ms, checked_at
		FROM checks`
	args := []any{}
	if service != "" {
		query += ` WHERE service = ?`
		args = append(args, service)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		var checkedAt string
		if err := rows.Scan(&e.Service, &e.Endpoint, &e.Severity, &e.Message, &durationMs, &checkedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339Nano, checkedAt); err == nil {
			e.CheckedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
