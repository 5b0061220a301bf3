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

// Store manages the run ledger backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one item outcome and returns its row id.
func (s *Store) Record(ctx context.Context, entry Entry) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO history_items (
            run_id, item, kind, status, parts_completed, parts_total,
            output_path, archive_path, error, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Item,
		entry.Kind,
		entry.Status,
		entry.PartsCompleted,
		entry.PartsTotal,
		entry.OutputPath,
		entry.ArchivePath,
		entry.Error,
		entry.StartedAt.UTC().Format(time.RFC3339Nano),
		entry.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert history entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, most recently finished first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, item, kind, status, parts_completed, parts_total,
                output_path, archive_path, error, started_at, finished_at
           FROM history_items
          ORDER BY finished_at DESC, id DESC
          LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// RunEntries returns every entry recorded for one run in insertion order.
func (s *Store) RunEntries(ctx context.Context, runID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, item, kind, status, parts_completed, parts_total,
                output_path, archive_path, error, started_at, finished_at
           FROM history_items
          WHERE run_id = ?
          ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var entry Entry
	var started, finished string
	if err := rows.Scan(
		&entry.ID,
		&entry.RunID,
		&entry.Item,
		&entry.Kind,
		&entry.Status,
		&entry.PartsCompleted,
		&entry.PartsTotal,
		&entry.OutputPath,
		&entry.ArchivePath,
		&entry.Error,
		&started,
		&finished,
	); err != nil {
		return Entry{}, fmt.Errorf("scan history entry: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, started); err == nil {
		entry.StartedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339Nano, finished); err == nil {
		entry.FinishedAt = ts
	}
	return entry, nil
}
