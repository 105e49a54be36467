// Package sqlite provides SQLite-backed persistence for review run
// audit history.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS review_runs (
	id          TEXT PRIMARY KEY,
	report      TEXT NOT NULL,
	raw_output  TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_review_runs_created_at ON review_runs(created_at);
`

// ReportStore persists review runs in a local SQLite database.
type ReportStore struct {
	db   *sql.DB
	path string
}

// NewReportStore opens (and if needed creates) the run database.
// If dataDir is empty, defaults to ~/.adgm-agent/data/runs.db.
func NewReportStore(dataDir string) (*ReportStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".adgm-agent", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &ReportStore{db: db, path: dbPath}, nil
}

// SaveRun stores a completed review run.
func (s *ReportStore) SaveRun(ctx context.Context, run *domain.ReportRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	reportJSON, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO review_runs (id, report, raw_output, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, string(reportJSON), run.RawOracleOutput, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *ReportStore) GetRun(ctx context.Context, id string) (*domain.ReportRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, report, raw_output, created_at FROM review_runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: run %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns stored runs, most recent first.
func (s *ReportStore) ListRuns(ctx context.Context, limit int) ([]domain.ReportRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, report, raw_output, created_at FROM review_runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ReportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Path returns the database file path.
func (s *ReportStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *ReportStore) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.ReportRun, error) {
	var run domain.ReportRun
	var reportJSON string
	if err := sc.Scan(&run.ID, &reportJSON, &run.RawOracleOutput, &run.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(reportJSON), &run.Report); err != nil {
		return nil, fmt.Errorf("decode report for run %s: %w", run.ID, err)
	}
	return &run, nil
}
