// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists completed analysis runs in a SQLite database so
// earlier results can be listed and re-read. Persistence lives outside the
// pure pipeline; nothing here feeds back into analysis.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/corpus-audit/internal/pipeline"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			total_papers INTEGER NOT NULL,
			total_citations INTEGER NOT NULL,
			orphan_citations INTEGER NOT NULL,
			self_citations INTEGER NOT NULL,
			citation_rings INTEGER NOT NULL,
			temporal_anomalies INTEGER NOT NULL,
			affiliation_conflicts INTEGER NOT NULL,
			all_checks_passed INTEGER NOT NULL,
			report_json TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS checks (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			passed INTEGER NOT NULL,
			PRIMARY KEY (run_id, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_checks_run_id ON checks(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary is one row of the run history.
type RunSummary struct {
	ID                   int64     `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	TotalPapers          int       `json:"total_papers"`
	TotalCitations       int       `json:"total_citations"`
	OrphanCitations      int       `json:"orphan_citations"`
	SelfCitations        int       `json:"self_citations"`
	CitationRings        int       `json:"citation_rings"`
	TemporalAnomalies    int       `json:"temporal_anomalies"`
	AffiliationConflicts int       `json:"affiliation_conflicts"`
	AllChecksPassed      bool      `json:"all_checks_passed"`
}

// SaveRun persists one completed pipeline result and returns its run id.
func (s *Store) SaveRun(ctx context.Context, res *pipeline.Result) (int64, error) {
	reportJSON, err := json.Marshal(res.Report)
	if err != nil {
		return 0, fmt.Errorf("encoding report: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, total_papers, total_citations,
			orphan_citations, self_citations, citation_rings,
			temporal_anomalies, affiliation_conflicts,
			all_checks_passed, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		res.Summary.TotalPapers,
		res.Summary.TotalCitations,
		res.Summary.OrphanCitationCount,
		res.Summary.SelfCitationCount,
		res.Summary.CitationRingCount,
		res.Summary.TemporalAnomalyCount,
		res.Summary.AffiliationConflictCount,
		res.Report.ValidationSummary.AllChecksPassed,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for name, passed := range res.Checks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO checks (run_id, name, passed) VALUES (?, ?, ?)`,
			runID, name, passed,
		); err != nil {
			return 0, fmt.Errorf("inserting check %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the run history, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, total_papers, total_citations,
			orphan_citations, self_citations, citation_rings,
			temporal_anomalies, affiliation_conflicts, all_checks_passed
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.TotalPapers, &r.TotalCitations,
			&r.OrphanCitations, &r.SelfCitations, &r.CitationRings,
			&r.TemporalAnomalies, &r.AffiliationConflicts, &r.AllChecksPassed); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Report loads the stored report for one run.
func (s *Store) Report(ctx context.Context, runID int64) (types.Report, error) {
	var reportJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM runs WHERE id = ?`, runID,
	).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return types.Report{}, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return types.Report{}, fmt.Errorf("querying run %d: %w", runID, err)
	}

	var report types.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return types.Report{}, fmt.Errorf("decoding report for run %d: %w", runID, err)
	}
	return report, nil
}

// Checks loads the validation outcomes for one run.
func (s *Store) Checks(ctx context.Context, runID int64) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, passed FROM checks WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying checks for run %d: %w", runID, err)
	}
	defer rows.Close()

	checks := make(map[string]bool)
	for rows.Next() {
		var name string
		var passed bool
		if err := rows.Scan(&name, &passed); err != nil {
			return nil, fmt.Errorf("scanning check row: %w", err)
		}
		checks[name] = passed
	}
	return checks, rows.Err()
}
