// Copyright Kieran C., 2026. All rights reserved.

// Package history persists a log of conversion runs in a local SQLite
// database so past migrations and their problem counts can be reviewed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

const dbFile = "runs.db"

const defaultMaxList = 20

// Run is one recorded conversion.
type Run struct {
	ID         string
	StartedAt  time.Time
	InputFile  string
	OutputFile string
	NotesFile  string
	Format     types.OutputFormat
	Vault      string
	Summary    types.Summary
}

// Store manages the run-log SQLite database.
type Store struct {
	db      *sql.DB
	maxList int
}

// NewStore opens or creates the run log at cfg.Dir/runs.db, creating the
// schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid history config: %w", err)
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = defaultMaxList
	}

	s := &Store{db: db, maxList: maxList}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		input_file TEXT NOT NULL,
		output_file TEXT NOT NULL,
		notes_file TEXT,
		format TEXT NOT NULL,
		vault TEXT,
		total_rows INTEGER NOT NULL,
		login_rows INTEGER NOT NULL,
		note_rows INTEGER NOT NULL,
		password_cleaned INTEGER NOT NULL,
		problem_rows INTEGER NOT NULL,
		dropped_partial INTEGER NOT NULL,
		truncated_logins INTEGER NOT NULL
	)`)
	return err
}

// Record inserts one run into the log.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input_file, output_file, notes_file,
			format, vault, total_rows, login_rows, note_rows,
			password_cleaned, problem_rows, dropped_partial, truncated_logins)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.InputFile,
		run.OutputFile, run.NotesFile, string(run.Format), run.Vault,
		run.Summary.TotalRows, run.Summary.LoginRows, run.Summary.NoteRows,
		run.Summary.PasswordCleaned, run.Summary.ProblemRows,
		run.Summary.DroppedPartial, run.Summary.TruncatedLogins)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxList
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_file, output_file, notes_file, format, vault,
			total_rows, login_rows, note_rows, password_cleaned,
			problem_rows, dropped_partial, truncated_logins
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, input_file, output_file, notes_file, format, vault,
			total_rows, login_rows, note_rows, password_cleaned,
			problem_rows, dropped_partial, truncated_logins
		 FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (Run, error) {
	var run Run
	var startedAt, notesFile, vault sql.NullString
	var format string

	err := r.Scan(&run.ID, &startedAt, &run.InputFile, &run.OutputFile,
		&notesFile, &format, &vault,
		&run.Summary.TotalRows, &run.Summary.LoginRows, &run.Summary.NoteRows,
		&run.Summary.PasswordCleaned, &run.Summary.ProblemRows,
		&run.Summary.DroppedPartial, &run.Summary.TruncatedLogins)
	if err != nil {
		return Run{}, err
	}

	run.NotesFile = notesFile.String
	run.Vault = vault.String
	run.Format = types.OutputFormat(format)
	if startedAt.Valid {
		if t, perr := time.Parse(time.RFC3339, startedAt.String); perr == nil {
			run.StartedAt = t
		}
	}
	return run, nil
}
