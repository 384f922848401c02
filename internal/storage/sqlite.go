// Package storage provides SQLite-based persistence for recorded snake runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one journaled run as stored in the database.
type Run struct {
	ID            int64
	Variant       string
	Seed          int64
	Width         int
	Height        int
	Policy        string
	InitialLength int
	GrowthPerFood int
	SpawnAttempts int
	Inputs        string // Run-length encoded, see replay.EncodeInputs
	Score         int
	Ticks         uint64
	EndReason     string
	CreatedAt     time.Time
}

// Record converts the stored row back into a replayable record.
func (r Run) Record() (replay.Record, error) {
	policy, err := core.ParsePolicy(r.Policy)
	if err != nil {
		return replay.Record{}, fmt.Errorf("storage: run %d: %w", r.ID, err)
	}
	reason, err := core.ParseReason(r.EndReason)
	if err != nil {
		return replay.Record{}, fmt.Errorf("storage: run %d: %w", r.ID, err)
	}
	inputs, err := replay.DecodeInputs(r.Inputs)
	if err != nil {
		return replay.Record{}, fmt.Errorf("storage: run %d: %w", r.ID, err)
	}
	return replay.Record{
		Variant:       r.Variant,
		Seed:          r.Seed,
		Width:         r.Width,
		Height:        r.Height,
		Policy:        policy,
		InitialLength: r.InitialLength,
		GrowthPerFood: r.GrowthPerFood,
		SpawnAttempts: r.SpawnAttempts,
		Inputs:        inputs,
		Score:         r.Score,
		Ticks:         r.Ticks,
		Reason:        reason,
	}, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			policy TEXT NOT NULL,
			initial_length INTEGER NOT NULL,
			growth_per_food INTEGER NOT NULL DEFAULT 1,
			spawn_attempts INTEGER NOT NULL DEFAULT 0,
			inputs TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun journals a recorded run and returns its ID.
func (s *Store) SaveRun(rec replay.Record) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (variant, seed, width, height, policy, initial_length, growth_per_food, spawn_attempts,
		  inputs, score, ticks, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Variant,
		rec.Seed,
		rec.Width,
		rec.Height,
		rec.Policy.String(),
		rec.InitialLength,
		rec.GrowthPerFood,
		rec.SpawnAttempts,
		replay.EncodeInputs(rec.Inputs),
		rec.Score,
		int64(rec.Ticks),
		rec.Reason.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, variant, seed, width, height, policy, initial_length, growth_per_food,
	spawn_attempts, inputs, score, ticks, end_reason, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Variant,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.Policy,
		&r.InitialLength,
		&r.GrowthPerFood,
		&r.SpawnAttempts,
		&r.Inputs,
		&r.Score,
		&ticks,
		&r.EndReason,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty variant matches all variants.
func (s *Store) RecentRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs of the given variant, or every run when variant is empty.
// Returns the number of deleted rows.
func (s *Store) ClearRuns(variant string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}
