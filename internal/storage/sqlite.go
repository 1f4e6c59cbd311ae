// Package storage provides SQLite-based persistence for recorded flappy runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a finished game together with everything needed to replay it.
type Run struct {
	ID         int64
	Source     string // "play", "ssh:<user>", "sim"
	Seed       int64
	Score      int
	Ticks      uint64
	ConfigYAML string
	Trace      flappy.Trace
	CreatedAt  time.Time
}

// RunSummary is a run without its trace, for listings.
type RunSummary struct {
	ID        int64
	Source    string
	Seed      int64
	Score     int
	Ticks     uint64
	Frames    int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all stored runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
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
			source TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			trace_json TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	traceJSON, err := json.Marshal(r.Trace)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode trace: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (source, seed, score, ticks, frames, config_yaml, trace_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Seed, r.Score, int64(r.Ticks), len(r.Trace.Frames), r.ConfigYAML, string(traceJSON),
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

// GetRun retrieves a run with its trace. Returns nil if no such run exists.
func (s *Store) GetRun(id int64) (*Run, error) {
	var (
		r         Run
		ticks     int64
		traceJSON string
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT id, source, seed, score, ticks, config_yaml, trace_json, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Source, &r.Seed, &r.Score, &ticks, &r.ConfigYAML, &traceJSON, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if err := json.Unmarshal([]byte(traceJSON), &r.Trace); err != nil {
		return nil, fmt.Errorf("storage: run %d has a corrupt trace: %w", id, err)
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)

	return &r, nil
}

// RecentRuns lists the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	return s.listRuns("ORDER BY created_at DESC, id DESC", limit)
}

// TopRuns lists the best runs by score.
func (s *Store) TopRuns(limit int) ([]RunSummary, error) {
	return s.listRuns("ORDER BY score DESC, id ASC", limit)
}

func (s *Store) listRuns(order string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, seed, score, ticks, frames, created_at
		 FROM runs `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			r         RunSummary
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.Seed, &r.Score, &ticks, &r.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best stored score, or 0 if there are no runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// DeleteRun removes a run. Deleting a missing run is not an error.
func (s *Store) DeleteRun(id int64) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics over all runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
