// Package storage keeps a journal of finished runs in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
//
// The journal lives exactly as long as the process: nothing is written to
// disk, so best scores and history do not carry over between sessions.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Journal records finished runs for the current process.
type Journal struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

// RunEntry is one journaled run.
type RunEntry struct {
	ID      string // Random run identifier
	Session string // Identifier of the process that played the run
	core.RunSummary
	FinishedAt time.Time
}

// OpenJournal creates an empty in-memory journal with a fresh session ID.
func OpenJournal() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{
		db:      db,
		session: uuid.NewString(),
		now:     time.Now,
	}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			speed REAL NOT NULL,
			cause TEXT NOT NULL,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close releases the database. The journal's contents are gone afterwards.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Session returns the identifier shared by every run of this journal.
func (j *Journal) Session() string {
	return j.session
}

// Record appends a finished run and returns the stored entry.
func (j *Journal) Record(run core.RunSummary) (RunEntry, error) {
	entry := RunEntry{
		ID:         uuid.NewString(),
		Session:    j.session,
		RunSummary: run,
		FinishedAt: j.now(),
	}

	_, err := j.db.Exec(
		`INSERT INTO runs (run_id, session, seed, score, ticks, speed, cause, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Session, run.Seed, run.Score, run.Ticks, run.Speed, run.Cause,
		entry.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot record run: %w", err)
	}

	return entry, nil
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return j.query(
		`SELECT run_id, session, seed, score, ticks, speed, cause, finished_at
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
}

// Top returns up to limit runs ordered by score, longest-surviving first
// among equal scores.
func (j *Journal) Top(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return j.query(
		`SELECT run_id, session, seed, score, ticks, speed, cause, finished_at
		 FROM runs
		 ORDER BY score DESC, ticks DESC, seq ASC
		 LIMIT ?`,
		limit,
	)
}

func (j *Journal) query(q string, args ...any) ([]RunEntry, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var finishedAt int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Seed, &e.Score, &e.Ticks, &e.Speed, &e.Cause, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FinishedAt = time.UnixMilli(finishedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest journaled score, or 0 if nothing is recorded.
func (j *Journal) Best() (int, error) {
	var score sql.NullInt64
	err := j.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns the number of journaled runs.
func (j *Journal) Count() (int, error) {
	var n int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// CauseCounts returns how many runs ended for each cause.
func (j *Journal) CauseCounts() (map[string]int, error) {
	rows, err := j.db.Query("SELECT cause, COUNT(*) FROM runs GROUP BY cause")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query causes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[cause] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}
