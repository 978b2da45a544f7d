// Package history records finished reading runs in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	text_id     INTEGER NOT NULL,
	title       TEXT    NOT NULL,
	mode        TEXT    NOT NULL,
	speed       INTEGER NOT NULL,
	units       INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_finished_at ON runs (finished_at);
`

// Run is one text read to the end.
type Run struct {
	ID         int64
	TextID     int
	Title      string
	Mode       string
	Speed      int // Units per minute
	Units      int // Words or characters read
	FinishedAt time.Time
}

// Duration is the nominal reading time of the run.
func (r Run) Duration() time.Duration {
	if r.Speed <= 0 {
		return 0
	}
	return time.Duration(r.Units) * time.Minute / time.Duration(r.Speed)
}

// Stats summarises all recorded runs.
type Stats struct {
	Runs     int
	Units    int
	MaxSpeed int
	AvgSpeed float64
}

// Store is a history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a finished run. A zero FinishedAt is set to now.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (text_id, title, mode, speed, units, finished_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.TextID, r.Title, r.Mode, r.Speed, r.Units, r.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}

	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text_id, title, mode, speed, units, finished_at
		 FROM runs ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished int64
		if err := rows.Scan(&r.ID, &r.TextID, &r.Title, &r.Mode, &r.Speed, &r.Units, &finished); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.FinishedAt = time.UnixMilli(finished)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Stats returns totals over all runs.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(units), 0), COALESCE(MAX(speed), 0), AVG(speed) FROM runs`,
	).Scan(&st.Runs, &st.Units, &st.MaxSpeed, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("querying stats: %w", err)
	}
	st.AvgSpeed = avg.Float64

	return st, nil
}
