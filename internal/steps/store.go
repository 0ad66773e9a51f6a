// Package steps keeps a per-day step count in SQLite and serves it to the
// face as the step-count data source.
package steps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dayLayout = "2006-01-02"

var ErrNegativeCount = errors.New("steps: count must not be negative")

// Source reports the number of steps taken on the day of now.
type Source interface {
	StepsToday(ctx context.Context, now time.Time) (int, error)
}

// Static is a Source that always reports the same count.
type Static int

func (s Static) StepsToday(context.Context, time.Time) (int, error) { return int(s), nil }

// Day is the total for one calendar day.
type Day struct {
	Date  string
	Steps int
}

// Store is an SQLite-backed Source.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens the database at path, creating parent directories and the
// schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.conn.Close() }

func (s *Store) Path() string { return s.path }

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS samples (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day TEXT NOT NULL,
			recorded_at INTEGER NOT NULL,
			count INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_samples_day ON samples(day);
	`)
	if err != nil {
		return fmt.Errorf("create samples table: %w", err)
	}
	return nil
}

// Add records count steps taken at the given time.
func (s *Store) Add(ctx context.Context, at time.Time, count int) error {
	if count < 0 {
		return ErrNegativeCount
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO samples (day, recorded_at, count) VALUES (?, ?, ?)`,
		at.Format(dayLayout), at.Unix(), count)
	if err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

func (s *Store) StepsToday(ctx context.Context, now time.Time) (int, error) {
	var total int
	row := s.conn.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(count), 0) FROM samples WHERE day = ?`, now.Format(dayLayout))
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("sum steps: %w", err)
	}
	return total, nil
}

// History returns one entry per day for the n days ending on the day of now,
// oldest first. Days without samples report zero.
func (s *Store) History(ctx context.Context, now time.Time, n int) ([]Day, error) {
	if n <= 0 {
		return nil, nil
	}
	first := now.AddDate(0, 0, -(n - 1))

	rows, err := s.conn.QueryContext(ctx,
		`SELECT day, SUM(count) FROM samples WHERE day >= ? AND day <= ? GROUP BY day`,
		first.Format(dayLayout), now.Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var day string
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		totals[day] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	days := make([]Day, n)
	for i := range days {
		d := first.AddDate(0, 0, i).Format(dayLayout)
		days[i] = Day{Date: d, Steps: totals[d]}
	}
	return days, nil
}
