// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/minstohours/internal/reading"
)

// timeLayout is fixed-width so created_at sorts lexically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite implements reading.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// RecordReading stores a reading and sets its ID.
func (s *SQLite) RecordReading(ctx context.Context, r *reading.Reading) error {
	if r.Source == "" {
		return reading.ErrEmptySource
	}
	if !r.Source.Valid() {
		return reading.ErrInvalidSource
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `INSERT INTO readings (source, input, output, created_at) VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		r.Source,
		r.Input,
		r.Output,
		formatTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	r.ID = id
	r.CreatedAt = createdAt

	return nil
}

// ListReadings returns the most recent readings, newest first.
func (s *SQLite) ListReadings(ctx context.Context, limit int) ([]*reading.Reading, error) {
	query := `
		SELECT id, source, input, output, created_at
		FROM readings
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var readings []*reading.Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}

	return readings, nil
}

// LatestReading returns the newest reading for a source, or nil if there is none.
func (s *SQLite) LatestReading(ctx context.Context, source reading.Source) (*reading.Reading, error) {
	query := `
		SELECT id, source, input, output, created_at
		FROM readings
		WHERE source = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	r, err := scanReading(s.db.QueryRowContext(ctx, query, source))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// PruneReadings deletes readings created before the given time.
func (s *SQLite) PruneReadings(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE created_at < ?`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("pruning readings: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(row scanner) (*reading.Reading, error) {
	var (
		r         reading.Reading
		createdAt string
	)

	err := row.Scan(&r.ID, &r.Source, &r.Input, &r.Output, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning reading: %w", err)
	}

	r.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &r, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
