// Package store handles SQLite persistence of fetched days.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/sholat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the fetch archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS days (
			id INTEGER PRIMARY KEY,
			fetched_at TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			readable TEXT NOT NULL,
			hijri_date TEXT NOT NULL,
			payload TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_days_fetched_at ON days(fetched_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertDay records a fetched day.
func (s *Store) InsertDay(ctx context.Context, day model.ArchivedDay) (int64, error) {
	payload, err := json.Marshal(day.Day)
	if err != nil {
		return 0, fmt.Errorf("failed to encode day: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO days (fetched_at, city, country, readable, hijri_date, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		day.FetchedAt.UTC().Format(time.RFC3339Nano),
		day.City,
		day.Country,
		day.Day.Date.Readable,
		day.Day.Date.Hijri.Date,
		string(payload),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListDays returns archived days in fetch order. A positive last keeps only
// the most recent entries.
func (s *Store) ListDays(ctx context.Context, last int) ([]model.ArchivedDay, error) {
	query := `SELECT id, fetched_at, city, country, payload FROM (
		SELECT * FROM days ORDER BY fetched_at DESC, id DESC LIMIT ?
	) ORDER BY fetched_at ASC, id ASC`
	limit := last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.ArchivedDay
	for rows.Next() {
		var (
			day       model.ArchivedDay
			fetchedAt string
			payload   string
		)
		if err := rows.Scan(&day.ID, &fetchedAt, &day.City, &day.Country, &payload); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, err
		}
		day.FetchedAt = parsed
		if err := json.Unmarshal([]byte(payload), &day.Day); err != nil {
			return nil, fmt.Errorf("failed to decode archived day %d: %w", day.ID, err)
		}
		result = append(result, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
