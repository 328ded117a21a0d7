package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"moodlog/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists mood entries in a local SQLite database. It
// implements journal.Store.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertForDate inserts the entry or replaces all fields of an existing entry
// on the same date. The single-statement upsert keeps the write atomic per
// date row, so concurrent submissions degrade to last-write-wins.
func (r *SQLiteRepository) UpsertForDate(ctx context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mood_logs (log_date, emotion, emoji, tags, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(log_date) DO UPDATE SET
			emotion = excluded.emotion,
			emoji = excluded.emoji,
			tags = excluded.tags,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP`,
		e.Date.String(), e.Emotion, e.Emoji, e.Tags, e.Notes)
	if err != nil {
		return fmt.Errorf("upsert mood entry: %w", err)
	}

	slog.InfoContext(ctx, "Mood entry saved to SQLite",
		"date", e.Date.String(),
		"emotion", e.Emotion)

	return nil
}

// GetByDate returns the entry for a date, or nil when none exists.
func (r *SQLiteRepository) GetByDate(ctx context.Context, d core.Date) (*core.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT log_date, emotion, emoji, tags, notes
		FROM mood_logs WHERE log_date = ?`, d.String())

	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get mood entry by date: %w", err)
	}
	return &e, nil
}

// ListRange returns entries with start <= date <= end, date ascending.
func (r *SQLiteRepository) ListRange(ctx context.Context, start, end core.Date) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT log_date, emotion, emoji, tags, notes
		FROM mood_logs
		WHERE log_date BETWEEN ? AND ?
		ORDER BY log_date ASC`, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w", err)
	}

	return entries, nil
}

func scanEntry(scan func(dest ...any) error) (core.Entry, error) {
	var e core.Entry
	var dateStr string
	if err := scan(&dateStr, &e.Emotion, &e.Emoji, &e.Tags, &e.Notes); err != nil {
		return core.Entry{}, err
	}
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Entry{}, fmt.Errorf("parse stored date %q: %w", dateStr, err)
	}
	e.Date = date
	return e, nil
}
