package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nobunaga0709/sticker-habit/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS owned_stickers (
	id          TEXT PRIMARY KEY,
	sticker_id  TEXT NOT NULL,
	acquired_at TEXT NOT NULL,
	is_used     INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS habits (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	icon       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	streak     INTEGER NOT NULL DEFAULT 0,
	total_days INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS completion_records (
	id               TEXT PRIMARY KEY,
	habit_id         TEXT NOT NULL,
	date             TEXT NOT NULL,
	owned_sticker_id TEXT NOT NULL,
	sticker_id       TEXT NOT NULL,
	UNIQUE (habit_id, date)
);
CREATE TABLE IF NOT EXISTS ticket (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	count           INTEGER NOT NULL,
	last_granted_at TEXT
);
`

// SQLiteStore persists the snapshot in a SQLite database. Save rewrites
// every table inside one transaction: with a single writer the full
// overwrite is the simplest way to honor the no-partial-commit rule.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.Save(models.DefaultState())
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (models.AppState, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return models.AppState{}, fmt.Errorf("storage not initialized, run 'stickerhabit init' first")
		}
		if err := s.open(); err != nil {
			return models.AppState{}, err
		}
	}

	state := models.AppState{
		OwnedStickers: []models.OwnedSticker{},
		Habits:        []models.Habit{},
		Records:       []models.CompletionRecord{},
	}

	rows, err := s.db.Query("SELECT id, sticker_id, acquired_at, is_used FROM owned_stickers ORDER BY acquired_at, id")
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to load owned stickers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var owned models.OwnedSticker
		var acquiredAt string
		if err := rows.Scan(&owned.ID, &owned.StickerID, &acquiredAt, &owned.IsUsed); err != nil {
			return models.AppState{}, fmt.Errorf("failed to scan owned sticker: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, acquiredAt)
		if err != nil {
			return models.AppState{}, fmt.Errorf("invalid acquired_at timestamp: %w", err)
		}
		owned.AcquiredAt = t
		state.OwnedStickers = append(state.OwnedStickers, owned)
	}
	if err := rows.Err(); err != nil {
		return models.AppState{}, err
	}

	habitRows, err := s.db.Query("SELECT id, name, icon, color, created_at, streak, total_days FROM habits ORDER BY created_at, id")
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to load habits: %w", err)
	}
	defer habitRows.Close()
	for habitRows.Next() {
		var h models.Habit
		var createdAt string
		if err := habitRows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &createdAt, &h.Streak, &h.TotalDays); err != nil {
			return models.AppState{}, fmt.Errorf("failed to scan habit: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return models.AppState{}, fmt.Errorf("invalid created_at timestamp: %w", err)
		}
		h.CreatedAt = t
		state.Habits = append(state.Habits, h)
	}
	if err := habitRows.Err(); err != nil {
		return models.AppState{}, err
	}

	recordRows, err := s.db.Query("SELECT id, habit_id, date, owned_sticker_id, sticker_id FROM completion_records ORDER BY date, id")
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to load completion records: %w", err)
	}
	defer recordRows.Close()
	for recordRows.Next() {
		var r models.CompletionRecord
		if err := recordRows.Scan(&r.ID, &r.HabitID, &r.Date, &r.OwnedStickerID, &r.StickerID); err != nil {
			return models.AppState{}, fmt.Errorf("failed to scan completion record: %w", err)
		}
		state.Records = append(state.Records, r)
	}
	if err := recordRows.Err(); err != nil {
		return models.AppState{}, err
	}

	var lastGrantedAt sql.NullString
	err = s.db.QueryRow("SELECT count, last_granted_at FROM ticket WHERE id = 1").Scan(&state.Ticket.Count, &lastGrantedAt)
	if err == sql.ErrNoRows {
		state.Ticket = models.TicketLedger{Count: 1}
	} else if err != nil {
		return models.AppState{}, fmt.Errorf("failed to load ticket ledger: %w", err)
	}
	if lastGrantedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, lastGrantedAt.String)
		if err != nil {
			return models.AppState{}, fmt.Errorf("invalid last_granted_at timestamp: %w", err)
		}
		state.Ticket.LastGrantedAt = &t
	}

	return state, nil
}

func (s *SQLiteStore) Save(state models.AppState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"owned_stickers", "habits", "completion_records", "ticket"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, owned := range state.OwnedStickers {
		_, err := tx.Exec(
			"INSERT INTO owned_stickers (id, sticker_id, acquired_at, is_used) VALUES (?, ?, ?, ?)",
			owned.ID, owned.StickerID, owned.AcquiredAt.Format(time.RFC3339Nano), owned.IsUsed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert owned sticker: %w", err)
		}
	}

	for _, h := range state.Habits {
		_, err := tx.Exec(
			"INSERT INTO habits (id, name, icon, color, created_at, streak, total_days) VALUES (?, ?, ?, ?, ?, ?, ?)",
			h.ID, h.Name, h.Icon, h.Color, h.CreatedAt.Format(time.RFC3339Nano), h.Streak, h.TotalDays,
		)
		if err != nil {
			return fmt.Errorf("failed to insert habit: %w", err)
		}
	}

	for _, r := range state.Records {
		_, err := tx.Exec(
			"INSERT INTO completion_records (id, habit_id, date, owned_sticker_id, sticker_id) VALUES (?, ?, ?, ?, ?)",
			r.ID, r.HabitID, r.Date, r.OwnedStickerID, r.StickerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert completion record: %w", err)
		}
	}

	var lastGrantedAt interface{}
	if state.Ticket.LastGrantedAt != nil {
		lastGrantedAt = state.Ticket.LastGrantedAt.Format(time.RFC3339Nano)
	}
	if _, err := tx.Exec("INSERT INTO ticket (id, count, last_granted_at) VALUES (1, ?, ?)", state.Ticket.Count, lastGrantedAt); err != nil {
		return fmt.Errorf("failed to insert ticket ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
