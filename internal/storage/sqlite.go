// Package storage provides SQLite-based persistence for rendered frames.
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

	"github.com/awelkie/drawille/internal/config"
)

// Store manages the SQLite database connection for the frame gallery.
type Store struct {
	db *sql.DB
}

// FrameEntry is a saved frame.
type FrameEntry struct {
	ID        int64
	Name      string // User-chosen name, not unique
	Source    string // Demo ID or scene file the frame came from
	Kind      string // "block", "braille" or "turtle"
	Body      string // Rendered frame text, escapes included
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			source TEXT NOT NULL,
			kind TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_frames_name ON frames(name);
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

// SaveFrame records a rendered frame.
// Returns the ID of the inserted record.
func (s *Store) SaveFrame(name, source, kind, body string) (int64, error) {
	if name == "" {
		return 0, errors.New("storage: frame name is empty")
	}

	result, err := s.db.Exec(
		"INSERT INTO frames (name, source, kind, body) VALUES (?, ?, ?, ?)",
		name, source, kind, body,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save frame: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Frame returns the most recent frame saved under name.
// Returns nil if there is none.
func (s *Store) Frame(name string) (*FrameEntry, error) {
	var e FrameEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, source, kind, body, created_at
		 FROM frames
		 WHERE name = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		name,
	).Scan(&e.ID, &e.Name, &e.Source, &e.Kind, &e.Body, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frame: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// RecentFrames retrieves the most recently saved frames, newest first.
func (s *Store) RecentFrames(limit int) ([]FrameEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, source, kind, body, created_at
		 FROM frames
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var entries []FrameEntry
	for rows.Next() {
		var e FrameEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Source, &e.Kind, &e.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteFrames deletes every frame saved under name.
// Returns the number of deleted frames.
func (s *Store) DeleteFrames(name string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM frames WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted frames: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
