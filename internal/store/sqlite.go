package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rcliao/notes/internal/model"
)

// SQLiteBackend keeps the collection in a SQLite database file. The file
// is opened per call; nothing stays open between operations.
type SQLiteBackend struct {
	path string
}

// NewSQLiteBackend returns a backend for the database at path.
func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

// Kind returns "sqlite".
func (b *SQLiteBackend) Kind() string { return "sqlite" }

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		seq         INTEGER PRIMARY KEY,
		id          INTEGER NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		body        TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Load reads the notes ordered by insertion position. A missing database
// file is reported as fs.ErrNotExist and is never created here.
func (b *SQLiteBackend) Load(ctx context.Context) ([]model.Note, error) {
	if _, err := os.Stat(b.path); err != nil {
		return nil, err
	}

	db, err := openDB(b.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, title, body, updated_at FROM notes ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Save builds a fresh database next to the target and renames it into
// place, so a failed save leaves the old file untouched and an unreadable
// old file is simply replaced.
func (b *SQLiteBackend) Save(ctx context.Context, notes []model.Note) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	tmpName := tempPath(b.path)
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := writeDB(ctx, tmpName, notes); err != nil {
		return err
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("rename temp db to %s: %w", b.path, err)
	}
	return nil
}

func writeDB(ctx context.Context, path string, notes []model.Note) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO notes (seq, id, title, body, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, n := range notes {
		if _, err := stmt.ExecContext(ctx, i+1, n.ID, n.Title, n.Body, n.UpdatedAt); err != nil {
			return fmt.Errorf("insert note %d: %w", n.ID, err)
		}
	}

	return tx.Commit()
}
