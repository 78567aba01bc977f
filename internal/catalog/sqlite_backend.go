package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS movies (
    position INTEGER PRIMARY KEY,
    title    TEXT NOT NULL,
    director TEXT NOT NULL,
    genre    TEXT NOT NULL,
    year     INTEGER NOT NULL
)`

// SQLiteBackend keeps the list in a single table. Every Save builds a new
// database beside the target and renames it into place.
type SQLiteBackend struct {
	path string
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &SQLiteBackend{path: path}, nil
}

func (b *SQLiteBackend) Path() string {
	return b.path
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, stmt := range []string{"PRAGMA busy_timeout = 5000", sqliteSchema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: prepare %q: %v", ErrCorrupt, path, err)
		}
	}
	return db, nil
}

func (b *SQLiteBackend) Load() ([]Movie, error) {
	if _, err := os.Stat(b.path); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissing
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}

	db, err := openSQLite(b.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT title, director, genre, year FROM movies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", ErrCorrupt, b.path, err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var (
			m     Movie
			genre string
		)
		if err := rows.Scan(&m.Title, &m.Director, &genre, &m.Year); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrCorrupt, err)
		}
		if m.Genre, err = ParseGenre(genre); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: movie %d: %v", ErrCorrupt, len(movies), err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", ErrCorrupt, err)
	}
	return movies, nil
}

func (b *SQLiteBackend) Save(movies []Movie) error {
	lock := flock.New(b.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock catalog file: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmpPath := b.path + ".tmp-" + uuid.NewString()
	if err := writeSQLite(tmpPath, movies); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, b.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func writeSQLite(path string, movies []Movie) error {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO movies (position, title, director, genre, year) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		if _, err := stmt.Exec(i, m.Title, m.Director, m.Genre.String(), m.Year); err != nil {
			return fmt.Errorf("insert movie %q: %w", m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return db.Close()
}
