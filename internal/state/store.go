// Package state persists launcher state that outlives a single run:
// registered custom jars and per-entry play timestamps. It is backed by a
// small SQLite database in the data directory.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages state persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("state: not found")

// Open initializes or connects to the state database in dataDir and applies
// the schema.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, errors.New("state: data directory required")
	}

	dbPath := filepath.Join(dataDir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// CustomJar is a user-registered game jar outside the managed versions.
type CustomJar struct {
	ID      int64
	Name    string
	Path    string
	AddedAt time.Time
}

// CustomJars returns all registered custom jars ordered by name.
func (s *Store) CustomJars(ctx context.Context) ([]CustomJar, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, path, added_at FROM custom_jars ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query custom jars: %w", err)
	}
	defer rows.Close()

	var jars []CustomJar
	for rows.Next() {
		var jar CustomJar
		var addedAt string
		if err := rows.Scan(&jar.ID, &jar.Name, &jar.Path, &addedAt); err != nil {
			return nil, fmt.Errorf("scan custom jar: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, addedAt); parseErr == nil {
			jar.AddedAt = parsed
		}
		jars = append(jars, jar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom jars: %w", err)
	}
	return jars, nil
}

// AddCustomJar registers a jar by name and path. Names are unique; adding a
// duplicate name replaces the path.
func (s *Store) AddCustomJar(ctx context.Context, name, path string) (*CustomJar, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_jars (name, path, added_at) VALUES (?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET path = excluded.path`,
		name, path, now)
	if err != nil {
		return nil, fmt.Errorf("insert custom jar: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("custom jar id: %w", err)
	}
	return &CustomJar{ID: id, Name: name, Path: path}, nil
}

// RemoveCustomJar deletes a jar registration by name.
func (s *Store) RemoveCustomJar(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_jars WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete custom jar: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete custom jar: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchPlayed records that an entry was launched now.
func (s *Store) TouchPlayed(ctx context.Context, entry string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO play_times (entry, last_played) VALUES (?, ?)
         ON CONFLICT(entry) DO UPDATE SET last_played = excluded.last_played`,
		entry, now)
	if err != nil {
		return fmt.Errorf("record play time: %w", err)
	}
	return nil
}

// LastPlayed returns when an entry was last launched.
func (s *Store) LastPlayed(ctx context.Context, entry string) (time.Time, error) {
	var stamp string
	err := s.db.QueryRowContext(ctx,
		`SELECT last_played FROM play_times WHERE entry = ?`, entry).Scan(&stamp)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query play time: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse play time: %w", err)
	}
	return parsed, nil
}
