// Package sqlite implements the persistence repositories on top of an SQLite
// database via the pure-Go modernc.org/sqlite driver. The default DSN keeps
// the database in memory, so stored state lives for the process lifetime only
// and is re-seeded on every start.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/example/roombooking/internal/persistence"
	_ "modernc.org/sqlite"
)

// DefaultDSN names a shared in-memory database. The shared cache keeps the
// schema alive across the pooled connections of database/sql.
const DefaultDSN = "file:roombooking?mode=memory&cache=shared"

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	capacity   INTEGER NOT NULL CHECK (capacity > 0),
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id         TEXT PRIMARY KEY,
	room_id    TEXT NOT NULL REFERENCES rooms(id),
	title      TEXT NOT NULL,
	date       TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_room_date ON bookings(room_id, date);
`

// Store owns the SQLite connection shared by the repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the database identified by dsn. An empty dsn selects the
// in-memory default.
func Open(dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate applies the schema. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Reset clears all stored rows, preserving the schema. Seeding runs it first
// so a restart always starts from the seed data alone.
func (s *Store) Reset(ctx context.Context) error {
	return s.withTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM bookings"); err != nil {
			return fmt.Errorf("failed to clear bookings: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM rooms"); err != nil {
			return fmt.Errorf("failed to clear rooms: %w", err)
		}
		return nil
	})
}

// withTransaction executes fn inside a transaction, rolling back on error.
func (s *Store) withTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// mapError translates driver errors into the persistence sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed") ||
		strings.Contains(msg, "constraint failed") {
		return fmt.Errorf("%w: %v", persistence.ErrConstraintViolation, err)
	}
	return err
}
