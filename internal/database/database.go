// Package database provides SQLite storage for the exposure session
// journal. WAL mode keeps the journal safe across interrupted writes.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schema is the journal schema, applied idempotently at open. The
// journal is a single advisory table; a migration framework would be
// more machinery than data.
const schema = `
CREATE TABLE IF NOT EXISTS exposure_sessions (
    id               TEXT PRIMARY KEY,
    recorded_at      TEXT NOT NULL,
    uv_index         REAL NOT NULL,
    clothing         TEXT NOT NULL,
    adaptation       REAL NOT NULL,
    rate_iu_per_hour REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_recorded_at
    ON exposure_sessions (recorded_at);
`

// DB wraps a sql.DB configured for single-writer journal access.
type DB struct {
	*sql.DB
	path string
}

// Open creates a database connection with WAL mode enabled and the
// journal schema applied.
func Open(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	connStr := fmt.Sprintf("file:%s?_txlock=immediate&_timeout=5000&_fk=true", dbPath)

	sqlDB, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite only supports one writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	db := &DB{DB: sqlDB, path: dbPath}

	if err := db.init(context.Background()); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// NewInMemory creates an in-memory database for testing.
func NewInMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB, path: ":memory:"}

	if err := db.init(context.Background()); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// init applies safety pragmas and the journal schema.
func (db *DB) init(ctx context.Context) error {
	pragmas := []struct {
		name   string
		pragma string
	}{
		// WAL mode for resilience against interrupted writes
		{"journal_mode", "PRAGMA journal_mode=WAL"},
		// Synchronous NORMAL balances safety and performance
		{"synchronous", "PRAGMA synchronous=NORMAL"},
		// 5 second busy timeout for concurrent access
		{"busy_timeout", "PRAGMA busy_timeout=5000"},
		{"foreign_keys", "PRAGMA foreign_keys=ON"},
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p.pragma); err != nil {
			return fmt.Errorf("setting %s: %w", p.name, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
