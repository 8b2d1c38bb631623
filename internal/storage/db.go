package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default StudySaga DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".studysaga.db"), nil
}

// ResolveDBPath honors STUDYSAGA_DB when set, falling back to the
// default location.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("STUDYSAGA_DB"); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// Open opens (creating if missing) the SQLite database at path and runs
// the idempotent migration.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
