package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Settings persist as a single JSON blob per profile, read and
		// written as one unit.
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Append-only history of completed focus sessions, for auditing
		// XP awarded and for the status view.
		`CREATE TABLE IF NOT EXISTS focus_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			completed_at DATETIME NOT NULL,
			minutes INTEGER NOT NULL,
			base_xp INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			multiplier REAL NOT NULL DEFAULT 1.0,
			buff_ids TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_focus_sessions_completed_at ON focus_sessions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
