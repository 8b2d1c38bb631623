package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const MainProfileKey = "main_user"

// SettingsRepo persists the settings blob. The whole struct round-trips
// through one row; there is no per-field update path.
type SettingsRepo struct {
	db DBTX
}

func NewSettingsRepo(db DBTX) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// WithTx returns a copy of the repo bound to the transaction.
func (r *SettingsRepo) WithTx(tx *sql.Tx) *SettingsRepo {
	return &SettingsRepo{db: tx}
}

// Get returns the stored settings for key, or defaults when no row
// exists yet.
func (r *SettingsRepo) Get(ctx context.Context, key string) (Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("settings get: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, fmt.Errorf("settings decode: %w", err)
	}
	return s, nil
}

// Put writes the settings blob as one unit.
func (r *SettingsRepo) Put(ctx context.Context, key string, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings encode: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("settings put: %w", err)
	}
	return nil
}

// GetMain is Get for the single local profile.
func (r *SettingsRepo) GetMain(ctx context.Context) (Settings, error) {
	return r.Get(ctx, MainProfileKey)
}

// PutMain is Put for the single local profile.
func (r *SettingsRepo) PutMain(ctx context.Context, s Settings) error {
	return r.Put(ctx, MainProfileKey, s)
}
