package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type SessionRepo struct {
	db DBTX
}

func NewSessionRepo(db DBTX) *SessionRepo {
	return &SessionRepo{db: db}
}

// WithTx returns a copy of the repo bound to the transaction.
func (r *SessionRepo) WithTx(tx *sql.Tx) *SessionRepo {
	return &SessionRepo{db: tx}
}

func (r *SessionRepo) Insert(ctx context.Context, s FocusSession) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO focus_sessions (completed_at, minutes, base_xp, xp_awarded, multiplier, buff_ids)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.CompletedAt, s.Minutes, s.BaseXP, s.XPAwarded, s.Multiplier, strings.Join(s.BuffIDs, ","))
	if err != nil {
		return 0, fmt.Errorf("session insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns up to n sessions, newest first.
func (r *SessionRepo) ListRecent(ctx context.Context, n int) ([]FocusSession, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, completed_at, minutes, base_xp, xp_awarded, multiplier, buff_ids
		FROM focus_sessions
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("session list: %w", err)
	}
	defer rows.Close()

	var out []FocusSession
	for rows.Next() {
		var s FocusSession
		var buffIDs string
		if err := rows.Scan(&s.ID, &s.CompletedAt, &s.Minutes, &s.BaseXP, &s.XPAwarded, &s.Multiplier, &buffIDs); err != nil {
			return nil, fmt.Errorf("session scan: %w", err)
		}
		if buffIDs != "" {
			s.BuffIDs = strings.Split(buffIDs, ",")
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session rows: %w", err)
	}
	return out, nil
}

// CountSince returns the number of sessions completed at or after since.
func (r *SessionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM focus_sessions WHERE completed_at >= ?
	`, since)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("session count: %w", err)
	}
	return n, nil
}
