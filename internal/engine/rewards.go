package engine

import (
	"context"
	"database/sql"
	"math"
	"time"

	"studysaga/internal/buff"
	"studysaga/internal/storage"
)

type SessionResult struct {
	Minutes     int
	BaseXP      int
	Multiplier  float64
	FlatBonus   int
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	ActiveBuffs []buff.Buff
}

// CompleteFocusSession awards XP for a finished pomodoro: base XP per
// focused minute, scaled by the stacked multiplier of every buff active
// at the completion instant, plus their flat bonuses. The settings blob
// and the session history row are written in one transaction.
func (s *Service) CompleteFocusSession(ctx context.Context, minutes int, now time.Time) (*SessionResult, error) {
	if minutes <= 0 {
		return nil, ValidationError{Field: "minutes", Reason: "must be positive"}
	}

	settings, err := s.settings.GetMain(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := LevelForTotalXP(settings.XPTotal)

	active := s.catalog.Active(now)
	mult := s.catalog.StackedMultiplier(now)
	flat := s.catalog.FlatBonus(now)

	base := minutes * XPPerFocusMinute
	awarded := int(math.Round(float64(base)*mult)) + flat
	if awarded < 1 {
		awarded = 1
	}

	settings.XPTotal += awarded
	settings.Level = LevelForTotalXP(settings.XPTotal)

	buffIDs := make([]string, 0, len(active))
	for _, b := range active {
		buffIDs = append(buffIDs, b.ID)
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.settings.WithTx(tx).PutMain(ctx, settings); err != nil {
			return err
		}
		_, err := s.sessions.WithTx(tx).Insert(ctx, storage.FocusSession{
			CompletedAt: now,
			Minutes:     minutes,
			BaseXP:      base,
			XPAwarded:   awarded,
			Multiplier:  mult,
			BuffIDs:     buffIDs,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SessionResult{
		Minutes:     minutes,
		BaseXP:      base,
		Multiplier:  mult,
		FlatBonus:   flat,
		XPAwarded:   awarded,
		LevelBefore: levelBefore,
		LevelAfter:  settings.Level,
		LevelUp:     settings.Level > levelBefore,
		ActiveBuffs: active,
	}, nil
}
