package engine

import (
	"context"
	"time"
)

// DateLayout is the stored calendar-date format for login/gift tracking.
const DateLayout = "2006-01-02"

type LoginResult struct {
	StreakBefore int
	StreakAfter  int
	Continued    bool // yesterday's login extended the streak
	Reset        bool // a gap reset the streak to 1
}

// TouchLogin records a login at now and updates the streak counters.
// Same-day repeat logins are no-ops.
func (s *Service) TouchLogin(ctx context.Context, now time.Time) (*LoginResult, error) {
	settings, err := s.settings.GetMain(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	res := &LoginResult{StreakBefore: settings.StreakCurrent}

	switch settings.LastLoginDate {
	case today:
		res.StreakAfter = settings.StreakCurrent
		return res, nil
	case yesterday:
		settings.StreakCurrent++
		res.Continued = true
	default:
		res.Reset = settings.LastLoginDate != ""
		settings.StreakCurrent = 1
	}

	if settings.StreakCurrent > settings.StreakLongest {
		settings.StreakLongest = settings.StreakCurrent
	}
	settings.LastLoginDate = today
	res.StreakAfter = settings.StreakCurrent

	if err := s.settings.PutMain(ctx, settings); err != nil {
		return nil, err
	}
	return res, nil
}

// Gift XP per streak day. Days past the table length pay the last tier.
var giftXPByStreakDay = []int{10, 15, 20, 25, 30, 40, 50}

// GiftXPForStreak returns the daily-gift XP for the given streak length.
func GiftXPForStreak(streak int) int {
	if streak < 1 {
		streak = 1
	}
	if streak > len(giftXPByStreakDay) {
		streak = len(giftXPByStreakDay)
	}
	return giftXPByStreakDay[streak-1]
}

type GiftResult struct {
	XPAwarded   int
	Streak      int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// ClaimDailyGift pays the once-per-day login gift. The claim also counts
// as a login, so the streak advances first. Gifts are plain XP; event
// buffs only multiply earned session XP.
func (s *Service) ClaimDailyGift(ctx context.Context, now time.Time) (*GiftResult, error) {
	login, err := s.TouchLogin(ctx, now)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetMain(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(DateLayout)
	if settings.LastGiftDate == today {
		return nil, GiftClaimedError{Date: today}
	}

	xp := GiftXPForStreak(login.StreakAfter)
	levelBefore := LevelForTotalXP(settings.XPTotal)
	settings.XPTotal += xp
	settings.Level = LevelForTotalXP(settings.XPTotal)
	settings.LastGiftDate = today

	if err := s.settings.PutMain(ctx, settings); err != nil {
		return nil, err
	}

	return &GiftResult{
		XPAwarded:   xp,
		Streak:      login.StreakAfter,
		LevelBefore: levelBefore,
		LevelAfter:  settings.Level,
		LevelUp:     settings.Level > levelBefore,
	}, nil
}
