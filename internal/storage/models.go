package storage

import "time"

// Settings is the whole persisted profile: timer preferences, audio,
// progression counters and cosmetic choices. It is marshaled to a single
// JSON blob and read/written as one unit.
type Settings struct {
	FocusMinutes      int `json:"focusMinutes"`
	ShortBreakMinutes int `json:"shortBreakMinutes"`
	LongBreakMinutes  int `json:"longBreakMinutes"`

	// Volumes are 0..100.
	MusicVolume   int `json:"musicVolume"`
	AmbientVolume int `json:"ambientVolume"`

	XPTotal int `json:"xpTotal"`
	Level   int `json:"level"`

	StreakCurrent int `json:"streakCurrent"`
	StreakLongest int `json:"streakLongest"`
	// Local calendar dates as YYYY-MM-DD; empty when never set.
	LastLoginDate string `json:"lastLoginDate"`
	LastGiftDate  string `json:"lastGiftDate"`

	Role       string `json:"role"`
	Background string `json:"background"`
	Playlist   string `json:"playlist"`
}

// DefaultSettings is the profile used before the user saves anything.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		MusicVolume:       60,
		AmbientVolume:     40,
		Level:             0,
		Role:              "student",
		Background:        "rainy-cafe",
		Playlist:          "lofi-beats",
	}
}

type FocusSession struct {
	ID          int64
	CompletedAt time.Time
	Minutes     int
	BaseXP      int
	XPAwarded   int
	Multiplier  float64
	BuffIDs     []string
}
