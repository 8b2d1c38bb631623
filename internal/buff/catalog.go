package buff

import (
	"fmt"
	"time"
)

// Catalog is the immutable, process-lifetime buff table. It is built
// once at startup; construction fails on the first invalid definition
// instead of letting a malformed rule silently evaluate to nonsense.
type Catalog struct {
	buffs []Buff
	byID  map[string]int
}

func NewCatalog(buffs []Buff) (*Catalog, error) {
	c := &Catalog{
		buffs: make([]Buff, len(buffs)),
		byID:  make(map[string]int, len(buffs)),
	}
	copy(c.buffs, buffs)
	for i, b := range c.buffs {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, InvalidRuleError{BuffID: b.ID, Reason: "duplicate buff id"}
		}
		c.byID[b.ID] = i
	}
	return c, nil
}

// All returns the catalog contents in definition order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []Buff {
	return c.buffs
}

func (c *Catalog) Get(id string) (Buff, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Buff{}, false
	}
	return c.buffs[i], true
}

func (c *Catalog) Active(at time.Time) []Buff   { return Active(c.buffs, at) }
func (c *Catalog) Upcoming(at time.Time) []Buff { return Upcoming(c.buffs, at) }

func (c *Catalog) StackedMultiplier(at time.Time) float64 {
	return StackedMultiplier(c.buffs, at)
}

func (c *Catalog) FlatBonus(at time.Time) int {
	return FlatBonus(c.buffs, at)
}

// Default returns the shipped event-buff table.
func Default() *Catalog {
	c, err := NewCatalog(defaultBuffs)
	if err != nil {
		// The shipped table is static; an invalid entry is a programming
		// error, caught by TestDefaultCatalogIsValid before release.
		panic(fmt.Sprintf("buff: default catalog invalid: %v", err))
	}
	return c
}

var defaultBuffs = []Buff{
	{
		ID:           "weekend_warrior",
		Title:        "Weekend Warrior",
		Description:  "Extra XP for studying on weekends.",
		Icon:         "🛡️",
		XPMultiplier: 1.5,
		Rule:         OnWeekdays(time.Saturday, time.Sunday),
	},
	{
		ID:           "midweek_grind",
		Title:        "Midweek Grind",
		Description:  "A Wednesday push to get over the hump.",
		Icon:         "⛰️",
		XPMultiplier: 1.2,
		Rule:         OnWeekdays(time.Wednesday),
	},
	{
		ID:           "valentine_focus",
		Title:        "Valentine Focus",
		Description:  "Love your work for a week around Feb 14.",
		Icon:         "💝",
		XPMultiplier: 1.3,
		FlatXPBonus:  20,
		Rule:         AroundMonthDay(time.February, 14, 3),
	},
	{
		ID:           "winter_break",
		Title:        "Winter Break Event",
		Description:  "Year-end event: every session counts double.",
		Icon:         "❄️",
		XPMultiplier: 2.0,
		PreviewHours: 72,
		Rule: BetweenDates(
			time.Date(0, time.December, 20, 0, 0, 0, 0, time.Local),
			time.Date(0, time.January, 5, 0, 0, 0, 0, time.Local),
			true,
		),
	},
	{
		ID:           "new_year_day",
		Title:        "Fresh Start",
		Description:  "One day of bonus XP to kick off 2026.",
		Icon:         "🎆",
		XPMultiplier: 1.5,
		FlatXPBonus:  50,
		Rule:         OnDate(2026, time.January, 1),
	},
	{
		ID:           "sprint_week",
		Title:        "Sprint Week",
		Description:  "Five boosted days out of every fourteen.",
		Icon:         "🏃",
		XPMultiplier: 1.25,
		Rule:         EveryCycle(time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local), 14, 5),
	},
	{
		ID:           "power_hour",
		Title:        "Power Hour",
		Description:  "The first hour of every Monday is supercharged.",
		Icon:         "⚡",
		XPMultiplier: 3.0,
		PreviewHours: 24,
		Rule:         OnWeekdays(time.Monday).WithDurationHours(1),
	},
}
