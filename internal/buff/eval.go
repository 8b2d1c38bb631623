package buff

import (
	"math"
	"time"
)

// startOfDay returns local midnight of t's calendar date, in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a's date to b's date.
// Rounding absorbs DST-shortened/lengthened days.
func daysBetween(a, b time.Time) int {
	d := startOfDay(b).Sub(startOfDay(a))
	return int(math.Round(d.Hours() / 24))
}

// window returns [start, start+DurationHours) when the override is set,
// otherwise [start, start + wholeDays*24h) on calendar boundaries.
func (r Rule) window(start time.Time, wholeDays int) (time.Time, time.Time) {
	if r.DurationHours > 0 {
		return start, start.Add(time.Duration(r.DurationHours * float64(time.Hour)))
	}
	return start, start.AddDate(0, 0, wholeDays)
}

func within(at, start, end time.Time) bool {
	return !at.Before(start) && at.Before(end)
}

// IsActive reports whether the rule is active at the given instant.
// Rules are validated at catalog load; a malformed rule evaluates to
// inactive rather than panicking.
func (r Rule) IsActive(at time.Time) bool {
	switch r.Kind {
	case KindDayOfWeek:
		return r.dayOfWeekActive(at)
	case KindSpecificDate:
		start, end := r.window(startOfDay(r.Date), 1)
		return within(at, start, end)
	case KindDateRange:
		return r.dateRangeActive(at)
	case KindMonthDay:
		return r.monthDayActive(at)
	case KindCycle:
		return r.cycleActive(at)
	default:
		return false
	}
}

func (r Rule) dayOfWeekActive(at time.Time) bool {
	match := false
	for _, d := range r.Days {
		if at.Weekday() == d {
			match = true
			break
		}
	}
	if !match {
		return false
	}
	// Weekday rules have no single start instant, so the fixed-length
	// window is anchored at local midnight of the instant's own date.
	if r.DurationHours > 0 {
		start, end := r.window(startOfDay(at), 1)
		return within(at, start, end)
	}
	return true
}

func (r Rule) dateRangeActive(at time.Time) bool {
	if r.YearlyRecur {
		// Year component is ignored: compare month-day ordinals, with a
		// wrap branch for ranges like Dec 20 - Jan 5.
		cur := monthDayOrdinal(at)
		lo := monthDayOrdinal(r.Start)
		hi := monthDayOrdinal(r.End)
		if lo <= hi {
			return cur >= lo && cur <= hi
		}
		return cur >= lo || cur <= hi
	}

	if r.DurationHours > 0 {
		start, end := r.window(startOfDay(r.Start), 0)
		return within(at, start, end)
	}
	start := startOfDay(r.Start)
	end := startOfDay(r.End).AddDate(0, 0, 1) // inclusive end date
	return within(at, start, end)
}

func monthDayOrdinal(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

func (r Rule) monthDayActive(at time.Time) bool {
	anchor := time.Date(at.Year(), r.Month, r.Day, 0, 0, 0, 0, at.Location())
	start := anchor.AddDate(0, 0, -r.DaysAround)
	var end time.Time
	if r.DurationHours > 0 {
		start, end = r.window(start, 0)
	} else {
		end = anchor.AddDate(0, 0, r.DaysAround+1)
	}
	return within(at, start, end)
}

func (r Rule) cycleActive(at time.Time) bool {
	elapsed := daysBetween(r.CycleStart, at)
	if elapsed < 0 {
		// Never active before the cycle starts.
		return false
	}
	phase := elapsed % r.IntervalDays
	if r.DurationHours > 0 {
		phaseStart := startOfDay(at).AddDate(0, 0, -phase)
		start, end := r.window(phaseStart, 0)
		return within(at, start, end)
	}
	return phase < r.DurationDays
}

// WillBeActiveWithin reports whether the buff is inactive now but active
// at the single instant hoursAhead from now. It deliberately samples only
// that one instant: a short activation window that opens and closes
// inside the horizon is not detected.
func WillBeActiveWithin(b Buff, hoursAhead float64, at time.Time) bool {
	if b.Rule.IsActive(at) {
		return false
	}
	horizon := at.Add(time.Duration(hoursAhead * float64(time.Hour)))
	return b.Rule.IsActive(horizon)
}

// StackedMultiplier multiplies the XP multipliers of all buffs active at
// the instant, starting from 1.0. Flat bonuses are summed separately by
// FlatBonus.
func StackedMultiplier(buffs []Buff, at time.Time) float64 {
	mult := 1.0
	for _, b := range buffs {
		if b.Rule.IsActive(at) {
			mult *= b.XPMultiplier
		}
	}
	return mult
}

// FlatBonus sums the additive XP bonuses of all buffs active at the
// instant.
func FlatBonus(buffs []Buff, at time.Time) int {
	total := 0
	for _, b := range buffs {
		if b.Rule.IsActive(at) {
			total += b.FlatXPBonus
		}
	}
	return total
}

// Active returns the buffs active at the instant, in catalog order.
func Active(buffs []Buff, at time.Time) []Buff {
	var out []Buff
	for _, b := range buffs {
		if b.Rule.IsActive(at) {
			out = append(out, b)
		}
	}
	return out
}

// Upcoming returns the buffs that are inactive now but will be active at
// the end of their own preview window.
func Upcoming(buffs []Buff, at time.Time) []Buff {
	var out []Buff
	for _, b := range buffs {
		if WillBeActiveWithin(b, b.previewHours(), at) {
			out = append(out, b)
		}
	}
	return out
}
