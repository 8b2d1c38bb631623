package buff

import (
	"fmt"
	"time"
)

// RuleKind tags the date-rule variant. Exactly one set of variant
// fields on Rule is meaningful for a given kind.
type RuleKind string

const (
	KindDayOfWeek    RuleKind = "dayOfWeek"
	KindSpecificDate RuleKind = "specificDate"
	KindDateRange    RuleKind = "dateRange"
	KindMonthDay     RuleKind = "monthDay"
	KindCycle        RuleKind = "cycle"
)

func (k RuleKind) IsValid() bool {
	switch k {
	case KindDayOfWeek, KindSpecificDate, KindDateRange, KindMonthDay, KindCycle:
		return true
	default:
		return false
	}
}

// Rule decides when a buff is active. It is a tagged union: Kind selects
// the variant, and only that variant's fields are read by the evaluator.
//
// DurationHours, when > 0, overrides the whole-day activation window on
// any variant with a fixed-length window starting at the variant's day
// boundary: [windowStart, windowStart + DurationHours).
type Rule struct {
	Kind RuleKind

	// dayOfWeek
	Days []time.Weekday

	// specificDate
	Date time.Time

	// dateRange
	Start       time.Time
	End         time.Time
	YearlyRecur bool

	// monthDay
	Month      time.Month
	Day        int
	DaysAround int

	// cycle
	CycleStart   time.Time
	IntervalDays int
	DurationDays int

	DurationHours float64
}

// InvalidRuleError reports a malformed rule at catalog load time, so the
// evaluator itself never has to guess at runtime.
type InvalidRuleError struct {
	BuffID string
	Reason string
}

func (e InvalidRuleError) Error() string {
	if e.BuffID == "" {
		return "invalid buff rule: " + e.Reason
	}
	return fmt.Sprintf("invalid rule for buff %q: %s", e.BuffID, e.Reason)
}

// Validate checks the variant invariants. It does not touch the clock.
func (r Rule) Validate() error {
	if !r.Kind.IsValid() {
		return InvalidRuleError{Reason: fmt.Sprintf("unknown kind %q", r.Kind)}
	}
	if r.DurationHours < 0 {
		return InvalidRuleError{Reason: "durationHours must be positive when set"}
	}

	switch r.Kind {
	case KindDayOfWeek:
		if len(r.Days) == 0 {
			return InvalidRuleError{Reason: "dayOfWeek rule needs at least one weekday"}
		}
		for _, d := range r.Days {
			if d < time.Sunday || d > time.Saturday {
				return InvalidRuleError{Reason: fmt.Sprintf("weekday %d out of range 0..6", d)}
			}
		}
	case KindSpecificDate:
		if r.Date.IsZero() {
			return InvalidRuleError{Reason: "specificDate rule needs a date"}
		}
	case KindDateRange:
		if r.Start.IsZero() || r.End.IsZero() {
			return InvalidRuleError{Reason: "dateRange rule needs start and end dates"}
		}
		// Yearly ranges may wrap the year boundary (Dec 20 - Jan 5), so
		// ordering is only enforced for fixed ranges.
		if !r.YearlyRecur && startOfDay(r.End).Before(startOfDay(r.Start)) {
			return InvalidRuleError{Reason: "dateRange end before start"}
		}
	case KindMonthDay:
		if r.Month < time.January || r.Month > time.December {
			return InvalidRuleError{Reason: fmt.Sprintf("month %d out of range 1..12", r.Month)}
		}
		if r.Day < 1 || r.Day > 31 {
			return InvalidRuleError{Reason: fmt.Sprintf("day %d out of range 1..31", r.Day)}
		}
		if r.DaysAround < 0 {
			return InvalidRuleError{Reason: "daysAround must not be negative"}
		}
	case KindCycle:
		if r.CycleStart.IsZero() {
			return InvalidRuleError{Reason: "cycle rule needs a start date"}
		}
		if r.IntervalDays <= 0 {
			return InvalidRuleError{Reason: "cycle intervalDays must be > 0"}
		}
		if r.DurationDays <= 0 || r.DurationDays > r.IntervalDays {
			return InvalidRuleError{Reason: "cycle durationDays must be in 1..intervalDays"}
		}
	}
	return nil
}

// Convenience constructors keep the catalog readable.

func OnWeekdays(days ...time.Weekday) Rule {
	return Rule{Kind: KindDayOfWeek, Days: days}
}

func OnDate(year int, month time.Month, day int) Rule {
	return Rule{Kind: KindSpecificDate, Date: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func BetweenDates(start, end time.Time, yearly bool) Rule {
	return Rule{Kind: KindDateRange, Start: start, End: end, YearlyRecur: yearly}
}

func AroundMonthDay(month time.Month, day, daysAround int) Rule {
	return Rule{Kind: KindMonthDay, Month: month, Day: day, DaysAround: daysAround}
}

func EveryCycle(start time.Time, intervalDays, durationDays int) Rule {
	return Rule{Kind: KindCycle, CycleStart: start, IntervalDays: intervalDays, DurationDays: durationDays}
}

// WithDurationHours returns a copy of the rule with the fixed-length
// window override set.
func (r Rule) WithDurationHours(hours float64) Rule {
	r.DurationHours = hours
	return r
}
