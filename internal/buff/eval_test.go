package buff

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestDayOfWeekActiveIndependentOfTimeOfDay(t *testing.T) {
	r := OnWeekdays(time.Saturday, time.Sunday)

	// 2025-06-07 is a Saturday.
	for _, hour := range []int{0, 9, 23} {
		if !r.IsActive(date(2025, time.June, 7, hour, 30)) {
			t.Fatalf("expected Saturday %02d:30 active", hour)
		}
	}
	if r.IsActive(date(2025, time.June, 6, 12, 0)) {
		t.Fatalf("Friday should be inactive")
	}
	if !r.IsActive(date(2025, time.June, 8, 0, 0)) {
		t.Fatalf("Sunday midnight should be active")
	}
}

func TestDayOfWeekDurationHoursAnchorsAtMidnight(t *testing.T) {
	r := OnWeekdays(time.Monday).WithDurationHours(1)

	// 2025-06-09 is a Monday.
	if !r.IsActive(date(2025, time.June, 9, 0, 30)) {
		t.Fatalf("00:30 Monday should be inside the 1h window")
	}
	if r.IsActive(date(2025, time.June, 9, 1, 0)) {
		t.Fatalf("01:00 Monday is the exclusive window end")
	}
	if r.IsActive(date(2025, time.June, 10, 0, 30)) {
		t.Fatalf("Tuesday should be inactive regardless of hour")
	}
}

func TestSpecificDateWholeDayWindow(t *testing.T) {
	r := OnDate(2026, time.January, 1)

	if !r.IsActive(date(2026, time.January, 1, 0, 0)) {
		t.Fatalf("midnight of the date should be active")
	}
	if !r.IsActive(date(2026, time.January, 1, 23, 59)) {
		t.Fatalf("end of the date should be active")
	}
	if r.IsActive(date(2026, time.January, 2, 0, 0)) {
		t.Fatalf("next midnight is exclusive")
	}
	if r.IsActive(date(2025, time.December, 31, 23, 59)) {
		t.Fatalf("day before should be inactive")
	}
}

func TestSpecificDateDurationHours(t *testing.T) {
	r := OnDate(2026, time.January, 1).WithDurationHours(6)

	if !r.IsActive(date(2026, time.January, 1, 5, 59)) {
		t.Fatalf("05:59 should be inside the 6h window")
	}
	if r.IsActive(date(2026, time.January, 1, 6, 0)) {
		t.Fatalf("06:00 should be outside the 6h window")
	}
}

func TestDateRangeInclusiveScenario(t *testing.T) {
	// Spec scenario: 2025-12-10 .. 2026-01-01, non-recurring.
	r := BetweenDates(
		date(2025, time.December, 10, 0, 0),
		date(2026, time.January, 1, 0, 0),
		false,
	)

	if !r.IsActive(date(2025, time.December, 25, 12, 0)) {
		t.Fatalf("Dec 25 noon should be active")
	}
	if !r.IsActive(date(2026, time.January, 1, 23, 0)) {
		t.Fatalf("end date is inclusive for its whole day")
	}
	if r.IsActive(date(2026, time.January, 2, 0, 0)) {
		t.Fatalf("Jan 2 midnight should be inactive")
	}
	if r.IsActive(date(2025, time.December, 9, 23, 59)) {
		t.Fatalf("day before start should be inactive")
	}
}

func TestDateRangeYearlyWraparound(t *testing.T) {
	// Dec 20 - Jan 5, recurring every year.
	r := BetweenDates(
		date(2020, time.December, 20, 0, 0),
		date(2021, time.January, 5, 0, 0),
		true,
	)

	cases := []struct {
		at   time.Time
		want bool
	}{
		{date(2025, time.December, 25, 10, 0), true},
		{date(2030, time.January, 3, 10, 0), true},
		{date(2025, time.December, 20, 0, 0), true},
		{date(2025, time.January, 5, 23, 0), true},
		{date(2025, time.January, 6, 0, 0), false},
		{date(2025, time.July, 1, 12, 0), false},
		{date(2025, time.December, 19, 23, 59), false},
	}
	for _, tc := range cases {
		if got := r.IsActive(tc.at); got != tc.want {
			t.Fatalf("IsActive(%s)=%v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestMonthDayRadiusScenario(t *testing.T) {
	// Spec scenario: month=2 day=14 daysAround=3 -> active Feb 11..17.
	r := AroundMonthDay(time.February, 14, 3)

	if !r.IsActive(date(2025, time.February, 11, 0, 0)) {
		t.Fatalf("Feb 11 should be active")
	}
	if !r.IsActive(date(2025, time.February, 17, 23, 0)) {
		t.Fatalf("Feb 17 should be active")
	}
	if r.IsActive(date(2025, time.February, 10, 23, 59)) {
		t.Fatalf("Feb 10 should be inactive")
	}
	if r.IsActive(date(2025, time.February, 18, 0, 0)) {
		t.Fatalf("Feb 18 should be inactive")
	}
	// Recurs the next year too.
	if !r.IsActive(date(2026, time.February, 14, 12, 0)) {
		t.Fatalf("Feb 14 next year should be active")
	}
}

func TestCyclePhases(t *testing.T) {
	// Spec property: interval 14, duration 5, start D.
	start := date(2025, time.March, 3, 0, 0)
	r := EveryCycle(start, 14, 5)

	cases := []struct {
		offsetDays int
		want       bool
	}{
		{0, true},
		{4, true},
		{5, false},
		{13, false},
		{14, true},
		{18, true},
		{19, false},
		{28, true},
	}
	for _, tc := range cases {
		at := start.AddDate(0, 0, tc.offsetDays).Add(9 * time.Hour)
		if got := r.IsActive(at); got != tc.want {
			t.Fatalf("day D+%d: IsActive=%v, want %v", tc.offsetDays, got, tc.want)
		}
	}

	if r.IsActive(start.AddDate(0, 0, -1)) {
		t.Fatalf("cycle must never be active before its start date")
	}
}

func TestCycleDurationHours(t *testing.T) {
	start := date(2025, time.March, 3, 0, 0)
	r := EveryCycle(start, 7, 7).WithDurationHours(2)

	// Window opens at the phase start (the first day of each period).
	if !r.IsActive(start.Add(90 * time.Minute)) {
		t.Fatalf("90m into the phase window should be active")
	}
	if r.IsActive(start.Add(3 * time.Hour)) {
		t.Fatalf("3h into the phase should be outside the 2h window")
	}
}

func TestWillBeActiveWithin(t *testing.T) {
	weekend := Buff{ID: "w", XPMultiplier: 1.5, Rule: OnWeekdays(time.Saturday, time.Sunday)}

	// Friday noon, 24h ahead lands on Saturday noon.
	fri := date(2025, time.June, 6, 12, 0)
	if !WillBeActiveWithin(weekend, 24, fri) {
		t.Fatalf("expected weekend buff upcoming from Friday noon")
	}
	// Already active: never reported as upcoming.
	sat := date(2025, time.June, 7, 12, 0)
	if WillBeActiveWithin(weekend, 24, sat) {
		t.Fatalf("active buff must not be reported as upcoming")
	}
	// Horizon lands past the window (Monday): not detected. Single-sample
	// semantics, kept on purpose.
	if WillBeActiveWithin(weekend, 72, fri) {
		t.Fatalf("72h from Friday noon is Monday; single sample should miss")
	}
}

func TestStackedMultiplierCommutative(t *testing.T) {
	at := date(2025, time.June, 7, 12, 0) // Saturday
	buffs := []Buff{
		{ID: "a", XPMultiplier: 1.5, Rule: OnWeekdays(time.Saturday)},
		{ID: "b", XPMultiplier: 1.2, Rule: OnWeekdays(time.Saturday, time.Sunday)},
		{ID: "c", XPMultiplier: 2.0, Rule: OnWeekdays(time.Monday)}, // inactive
		{ID: "d", XPMultiplier: 1.1, Rule: AroundMonthDay(time.June, 7, 0)},
	}

	want := 1.5 * 1.2 * 1.1
	got := StackedMultiplier(buffs, at)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("StackedMultiplier=%v, want %v", got, want)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]Buff, len(buffs))
		copy(shuffled, buffs)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if g := StackedMultiplier(shuffled, at); math.Abs(g-want) > 1e-9 {
			t.Fatalf("permutation %d: StackedMultiplier=%v, want %v", i, g, want)
		}
	}
}

func TestFlatBonusSumsActiveOnly(t *testing.T) {
	at := date(2025, time.June, 7, 12, 0) // Saturday
	buffs := []Buff{
		{ID: "a", XPMultiplier: 1.0, FlatXPBonus: 20, Rule: OnWeekdays(time.Saturday)},
		{ID: "b", XPMultiplier: 1.0, FlatXPBonus: 30, Rule: OnWeekdays(time.Saturday)},
		{ID: "c", XPMultiplier: 1.0, FlatXPBonus: 99, Rule: OnWeekdays(time.Monday)},
	}
	if got := FlatBonus(buffs, at); got != 50 {
		t.Fatalf("FlatBonus=%d, want 50", got)
	}
}
