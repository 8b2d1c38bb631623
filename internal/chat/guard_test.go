package chat

import (
	"errors"
	"strings"
	"testing"
	"time"

	"studysaga/internal/ratelimit"
)

func newTestGuard(t *testing.T, max int, window time.Duration, clock func() time.Time) *Guard {
	t.Helper()
	l, err := ratelimit.NewWithClock(max, window, clock)
	if err != nil {
		t.Fatalf("NewWithClock: %v", err)
	}
	return NewGuard(l)
}

func TestCheckRejectsEmptyAndOversizedMessages(t *testing.T) {
	g := newTestGuard(t, 5, time.Minute, time.Now)

	var ve ValidationError
	if _, err := g.Check("   "); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for blank message, got %v", err)
	}
	if _, err := g.Check(strings.Repeat("x", MaxMessageLen+1)); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for long message, got %v", err)
	}

	// Validation failures must not consume a slot.
	if got := g.Remaining(); got != 5 {
		t.Fatalf("Remaining=%d, want 5", got)
	}
}

func TestCheckTrimsAndRecords(t *testing.T) {
	g := newTestGuard(t, 2, time.Minute, time.Now)

	msg, err := g.Check("  hello there  ")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if msg != "hello there" {
		t.Fatalf("msg=%q, want trimmed", msg)
	}
	if got := g.Remaining(); got != 1 {
		t.Fatalf("Remaining=%d, want 1", got)
	}
}

func TestCheckRateLimitsWithCountdown(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGuard(t, 2, time.Minute, func() time.Time { return now })

	for i := 0; i < 2; i++ {
		if _, err := g.Check("ok"); err != nil {
			t.Fatalf("send %d: %v", i+1, err)
		}
	}

	_, err := g.Check("one too many")
	var rle RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rle.RetryAfterSeconds != 60 {
		t.Fatalf("RetryAfterSeconds=%d, want 60", rle.RetryAfterSeconds)
	}

	// After the window drains, sending works again.
	now = now.Add(61 * time.Second)
	if _, err := g.Check("back again"); err != nil {
		t.Fatalf("Check after window: %v", err)
	}
}
