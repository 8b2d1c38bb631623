// Package ratelimit implements a rolling-window event limiter: at most
// max events in any trailing window-length interval, tracked as a log of
// event timestamps.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter is a sliding-window-log limiter. Every read prunes entries
// that have fallen out of the trailing window before counting; the
// pruning-first ordering is an invariant, not an optimization — a stale
// entry must never influence CanSend, Remaining or SecondsUntilReset.
type Limiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu     sync.Mutex
	events []time.Time
}

func New(max int, window time.Duration) (*Limiter, error) {
	return NewWithClock(max, window, time.Now)
}

// NewWithClock injects the time source, for deterministic tests.
func NewWithClock(max int, window time.Duration, now func() time.Time) (*Limiter, error) {
	if max <= 0 {
		return nil, fmt.Errorf("ratelimit: max must be > 0, got %d", max)
	}
	if window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be > 0, got %v", window)
	}
	return &Limiter{
		max:    max,
		window: window,
		now:    now,
		events: make([]time.Time, 0, max),
	}, nil
}

// prune drops events at or before now-window. Must be called with mu
// held. Events are appended in order, so a single cut index suffices.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	keep := 0
	for keep < len(l.events) && !l.events[keep].After(cutoff) {
		keep++
	}
	if keep > 0 {
		l.events = append(l.events[:0], l.events[keep:]...)
	}
}

// Record appends the current instant to the log and prunes expired
// entries. It does not check capacity; call CanSend first.
func (l *Limiter) Record() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.events = append(l.events, now)
	l.prune(now)
}

// CanSend reports whether one more event fits in the trailing window.
func (l *Limiter) CanSend() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.events) < l.max
}

// Remaining returns how many events are still permitted in the window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	rem := l.max - len(l.events)
	if rem < 0 {
		rem = 0
	}
	return rem
}

// SecondsUntilReset returns the rounded-up seconds until the oldest
// tracked event leaves the window. Zero when nothing is tracked; never
// negative.
func (l *Limiter) SecondsUntilReset() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.prune(now)
	if len(l.events) == 0 {
		return 0
	}
	until := l.events[0].Add(l.window).Sub(now)
	if until <= 0 {
		return 0
	}
	secs := int((until + time.Second - 1) / time.Second)
	return secs
}

// Max returns the configured capacity per window.
func (l *Limiter) Max() int { return l.max }

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }
