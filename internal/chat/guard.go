// Package chat guards the community-message send path: input validation
// first, then the rolling-window rate limit.
package chat

import (
	"fmt"
	"strings"
	"time"

	"studysaga/internal/ratelimit"
)

const (
	// MaxMessageLen matches the hosted backend's message column.
	MaxMessageLen = 500

	DefaultMaxPerWindow = 10
	DefaultWindow       = time.Minute
)

// ValidationError rejects a message before anything is recorded. It is
// surfaced inline to the user and never propagated further.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string { return "invalid message: " + e.Reason }

// RateLimitError rejects a send because the window is full. RetryAfter
// is the countdown shown to the user; no retry is scheduled.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %ds", e.RetryAfterSeconds)
}

// Guard validates and rate-limits outgoing messages.
type Guard struct {
	limiter *ratelimit.Limiter
}

func NewGuard(limiter *ratelimit.Limiter) *Guard {
	return &Guard{limiter: limiter}
}

// NewDefaultGuard builds a guard with the app's send policy.
func NewDefaultGuard() *Guard {
	l, err := ratelimit.New(DefaultMaxPerWindow, DefaultWindow)
	if err != nil {
		// Constants above are static; reaching this is a programming error.
		panic(err)
	}
	return &Guard{limiter: l}
}

// Check validates the message and, if it passes, consumes one rate-limit
// slot. The trimmed message is returned. Order matters: validation
// failures must not burn a slot.
func (g *Guard) Check(message string) (string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", ValidationError{Reason: "message is empty"}
	}
	if len(msg) > MaxMessageLen {
		return "", ValidationError{Reason: fmt.Sprintf("message exceeds %d characters", MaxMessageLen)}
	}

	if !g.limiter.CanSend() {
		return "", RateLimitError{RetryAfterSeconds: g.limiter.SecondsUntilReset()}
	}
	g.limiter.Record()
	return msg, nil
}

// Remaining reports how many sends are left in the current window.
func (g *Guard) Remaining() int { return g.limiter.Remaining() }

// SecondsUntilReset reports the displayed countdown until the oldest
// send leaves the window.
func (g *Guard) SecondsUntilReset() int { return g.limiter.SecondsUntilReset() }
