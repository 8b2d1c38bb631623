package engine

import "fmt"

// GiftClaimedError is returned when the daily gift was already claimed
// today. It should be shown to the user, not treated as a failure.
type GiftClaimedError struct {
	Date string
}

func (e GiftClaimedError) Error() string {
	return fmt.Sprintf("daily gift already claimed on %s", e.Date)
}

// ValidationError rejects bad user input before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
