package buff

import "fmt"

// DefaultPreviewHours is the look-ahead horizon used to announce a buff
// before it activates, when the buff does not set its own.
const DefaultPreviewHours = 48.0

// Buff is a time-bounded modifier to earned XP. Multiplier stacks
// multiplicatively across active buffs; FlatXPBonus is additive.
type Buff struct {
	ID          string
	Title       string
	Description string
	Icon        string

	// XPMultiplier >= 1.0; 1.0 means no multiplicative effect.
	XPMultiplier float64
	FlatXPBonus  int

	// PreviewHours <= 0 means DefaultPreviewHours.
	PreviewHours float64

	Rule Rule
}

func (b Buff) previewHours() float64 {
	if b.PreviewHours > 0 {
		return b.PreviewHours
	}
	return DefaultPreviewHours
}

// Validate checks the buff-level invariants plus its rule.
func (b Buff) Validate() error {
	if b.ID == "" {
		return InvalidRuleError{Reason: "buff id is required"}
	}
	if b.XPMultiplier < 1.0 {
		return InvalidRuleError{BuffID: b.ID, Reason: fmt.Sprintf("xpMultiplier %.2f must be >= 1.0", b.XPMultiplier)}
	}
	if b.FlatXPBonus < 0 {
		return InvalidRuleError{BuffID: b.ID, Reason: "flat XP bonus must not be negative"}
	}
	if err := b.Rule.Validate(); err != nil {
		if ire, ok := err.(InvalidRuleError); ok {
			ire.BuffID = b.ID
			return ire
		}
		return err
	}
	return nil
}
