package notify

import "time"

// Type classifies a system notification for presentation.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeWarning, TypeError, TypeSuccess:
		return true
	default:
		return false
	}
}

// actionReload is the backend's magic action URL meaning "reload the
// app" rather than "open a link".
const actionReload = "REFRESH"

// Notification is the hosted backend's system-notification record.
type Notification struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	Type        Type       `json:"type"`
	Priority    int        `json:"priority"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ActionLabel string     `json:"action_label,omitempty"`
	ActionURL   string     `json:"action_url,omitempty"`
}

// HasAction reports whether the notification carries a call to action.
func (n Notification) HasAction() bool {
	return n.ActionLabel != "" && n.ActionURL != ""
}

// IsReloadAction reports whether the action means "reload" instead of
// "open this URL". Callers must use this rather than comparing the raw
// string.
func (n Notification) IsReloadAction() bool {
	return n.ActionURL == actionReload
}

// Expired reports whether the notification's expiry has passed at now.
func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}
