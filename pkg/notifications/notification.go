package notifications

import (
	"strings"
	"time"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// ParseType maps s to a Type. Unknown values fall back to TypeInfo.
func ParseType(s string) Type {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return t
	default:
		return TypeInfo
	}
}

// Valid reports whether t is one of the known severities.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// Notification is a single entry of the notification container.
type Notification struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	Message   string        `json:"message"`
	Timeout   time.Duration `json:"timeout"`
	CreatedAt time.Time     `json:"created_at"`
}

// ExpiresAt returns the moment the notification is dismissed automatically.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Timeout)
}

// Handle references a shown notification for early dismissal.
// The zero Handle refers to nothing; dismissing it is a no-op.
type Handle struct {
	id string
}

// ID returns the notification identifier, or "" for the zero Handle.
func (h Handle) ID() string { return h.id }

// IsZero reports whether h refers to no notification.
func (h Handle) IsZero() bool { return h.id == "" }

// Container describes the single notification container of a Center.
type Container struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Reason tells why a notification left the container.
type Reason string

const (
	ReasonTimeout  Reason = "timeout"
	ReasonUser     Reason = "user"
	ReasonReplaced Reason = "replaced"
	ReasonEvicted  Reason = "evicted"
)

// EventKind identifies a container change.
type EventKind string

const (
	EventShown     EventKind = "shown"
	EventDismissed EventKind = "dismissed"
)

// Event is published to subscribers whenever the container changes.
// Reason is empty for EventShown.
type Event struct {
	Kind         EventKind    `json:"kind"`
	Notification Notification `json:"notification"`
	Reason       Reason       `json:"reason,omitempty"`
}
