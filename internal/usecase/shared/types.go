package shared

import (
	"time"

	"room-booking/internal/domain/auth"

	"github.com/google/uuid"
)

// SessionEvent is one auth state change for a user, fanned out to every open
// session-change stream of that user.
type SessionEvent struct {
	Type   auth.SessionEventType `json:"type"`
	UserID uuid.UUID             `json:"user_id"`
	Email  string                `json:"email"`
	At     time.Time             `json:"at"`
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	SessionID string
	ExpiresAt time.Time
}
