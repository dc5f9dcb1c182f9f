package shared

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. Both the postgres and the fixture backend implement them.

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Get(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists status, token, token expiry and updated_at.
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OccupiedRanges returns time ranges of approved/pending bookings of the
	// room starting on date, excluding the booking with id exclude.
	OccupiedRanges(ctx context.Context, roomID uuid.UUID, date booking.Date, exclude uuid.UUID) ([]booking.TimeRange, error)
}

// UnitOfWork runs fn against repositories that share one consistent view of
// the backend. fn may run more than once when the backend asks for a retry.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

// SessionStore keeps revoked session ids and relays session events.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	Publish(ctx context.Context, event SessionEvent) error
	// Subscribe delivers events for userID until ctx is done, then closes the
	// channel.
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan SessionEvent, error)
}

// BookingMetrics observes booking lifecycle changes.
type BookingMetrics interface {
	BookingCreated()
	BookingTransitioned(to booking.Status)
}

type NopBookingMetrics struct{}

func (NopBookingMetrics) BookingCreated()                     {}
func (NopBookingMetrics) BookingTransitioned(_ booking.Status) {}
