//go:build unit || e2e

package fixturetest

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/fixture"
	"room-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	UserEmail  = "member@example.com"
	AdminEmail = "admin@example.com"
)

// Env is an in-memory backend seeded with one member, one admin and two
// rooms. Rooms are listed newest first, so RoomB precedes RoomA.
type Env struct {
	Store    *fixture.Store
	Rooms    *fixture.Rooms
	Bookings *fixture.Bookings
	Users    *fixture.Users
	UoW      *fixture.UnitOfWork

	UserID  uuid.UUID
	AdminID uuid.UUID
	RoomA   uuid.UUID
	RoomB   uuid.UUID
}

func NewEnv(t *testing.T, now time.Time) *Env {
	t.Helper()

	store := fixture.NewStore()
	seed := fixture.Seed{
		Users: []fixture.SeedUser{
			{Email: UserEmail, FullName: "Member", Role: "user"},
			{Email: AdminEmail, FullName: "Admin", Role: "admin"},
		},
		Rooms: []fixture.SeedRoom{
			{Key: "a", Name: "Room A", Capacity: 8, Location: "Floor 1", PricePerHour: 100000},
			{Key: "b", Name: "Room B", Capacity: 20, Location: "Floor 2", PricePerHour: 250000},
		},
	}
	require.NoError(t, store.Apply(seed, dbtest.DefaultPassword, booking.NewRandomTokenIssuer(), now))

	env := &Env{
		Store:    store,
		Rooms:    fixture.NewRooms(store),
		Bookings: fixture.NewBookings(store),
		Users:    fixture.NewUsers(store),
		UoW:      fixture.NewUnitOfWork(store),
	}

	ctx := context.Background()
	member, _, err := env.Users.FindByEmail(ctx, UserEmail)
	require.NoError(t, err)
	admin, _, err := env.Users.FindByEmail(ctx, AdminEmail)
	require.NoError(t, err)
	env.UserID, env.AdminID = member.ID, admin.ID

	rooms, err := env.Rooms.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	env.RoomB, env.RoomA = rooms[0].ID, rooms[1].ID

	return env
}

// AddBooking stores a single-day booking with the given status.
func (e *Env) AddBooking(t *testing.T, userID, roomID uuid.UUID, date, start, end string, status booking.Status, now time.Time) *booking.Booking {
	t.Helper()

	d, err := booking.ParseDate(date)
	require.NoError(t, err)
	tr, err := booking.ParseTimeRange(start, end)
	require.NoError(t, err)

	b, err := booking.NewBooking(userID, roomID, d, d, tr, nil, now)
	require.NoError(t, err)

	snap := b.Snapshot()
	snap.Status = status
	b = booking.ReconstructBooking(snap)

	require.NoError(t, e.Bookings.Create(context.Background(), b))
	return b
}
