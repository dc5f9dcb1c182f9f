package fixture

import (
	"context"
	"sort"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Bookings serves both the booking repository and the booking read store.
type Bookings struct {
	store *Store
}

func NewBookings(store *Store) *Bookings {
	return &Bookings{store: store}
}

func (b *Bookings) Create(_ context.Context, bk *booking.Booking) error {
	return b.store.insertBooking(bk)
}

func (b *Bookings) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	rec, ok := b.store.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return booking.ReconstructBooking(rec.snap), nil
}

func (b *Bookings) UpdateStatus(_ context.Context, bk *booking.Booking) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	rec, ok := b.store.bookings[bk.ID()]
	if !ok {
		return infra.NotFound("booking not found")
	}
	rec.snap.Status = bk.Status()
	rec.snap.Token = bk.Token()
	rec.snap.TokenExpiresAt = bk.TokenExpiresAt()
	rec.snap.UpdatedAt = bk.UpdatedAt()
	b.store.bookings[bk.ID()] = rec
	return nil
}

func (b *Bookings) Delete(_ context.Context, id uuid.UUID) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if _, ok := b.store.bookings[id]; !ok {
		return infra.NotFound("booking not found")
	}
	delete(b.store.bookings, id)
	return nil
}

func (b *Bookings) OccupiedRanges(_ context.Context, roomID uuid.UUID, date booking.Date, exclude uuid.UUID) ([]booking.TimeRange, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	ranges := make([]booking.TimeRange, 0)
	for _, snap := range b.occupying(roomID, date) {
		if snap.ID == exclude {
			continue
		}
		ranges = append(ranges, snap.TimeRange)
	}
	return ranges, nil
}

func (b *Bookings) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	rec, ok := b.store.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return b.view(rec.snap), nil
}

func (b *Bookings) FindAll(_ context.Context) ([]*queries.BookingView, error) {
	return b.list(func(booking.Snapshot) bool { return true }), nil
}

func (b *Bookings) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return b.list(func(s booking.Snapshot) bool { return s.UserID == userID }), nil
}

func (b *Bookings) FindActiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	return b.list(func(s booking.Snapshot) bool {
		return s.RoomID == roomID && s.Status.Occupies()
	}), nil
}

func (b *Bookings) FindUnavailableSlots(_ context.Context, roomID uuid.UUID, date booking.Date) ([]queries.UnavailableSlot, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	snaps := b.occupying(roomID, date)
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].TimeRange.Start().Minutes() < snaps[j].TimeRange.Start().Minutes()
	})

	slots := make([]queries.UnavailableSlot, len(snaps))
	for i, snap := range snaps {
		slots[i] = queries.UnavailableSlot{
			StartTime: snap.TimeRange.Start().String(),
			EndTime:   snap.TimeRange.End().String(),
		}
	}
	return slots, nil
}

// occupying returns approved and pending bookings of the room starting on
// date. Callers hold at least a read lock.
func (b *Bookings) occupying(roomID uuid.UUID, date booking.Date) []booking.Snapshot {
	out := make([]booking.Snapshot, 0)
	for _, rec := range b.store.bookings {
		s := rec.snap
		if s.RoomID == roomID && s.StartDate.Equal(date) && s.Status.Occupies() {
			out = append(out, s)
		}
	}
	return out
}

func (b *Bookings) list(keep func(booking.Snapshot) bool) []*queries.BookingView {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	snaps := b.store.bookingsNewestFirst(keep)
	views := make([]*queries.BookingView, len(snaps))
	for i, snap := range snaps {
		views[i] = b.view(snap)
	}
	return views
}

// view embeds the room when it still exists. Callers hold at least a read
// lock.
func (b *Bookings) view(s booking.Snapshot) *queries.BookingView {
	v := &queries.BookingView{
		ID:             s.ID,
		UserID:         s.UserID,
		RoomID:         s.RoomID,
		StartDate:      s.StartDate.String(),
		EndDate:        s.EndDate.String(),
		StartTime:      s.TimeRange.Start().String(),
		EndTime:        s.TimeRange.End().String(),
		Status:         s.Status.String(),
		Token:          s.Token,
		TokenExpiresAt: s.TokenExpiresAt,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if rec, ok := b.store.rooms[s.RoomID]; ok {
		v.Room = roomView(rec.room)
	}
	return v
}
