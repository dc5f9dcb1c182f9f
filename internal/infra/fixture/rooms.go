package fixture

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Rooms serves both the room repository and the room read store.
type Rooms struct {
	store *Store
}

func NewRooms(store *Store) *Rooms {
	return &Rooms{store: store}
}

func (r *Rooms) Create(_ context.Context, rm *room.Room) error {
	r.store.insertRoom(rm)
	return nil
}

func (r *Rooms) Get(_ context.Context, id uuid.UUID) (*room.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.NotFound("room not found")
	}
	return copyRoom(rec.room), nil
}

func (r *Rooms) Update(_ context.Context, rm *room.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.rooms[rm.ID()]
	if !ok {
		return infra.NotFound("room not found")
	}
	rec.room = copyRoom(rm)
	r.store.rooms[rm.ID()] = rec
	return nil
}

// Delete removes the room's bookings too.
func (r *Rooms) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.rooms[id]; !ok {
		return infra.NotFound("room not found")
	}
	delete(r.store.rooms, id)
	for bid, rec := range r.store.bookings {
		if rec.snap.RoomID == id {
			delete(r.store.bookings, bid)
		}
	}
	return nil
}

func (r *Rooms) FindAll(_ context.Context) ([]*queries.RoomView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recs := r.store.roomsNewestFirst()
	views := make([]*queries.RoomView, len(recs))
	for i, rec := range recs {
		views[i] = roomView(rec.room)
	}
	return views, nil
}

func (r *Rooms) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.NotFound("room not found")
	}
	return roomView(rec.room), nil
}

func roomView(rm *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:           rm.ID(),
		Name:         rm.Name(),
		Description:  rm.Description(),
		Capacity:     rm.Capacity(),
		Location:     rm.Location(),
		PricePerHour: rm.PricePerHour(),
		ImageURL:     rm.ImageURL(),
		CreatedAt:    rm.CreatedAt(),
		UpdatedAt:    rm.UpdatedAt(),
	}
}
