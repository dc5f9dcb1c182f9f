package fixture

import (
	"context"

	"room-booking/internal/usecase/shared"
)

// UnitOfWork runs one unit at a time against the store. There is no rollback,
// so callers write only after every check has passed.
type UnitOfWork struct {
	store *Store
	tx    storeTx
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store: store,
		tx:    storeTx{bookings: NewBookings(store), rooms: NewRooms(store)},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, u.tx)
}

type storeTx struct {
	bookings *Bookings
	rooms    *Rooms
}

func (t storeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t storeTx) Rooms() shared.RoomRepository       { return t.rooms }
