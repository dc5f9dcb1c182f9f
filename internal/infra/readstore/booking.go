package readstore

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingWithRoomSelect = `SELECT
    b.id, b.user_id, b.room_id, b.start_date, b.end_date, b.start_time, b.end_time,
    b.status, b.token, b.token_expires_at, b.notes, b.created_at, b.updated_at,
    r.id, r.name, r.description, r.capacity, r.location, r.price_per_hour,
    r.image_url, r.created_at, r.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id`

const (
	findBookingSQL         = bookingWithRoomSelect + ` WHERE b.id = $1`
	listBookingsSQL        = bookingWithRoomSelect + ` ORDER BY b.created_at DESC`
	listBookingsByUserSQL  = bookingWithRoomSelect + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`
	listActiveByRoomSQL    = bookingWithRoomSelect + ` WHERE b.room_id = $1 AND b.status IN ('approved', 'pending') ORDER BY b.start_date, b.start_time`
	listUnavailableSlotSQL = `SELECT start_time, end_time FROM bookings
WHERE room_id = $1 AND start_date = $2 AND status IN ('approved', 'pending')
ORDER BY start_time`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var b converter.BookingRow
	var r converter.RoomRow
	if err := s.db.QueryRow(ctx, findBookingSQL, id).Scan(append(b.Targets(), r.Targets()...)...); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return converter.BookingToView(b, &r), nil
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	return s.list(ctx, "failed to list bookings", listBookingsSQL)
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx, "failed to list user bookings", listBookingsByUserSQL, userID)
}

func (s *BookingReadStore) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx, "failed to list room bookings", listActiveByRoomSQL, roomID)
}

func (s *BookingReadStore) FindUnavailableSlots(ctx context.Context, roomID uuid.UUID, date booking.Date) ([]queries.UnavailableSlot, error) {
	rows, err := s.db.Query(ctx, listUnavailableSlotSQL, roomID, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable slots", err)
	}
	defer rows.Close()

	slots := make([]queries.UnavailableSlot, 0)
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(&row.StartTime, &row.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		tr, err := row.TimeRange()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
		}
		slots = append(slots, queries.UnavailableSlot{
			StartTime: tr.Start().String(),
			EndTime:   tr.End().String(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return slots, nil
}

func (s *BookingReadStore) list(ctx context.Context, msg, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	views, err := scanBookingsWithRoom(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}

func scanBookingsWithRoom(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		var b converter.BookingRow
		var r converter.RoomRow
		if err := rows.Scan(append(b.Targets(), r.Targets()...)...); err != nil {
			return nil, err
		}
		views = append(views, converter.BookingToView(b, &r))
	}
	return views, rows.Err()
}
