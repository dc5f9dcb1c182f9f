package repository

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingSQL = `INSERT INTO bookings (` + converter.BookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectBookingSQL = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE id = $1`

	updateBookingStatusSQL = `UPDATE bookings
SET status = $2, token = $3, token_expires_at = $4, updated_at = $5
WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

	occupiedRangesSQL = `SELECT start_time, end_time FROM bookings
WHERE room_id = $1 AND start_date = $2 AND status IN ('approved', 'pending') AND id <> $3`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.db.Exec(ctx, insertBookingSQL, converter.BookingToArgs(b)...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, selectBookingSQL, id).Scan(row.Targets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL,
		b.ID(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.Token()),
		pgconv.TimePtrToPgtype(b.TokenExpiresAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) OccupiedRanges(ctx context.Context, roomID uuid.UUID, date booking.Date, exclude uuid.UUID) ([]booking.TimeRange, error) {
	rows, err := r.db.Query(ctx, occupiedRangesSQL, roomID, converter.DateToPgtype(date), exclude)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied ranges", err)
	}
	defer rows.Close()

	ranges := make([]booking.TimeRange, 0)
	for rows.Next() {
		var start, end pgtype.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied range", err)
		}
		row := converter.BookingRow{StartTime: start, EndTime: end}
		tr, err := row.TimeRange()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
		}
		ranges = append(ranges, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied ranges", err)
	}
	return ranges, nil
}
