package converter

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns matches the field order of BookingRow.Targets.
const BookingColumns = "id, user_id, room_id, start_date, end_date, start_time, end_time, status, token, token_expires_at, notes, created_at, updated_at"

type BookingRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RoomID         uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	Status         string
	Token          pgtype.Text
	TokenExpiresAt pgtype.Timestamptz
	Notes          pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func (b *BookingRow) Targets() []any {
	return []any{
		&b.ID, &b.UserID, &b.RoomID, &b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
		&b.Status, &b.Token, &b.TokenExpiresAt, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	}
}

func (b *BookingRow) TimeRange() (booking.TimeRange, error) {
	start, err := booking.ClockTimeFromMinutes(pgconv.MinutesFromPgtype(b.StartTime))
	if err != nil {
		return booking.TimeRange{}, errs.Wrapf(err, "booking %s start_time", b.ID)
	}
	end, err := booking.ClockTimeFromMinutes(pgconv.MinutesFromPgtype(b.EndTime))
	if err != nil {
		return booking.TimeRange{}, errs.Wrapf(err, "booking %s end_time", b.ID)
	}
	return booking.NewTimeRange(start, end), nil
}

func BookingToDomain(row BookingRow) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s status %q", row.ID, row.Status)
	}
	tr, err := row.TimeRange()
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(booking.Snapshot{
		ID:             row.ID,
		UserID:         row.UserID,
		RoomID:         row.RoomID,
		StartDate:      booking.DateOf(pgconv.DateFromPgtype(row.StartDate)),
		EndDate:        booking.DateOf(pgconv.DateFromPgtype(row.EndDate)),
		TimeRange:      tr,
		Status:         status,
		Token:          pgconv.StringPtrFromPgtype(row.Token),
		TokenExpiresAt: pgconv.TimePtrFromPgtype(row.TokenExpiresAt),
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

// BookingToView embeds room when it is non-nil.
func BookingToView(row BookingRow, room *RoomRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:             row.ID,
		UserID:         row.UserID,
		RoomID:         row.RoomID,
		StartDate:      booking.DateOf(pgconv.DateFromPgtype(row.StartDate)).String(),
		EndDate:        booking.DateOf(pgconv.DateFromPgtype(row.EndDate)).String(),
		StartTime:      clockString(row.StartTime),
		EndTime:        clockString(row.EndTime),
		Status:         row.Status,
		Token:          pgconv.StringPtrFromPgtype(row.Token),
		TokenExpiresAt: pgconv.TimePtrFromPgtype(row.TokenExpiresAt),
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if room != nil {
		view.Room = RoomToView(*room)
	}
	return view
}

// BookingToArgs returns values in BookingColumns order.
func BookingToArgs(b *booking.Booking) []any {
	return []any{
		b.ID(),
		b.UserID(),
		b.RoomID(),
		DateToPgtype(b.StartDate()),
		DateToPgtype(b.EndDate()),
		pgconv.MinutesToPgtype(b.TimeRange().Start().Minutes()),
		pgconv.MinutesToPgtype(b.TimeRange().End().Minutes()),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.Token()),
		pgconv.TimePtrToPgtype(b.TokenExpiresAt()),
		pgconv.StringPtrToPgtype(b.Notes()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func DateToPgtype(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.In(time.UTC))
}

func clockString(t pgtype.Time) string {
	c, err := booking.ClockTimeFromMinutes(pgconv.MinutesFromPgtype(t))
	if err != nil {
		return ""
	}
	return c.String()
}
