package queries

import (
	"context"
	"io"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingAccess   = errs.ErrBookingAccess
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindAll and FindByUserID return newest first with the room embedded.
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
	FindUnavailableSlots(ctx context.Context, roomID uuid.UUID, date booking.Date) ([]UnavailableSlot, error)
}

// BookingSheetWriter renders bookings as a spreadsheet.
type BookingSheetWriter interface {
	WriteBookings(w io.Writer, bookings []*BookingView) error
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *booking.Status) ([]*BookingView, error)
	ListAll(ctx context.Context, status *booking.Status) ([]*BookingView, error)
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
	UnavailableSlots(ctx context.Context, roomID uuid.UUID, date booking.Date) ([]UnavailableSlot, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, date booking.Date, candidate booking.TimeRange) (*Availability, error)
	Schedule() *Schedule
	ExportAll(ctx context.Context, w io.Writer) error
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	sheets   BookingSheetWriter
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingQueries(bookings BookingReadStore, sheets BookingSheetWriter, clk clock.Clock, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		sheets:   sheets,
		clock:    clk,
		cfg:      cfg.Booking,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if actorRole != user.RoleAdmin.String() && view.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *booking.Status) ([]*BookingView, error) {
	views, err := q.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return filterByStatus(views, status), nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status *booking.Status) ([]*BookingView, error) {
	views, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return filterByStatus(views, status), nil
}

func (q *bookingQueriesImpl) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) UnavailableSlots(ctx context.Context, roomID uuid.UUID, date booking.Date) ([]UnavailableSlot, error) {
	slots, err := q.bookings.FindUnavailableSlots(ctx, roomID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return slots, nil
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, date booking.Date, candidate booking.TimeRange) (*Availability, error) {
	slots, err := q.UnavailableSlots(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	conflicts := make([]UnavailableSlot, 0)
	for _, slot := range slots {
		occupied, perr := booking.ParseTimeRange(slot.StartTime, slot.EndTime)
		if perr != nil {
			return nil, errs.Wrapf(perr, "stored slot %s-%s", slot.StartTime, slot.EndTime)
		}
		if candidate.Conflicts(occupied) {
			conflicts = append(conflicts, slot)
		}
	}

	return &Availability{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func (q *bookingQueriesImpl) Schedule() *Schedule {
	today := booking.DateOf(q.clock.Now())
	days := booking.NextDays(today, q.cfg.BookableDays)

	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = d.String()
	}

	return &Schedule{
		TimeSlots: booking.TimeSlots(q.cfg.FirstSlotHour, q.cfg.LastSlotHour),
		Dates:     dates,
	}
}

func (q *bookingQueriesImpl) ExportAll(ctx context.Context, w io.Writer) error {
	views, err := q.bookings.FindAll(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.sheets.WriteBookings(w, views)
}

func filterByStatus(views []*BookingView, status *booking.Status) []*BookingView {
	if status == nil {
		return views
	}
	filtered := make([]*BookingView, 0, len(views))
	for _, v := range views {
		if v.Status == status.String() {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
