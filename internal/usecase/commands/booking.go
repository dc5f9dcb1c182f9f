package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.ErrRoomNotFound
	ErrBookingNotFound         = errs.ErrBookingNotFound
	ErrSlotUnavailable         = errs.ErrSlotUnavailable
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow             shared.UnitOfWork
	issuer          booking.TokenIssuer
	metrics         shared.BookingMetrics
	clock           clock.Clock
	rejectConflicts bool
}

// NewBookingCommands expects clk to report time in the booking time zone;
// token expiry is computed in that location.
func NewBookingCommands(
	uow shared.UnitOfWork,
	issuer booking.TokenIssuer,
	metrics shared.BookingMetrics,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:             uow,
		issuer:          issuer,
		metrics:         metrics,
		clock:           clk,
		rejectConflicts: cfg.Booking.RejectConflicts,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	b, err := uc.buildBooking(in)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().Get(ctx, b.RoomID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if uc.rejectConflicts {
			if err := uc.ensureSlotFree(ctx, tx, b, uuid.Nil); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated()
	slog.Info("booking created",
		"booking_id", b.ID(),
		"room_id", b.RoomID(),
		"user_id", b.UserID(),
		"start_date", b.StartDate().String(),
	)

	return &CreateBookingResult{BookingID: b.ID()}, nil
}

func (uc *bookingCommandsImpl) Approve(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if uc.rejectConflicts {
			if err := uc.ensureSlotFree(ctx, tx, b, b.ID()); err != nil {
				return err
			}
		}
		now := uc.clock.Now()
		b.Approve(uc.issuer, now.Location(), now)
		return nil
	})
}

func (uc *bookingCommandsImpl) Reject(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(_ context.Context, _ shared.Tx, b *booking.Booking) error {
		b.Reject(uc.clock.Now())
		return nil
	})
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *bookingCommandsImpl) buildBooking(in CreateBookingInput) (*booking.Booking, error) {
	if in.StartDate == "" || in.EndDate == "" {
		return nil, booking.ErrDatesRequired
	}
	startDate, err := booking.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := booking.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	timeRange, err := booking.ParseTimeRange(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(in.UserID, in.RoomID, startDate, endDate, timeRange, in.Notes, uc.clock.Now())
}

// transition loads the booking, lets apply change it and persists the new
// status in the same unit of work.
func (uc *bookingCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) error {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().Get(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(ctx, tx, b); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = b
		return nil
	})
	if err != nil {
		return err
	}

	uc.metrics.BookingTransitioned(updated.Status())
	slog.Info("booking status changed", "booking_id", updated.ID(), "status", updated.Status().String())
	return nil
}

func (uc *bookingCommandsImpl) ensureSlotFree(ctx context.Context, tx shared.Tx, b *booking.Booking, exclude uuid.UUID) error {
	occupied, err := tx.Bookings().OccupiedRanges(ctx, b.RoomID(), b.StartDate(), exclude)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !booking.IsSlotAvailable(b.TimeRange(), occupied) {
		return ErrSlotUnavailable
	}
	return nil
}
