//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RoomID         uuid.UUID
	Date           string
	StartTime      string
	EndTime        string
	Status         booking.Status
	Token          *string
	TokenExpiresAt *time.Time
	Notes          *string
	CreatedAt      time.Time
	Room           *queries.RoomView
}

func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RoomID:    uuid.New(),
		Date:      "2025-03-12",
		StartTime: "09:00",
		EndTime:   "11:00",
		Status:    booking.StatusPending,
		CreatedAt: created,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	tr, err := booking.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(booking.Snapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		RoomID:         b.RoomID,
		StartDate:      date,
		EndDate:        date,
		TimeRange:      tr,
		Status:         b.Status,
		Token:          b.Token,
		TokenExpiresAt: b.TokenExpiresAt,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		UserID:         b.UserID,
		RoomID:         b.RoomID,
		StartDate:      b.Date,
		EndDate:        b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status.String(),
		Token:          b.Token,
		TokenExpiresAt: b.TokenExpiresAt,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
		Room:           b.Room,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		StartDate: b.Date,
		EndDate:   b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
