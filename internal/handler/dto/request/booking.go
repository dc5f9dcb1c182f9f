package request

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
	Notes     *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToInput(userID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		UserID:    userID,
		RoomID:    r.RoomID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}
}

type StatusFilterQuery struct {
	Status string `form:"status"`
}

// ToDomain returns nil when no filter was given.
func (q *StatusFilterQuery) ToDomain() (*booking.Status, error) {
	if q.Status == "" {
		return nil, nil
	}
	s, err := booking.ParseStatus(q.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type DateQuery struct {
	Date string `form:"date" binding:"required"`
}

func (q *DateQuery) ToDomain() (booking.Date, error) {
	return booking.ParseDate(q.Date)
}

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}

func (q *AvailabilityQuery) ToDomain() (booking.Date, booking.TimeRange, error) {
	date, err := booking.ParseDate(q.Date)
	if err != nil {
		return booking.Date{}, booking.TimeRange{}, err
	}
	tr, err := booking.ParseTimeRange(q.StartTime, q.EndTime)
	if err != nil {
		return booking.Date{}, booking.TimeRange{}, err
	}
	return date, tr, nil
}
