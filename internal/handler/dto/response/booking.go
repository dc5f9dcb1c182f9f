package response

import (
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	RoomID         uuid.UUID     `json:"room_id"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	Status         string        `json:"status"`
	Token          *string       `json:"token"`
	TokenExpiresAt *time.Time    `json:"token_expires_at"`
	Notes          *string       `json:"notes"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Room           *RoomResponse `json:"room,omitempty" copier:"-"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if v.Room != nil {
		room, err := FromRoomView(v.Room)
		if err != nil {
			return nil, err
		}
		res.Room = room
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		b, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}

type CreateBookingResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func FromUnavailableSlots(slots []queries.UnavailableSlot) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = SlotResponse{StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return res
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Conflicts []SlotResponse `json:"conflicts"`
}

func FromAvailability(a *queries.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: a.Available,
		Conflicts: FromUnavailableSlots(a.Conflicts),
	}
}

type ScheduleResponse struct {
	TimeSlots []string `json:"time_slots"`
	Dates     []string `json:"dates"`
}
