package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Capacity     int       `json:"capacity"`
	Location     string    `json:"location"`
	PricePerHour int64     `json:"price_per_hour"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingView represents a booking with its room embedded. Dates are
// "YYYY-MM-DD" and times "HH:MM".
type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	RoomID         uuid.UUID  `json:"room_id"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	Status         string     `json:"status"`
	Token          *string    `json:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Room           *RoomView  `json:"room,omitempty"`
}

type UnavailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type Availability struct {
	Available bool              `json:"available"`
	Conflicts []UnavailableSlot `json:"conflicts"`
}

type Schedule struct {
	TimeSlots []string `json:"time_slots"`
	Dates     []string `json:"dates"`
}

// UserProfileView represents read-optimized user data with authorization info
type UserProfileView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *UserProfileView) IsAdmin() bool {
	return v.Role == "admin"
}
