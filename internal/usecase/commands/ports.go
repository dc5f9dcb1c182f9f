package commands

import (
	"github.com/google/uuid"
)

// Command inputs carry raw request values; the domain parses and validates
// them.

type CreateBookingInput struct {
	UserID    uuid.UUID
	RoomID    uuid.UUID
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	Notes     *string
}

type CreateRoomInput struct {
	Name         string
	Description  string
	Capacity     int
	Location     string
	PricePerHour int64
	ImageURL     *string
}

// RoomPatch leaves nil fields unchanged.
type RoomPatch struct {
	Name         *string
	Description  *string
	Capacity     *int
	Location     *string
	PricePerHour *int64
	ImageURL     *string
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}
