package request

import (
	"room-booking/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Description  string  `json:"description" binding:"max=2000"`
	Capacity     int     `json:"capacity" binding:"required,min=1"`
	Location     string  `json:"location" binding:"required"`
	PricePerHour int64   `json:"price_per_hour" binding:"min=0"`
	ImageURL     *string `json:"image_url" binding:"omitempty,max=2048"`
}

func (r *CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     r.ImageURL,
	}
}

// UpdateRoomRequest is a partial update; omitted fields keep their value.
type UpdateRoomRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1"`
	Location     *string `json:"location"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,min=0"`
	ImageURL     *string `json:"image_url" binding:"omitempty,max=2048"`
}

func (r *UpdateRoomRequest) ToPatch() commands.RoomPatch {
	return commands.RoomPatch{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     r.ImageURL,
	}
}
