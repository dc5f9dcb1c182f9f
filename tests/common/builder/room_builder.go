//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Capacity     int
	Location     string
	PricePerHour int64
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewRoomBuilder() *RoomBuilder {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &RoomBuilder{
		ID:           uuid.New(),
		Name:         "Ruang Rapat",
		Description:  "Meeting room with projector",
		Capacity:     12,
		Location:     "Floor 3",
		PricePerHour: 150000,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) Attributes() room.Attributes {
	return room.Attributes{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     r.ImageURL,
	}
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.Attributes(), r.CreatedAt, r.UpdatedAt)
}

func (r *RoomBuilder) BuildInfra() converter.RoomRow {
	var image pgtype.Text
	if r.ImageURL != nil {
		image = pgtype.Text{String: *r.ImageURL, Valid: true}
	}
	return converter.RoomRow{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     int32(r.Capacity),
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     image,
		CreatedAt:    pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		ImageURL:     r.ImageURL,
	}
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}
