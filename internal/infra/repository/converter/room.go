package converter

import (
	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// RoomColumns matches the field order of RoomRow.Targets.
const RoomColumns = "id, name, description, capacity, location, price_per_hour, image_url, created_at, updated_at"

type RoomRow struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Capacity     int32
	Location     string
	PricePerHour int64
	ImageURL     pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (r *RoomRow) Targets() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.Capacity, &r.Location,
		&r.PricePerHour, &r.ImageURL, &r.CreatedAt, &r.UpdatedAt,
	}
}

func RoomToDomain(row RoomRow) *room.Room {
	return room.ReconstructRoom(row.ID, room.Attributes{
		Name:         row.Name,
		Description:  row.Description,
		Capacity:     int(row.Capacity),
		Location:     row.Location,
		PricePerHour: row.PricePerHour,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageURL),
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func RoomToView(row RoomRow) *queries.RoomView {
	return &queries.RoomView{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Capacity:     int(row.Capacity),
		Location:     row.Location,
		PricePerHour: row.PricePerHour,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageURL),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

// RoomToArgs returns id followed by the mutable columns and timestamps, in
// RoomColumns order.
func RoomToArgs(r *room.Room) []any {
	return []any{
		r.ID(),
		r.Name(),
		r.Description(),
		int32(r.Capacity()),
		r.Location(),
		r.PricePerHour(),
		pgconv.StringPtrToPgtype(r.ImageURL()),
		pgconv.TimeToPgtype(r.CreatedAt()),
		pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
