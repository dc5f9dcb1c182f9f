package repository

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	insertRoomSQL = `INSERT INTO rooms (` + converter.RoomColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectRoomSQL = `SELECT ` + converter.RoomColumns + ` FROM rooms WHERE id = $1`

	updateRoomSQL = `UPDATE rooms
SET name = $2, description = $3, capacity = $4, location = $5,
    price_per_hour = $6, image_url = $7, updated_at = $8
WHERE id = $1`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if _, err := r.db.Exec(ctx, insertRoomSQL, converter.RoomToArgs(rm)...); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Get(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var row converter.RoomRow
	if err := r.db.QueryRow(ctx, selectRoomSQL, id).Scan(row.Targets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return converter.RoomToDomain(row), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	args := converter.RoomToArgs(rm)
	// created_at is immutable
	args = append(args[:7], args[8])

	tag, err := r.db.Exec(ctx, updateRoomSQL, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteRoomSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}
