package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listRoomsSQL = `SELECT ` + converter.RoomColumns + ` FROM rooms ORDER BY created_at DESC`
	findRoomSQL  = `SELECT ` + converter.RoomColumns + ` FROM rooms WHERE id = $1`
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		var row converter.RoomRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, converter.RoomToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var row converter.RoomRow
	if err := s.db.QueryRow(ctx, findRoomSQL, id).Scan(row.Targets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return converter.RoomToView(row), nil
}
