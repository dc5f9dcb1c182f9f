package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p RoomPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	rooms shared.RoomRepository
	clock clock.Clock
}

func NewRoomCommands(rooms shared.RoomRepository, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		rooms: rooms,
		clock: clk,
	}
}

func (uc *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	r, err := room.NewRoom(room.Attributes{
		Name:         in.Name,
		Description:  in.Description,
		Capacity:     in.Capacity,
		Location:     in.Location,
		PricePerHour: in.PricePerHour,
		ImageURL:     in.ImageURL,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := uc.rooms.Create(ctx, r); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("room created", "room_id", r.ID(), "name", r.Name())
	return r.ID(), nil
}

func (uc *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, p RoomPatch) error {
	r, err := uc.rooms.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	current := r.Attributes()
	next := room.Attributes{
		Name:         patch.Coalesce(p.Name, current.Name),
		Description:  patch.Coalesce(p.Description, current.Description),
		Capacity:     patch.Coalesce(p.Capacity, current.Capacity),
		Location:     patch.Coalesce(p.Location, current.Location),
		PricePerHour: patch.Coalesce(p.PricePerHour, current.PricePerHour),
		ImageURL:     current.ImageURL,
	}
	if p.ImageURL != nil {
		next.ImageURL = p.ImageURL
	}

	if err := r.Update(next, uc.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := uc.rooms.Update(ctx, r); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete cascades to the room's bookings at the store level.
func (uc *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.rooms.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slog.Info("room deleted", "room_id", id)
	return nil
}
