package components

import (
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/fixture"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// FixtureModule serves every port from one seeded in-memory store.
var FixtureModule = fx.Module("persistence/fixture",
	fx.Provide(
		NewFixtureStore,
		fx.Annotate(
			fixture.NewRooms,
			fx.As(new(shared.RoomRepository)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			fixture.NewBookings,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			fixture.NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			fixture.NewUsers,
			fx.As(new(shared.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewFixtureStore(cfg config.Config, clk clock.Clock, issuer booking.TokenIssuer, logger *slog.Logger) (*fixture.Store, error) {
	seed, err := fixture.LoadSeed(cfg.Fixture.SeedFile)
	if err != nil {
		return nil, err
	}

	store := fixture.NewStore()
	if err := store.Apply(seed, cfg.Fixture.AdminPassword, issuer, clk.Now()); err != nil {
		return nil, err
	}

	logger.Info("fixture backend seeded",
		"users", len(seed.Users),
		"rooms", len(seed.Rooms),
		"bookings", len(seed.Bookings),
	)
	return store, nil
}
