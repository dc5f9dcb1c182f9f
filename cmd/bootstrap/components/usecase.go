package components

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/export"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		booking.NewRandomTokenIssuer,
		fx.As(new(booking.TokenIssuer)),
	),
	NewBookingSheetWriter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingSheetWriter(cfg config.Config) (queries.BookingSheetWriter, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return export.NewBookingSheetWriter(loc), nil
}
