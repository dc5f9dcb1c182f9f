package bootstrap

import (
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock reports time in BOOKING_TIMEZONE.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewZonedClock(clock.NewRealClock(), loc), nil
}
