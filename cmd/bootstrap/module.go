package bootstrap

import (
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// NewModule assembles the application graph for cfg.Backend.Mode.
func NewModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		ClockModule,
		JWTModule,
		SessionModule,
		MetricsModule,
		backendModule(cfg),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func backendModule(cfg config.Config) fx.Option {
	if cfg.Backend.Mode == config.BackendFixture {
		return components.FixtureModule
	}
	return fx.Options(
		DBModule,
		components.PostgresModule,
	)
}
