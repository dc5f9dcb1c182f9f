package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore uses redis when REDIS_ADDRESS is set and process memory
// otherwise.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.SessionStore, error) {
	if cfg.Redis.Address == "" {
		logger.Info("session store: memory")
		return session.NewMemoryStore(clk), nil
	}

	client := session.NewRedisClient(cfg.Redis)
	if err := session.Ping(context.Background(), client); err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.Info("session store: redis", "address", cfg.Redis.Address)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return session.NewRedisStore(client, clk), nil
}
