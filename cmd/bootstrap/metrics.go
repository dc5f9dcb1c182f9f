package bootstrap

import (
	"room-booking/internal/infra/metrics"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewMetrics,
		func(m *metrics.Metrics) shared.BookingMetrics { return m },
	),
)
