package bootstrap

import (
	"sales-invoicing/internal/infra/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewMetrics,
	),
)
