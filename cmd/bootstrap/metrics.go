package bootstrap

import (
	"bayashop-backoffice/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) *metrics.PromoMetrics {
			return metrics.NewPromoMetrics(reg)
		},
	),
)
