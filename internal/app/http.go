package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/transport/middleware"
	"github.com/heartmarshall/edip-crm/internal/transport/rest"
)

// NewHandler builds the HTTP surface over svcs. Metrics use a private
// registry so handlers built in tests do not collide.
func NewHandler(cfg *config.Config, log *slog.Logger, b *Backend, svcs *Services) (http.Handler, error) {
	deps := rest.RouterDeps{
		Logger:        log,
		CORS:          cfg.CORS,
		Version:       BuildVersion(),
		Store:         b,
		StoreKind:     b.Kind,
		Accounts:      svcs.Accounts,
		UseCases:      svcs.UseCases,
		Updates:       svcs.Updates,
		BusinessAreas: svcs.BusinessAreas,
		Reports:       svcs.Reports,
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m, err := middleware.NewMetrics(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		deps.Metrics = m
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		deps.MetricsPath = cfg.Metrics.Path
	}

	return rest.NewRouter(deps), nil
}
