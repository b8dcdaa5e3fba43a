package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires into the HTTP surface.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Version string

	Store     storePinger
	StoreKind string

	Accounts      accountService
	UseCases      useCaseService
	Updates       updateService
	BusinessAreas businessAreaService
	Reports       reportService

	// Metrics and MetricsHandler are optional; when nil no request metrics
	// are recorded and MetricsPath is not mounted.
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
	MetricsPath    string
}

// NewRouter builds the chi router with the full middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	var metricsMW middleware.Middleware
	if d.Metrics != nil {
		metricsMW = d.Metrics.Middleware()
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		metricsMW,
	))

	health := NewHealthHandler(d.Store, d.StoreKind, d.Version)
	accounts := NewAccountHandler(d.Accounts, d.Logger)
	useCases := NewUseCaseHandler(d.UseCases, d.Logger)
	updates := NewUpdateHandler(d.Updates, d.Logger)
	areas := NewBusinessAreaHandler(d.BusinessAreas, d.Logger)
	reports := NewReportHandler(d.Reports, d.Logger)

	r.Get("/health", health.Health)
	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)
	if d.MetricsHandler != nil && d.MetricsPath != "" {
		r.Method(http.MethodGet, d.MetricsPath, d.MetricsHandler)
	}

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accounts.Search)
		r.Post("/", accounts.Create)
		r.Route("/{bsnid}", func(r chi.Router) {
			r.Get("/", accounts.Get)
			r.Post("/links/azure-devops", accounts.AddAzureDevOpsLink)
			r.Post("/links/artifacts", accounts.AddArtifactsFolderLink)
			r.Get("/platforms", accounts.ListPlatforms)
			r.Put("/platforms/{platform}", accounts.SetPlatformStatus)
			r.Get("/use-cases", useCases.ListForAccount)
			r.Post("/use-cases", useCases.Create)
			r.Get("/updates", updates.ListForAccount)
			r.Post("/updates", updates.Create)
		})
	})

	r.Route("/use-cases", func(r chi.Router) {
		r.Get("/", useCases.List)
		r.Get("/stats", useCases.Stats)
		r.Put("/{id}", useCases.Update)
	})

	r.Route("/updates", func(r chi.Router) {
		r.Get("/", updates.List)
		r.Put("/{id}", updates.Update)
	})

	r.Route("/business-areas", func(r chi.Router) {
		r.Get("/", areas.List)
		r.Post("/", areas.Create)
		r.Put("/{name}/partner", areas.SetPartner)
	})

	r.Get("/dashboard", reports.Dashboard)
	r.Get("/export", reports.Export)

	return r
}
