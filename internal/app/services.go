package app

import (
	"log/slog"

	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/seed"
	"github.com/heartmarshall/edip-crm/internal/service/account"
	"github.com/heartmarshall/edip-crm/internal/service/activity"
	"github.com/heartmarshall/edip-crm/internal/service/businessarea"
	"github.com/heartmarshall/edip-crm/internal/service/report"
	"github.com/heartmarshall/edip-crm/internal/service/usecase"
)

// Services holds the CRM services built over one Backend.
type Services struct {
	Accounts      *account.Service
	UseCases      *usecase.Service
	Updates       *activity.Service
	BusinessAreas *businessarea.Service
	Reports       *report.Service

	backend *Backend
	log     *slog.Logger
}

// NewServices wires every service to the repositories of b.
func NewServices(log *slog.Logger, b *Backend, cfg config.CRMConfig) *Services {
	catalog := domain.NewPlatformCatalog(cfg.Platforms())

	return &Services{
		Accounts:      account.NewService(log, b.Accounts, b.Platforms, b.Areas, b.UseCases, b.Updates, b.Tx, catalog),
		UseCases:      usecase.NewService(log, b.UseCases, b.Accounts, b.Tx, catalog),
		Updates:       activity.NewService(log, b.Updates, b.Accounts, b.Tx, catalog),
		BusinessAreas: businessarea.NewService(log, b.Areas, b.Tx),
		Reports:       report.NewService(log, b.Tx, b.Accounts, b.UseCases, b.Updates, b.Platforms, b.Areas, cfg.RecentUpdatesLimit),
		backend:       b,
		log:           log,
	}
}

// Seeder returns a seeder that writes the sample dataset through s.
func (s *Services) Seeder() *seed.Seeder {
	return seed.New(s.log, s.Accounts, s.UseCases, s.Updates, s.BusinessAreas, s.backend.Tx)
}
