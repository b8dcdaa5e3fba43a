// Package activity records dated progress notes (updates) on accounts.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

type updateRepo interface {
	Create(ctx context.Context, u *domain.Update) (*domain.Update, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UpdateUpdateParams) (*domain.Update, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error)
	List(ctx context.Context, f domain.UpdateFilter) ([]*domain.UpdateWithAccount, error)
}

type accountRepo interface {
	Exists(ctx context.Context, bsnid string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages account updates.
type Service struct {
	updates  updateRepo
	accounts accountRepo
	tx       txManager
	catalog  domain.PlatformCatalog
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new Activity service.
func NewService(
	log *slog.Logger,
	updates updateRepo,
	accounts accountRepo,
	tx txManager,
	catalog domain.PlatformCatalog,
) *Service {
	return &Service{
		updates:  updates,
		accounts: accounts,
		tx:       tx,
		catalog:  catalog,
		now:      time.Now,
		log:      log.With("service", "activity"),
	}
}
