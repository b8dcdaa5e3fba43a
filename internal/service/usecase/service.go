package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

type useCaseRepo interface {
	Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UseCase, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UseCaseUpdateParams) (*domain.UseCase, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error)
	List(ctx context.Context, f domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error)
}

type accountRepo interface {
	Exists(ctx context.Context, bsnid string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages use cases attached to accounts.
type Service struct {
	useCases useCaseRepo
	accounts accountRepo
	tx       txManager
	catalog  domain.PlatformCatalog
	log      *slog.Logger
}

// NewService creates a new UseCase service.
func NewService(
	log *slog.Logger,
	useCases useCaseRepo,
	accounts accountRepo,
	tx txManager,
	catalog domain.PlatformCatalog,
) *Service {
	return &Service{
		useCases: useCases,
		accounts: accounts,
		tx:       tx,
		catalog:  catalog,
		log:      log.With("service", "usecase"),
	}
}
