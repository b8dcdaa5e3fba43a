package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByBSNID(ctx context.Context, bsnid string) (*domain.Account, error)
	Exists(ctx context.Context, bsnid string) (bool, error)
	Search(ctx context.Context, term string) ([]*domain.Account, error)
	AppendLink(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error)
}

type platformRepo interface {
	Upsert(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error)
}

type businessAreaRepo interface {
	Get(ctx context.Context, name string) (*domain.BusinessArea, error)
}

type useCaseRepo interface {
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error)
}

type updateRepo interface {
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages accounts, their link lists and platform onboarding.
type Service struct {
	accounts  accountRepo
	platforms platformRepo
	areas     businessAreaRepo
	useCases  useCaseRepo
	updates   updateRepo
	tx        txManager
	catalog   domain.PlatformCatalog
	newBSNID  func() string
	log       *slog.Logger
}

// NewService creates a new Account service.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	platforms platformRepo,
	areas businessAreaRepo,
	useCases useCaseRepo,
	updates updateRepo,
	tx txManager,
	catalog domain.PlatformCatalog,
) *Service {
	return &Service{
		accounts:  accounts,
		platforms: platforms,
		areas:     areas,
		useCases:  useCases,
		updates:   updates,
		tx:        tx,
		catalog:   catalog,
		newBSNID:  newBSNID,
		log:       log.With("service", "account"),
	}
}
