package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// NewUnconfiguredBackend returns a Backend whose every operation, Ping
// included, fails with cause. cause must wrap domain.ErrConfiguration.
// The server keeps running on it and answers 503 until it is configured.
func NewUnconfiguredBackend(kind string, cause error) *Backend {
	u := unconfigured{err: cause}
	return &Backend{
		Kind:      kind,
		Accounts:  unconfiguredAccounts{u},
		UseCases:  unconfiguredUseCases{u},
		Updates:   unconfiguredUpdates{u},
		Platforms: unconfiguredPlatforms{u},
		Areas:     unconfiguredAreas{u},
		Tx:        u,
		ping:      func(context.Context) error { return cause },
	}
}

type unconfigured struct{ err error }

func (u unconfigured) RunInTx(context.Context, func(context.Context) error) error { return u.err }

func (u unconfigured) RunInSnapshot(context.Context, func(context.Context) error) error {
	return u.err
}

type unconfiguredAccounts struct{ unconfigured }

func (u unconfiguredAccounts) Create(context.Context, *domain.Account) (*domain.Account, error) {
	return nil, u.err
}

func (u unconfiguredAccounts) GetByBSNID(context.Context, string) (*domain.Account, error) {
	return nil, u.err
}

func (u unconfiguredAccounts) Exists(context.Context, string) (bool, error) { return false, u.err }

func (u unconfiguredAccounts) Search(context.Context, string) ([]*domain.Account, error) {
	return nil, u.err
}

func (u unconfiguredAccounts) AppendLink(context.Context, string, domain.LinkKind, string) (*domain.Account, error) {
	return nil, u.err
}

func (u unconfiguredAccounts) Count(context.Context) (int, error) { return 0, u.err }

type unconfiguredUseCases struct{ unconfigured }

func (u unconfiguredUseCases) Create(context.Context, *domain.UseCase) (*domain.UseCase, error) {
	return nil, u.err
}

func (u unconfiguredUseCases) GetByID(context.Context, uuid.UUID) (*domain.UseCase, error) {
	return nil, u.err
}

func (u unconfiguredUseCases) Update(context.Context, uuid.UUID, domain.UseCaseUpdateParams) (*domain.UseCase, error) {
	return nil, u.err
}

func (u unconfiguredUseCases) ListByAccount(context.Context, string) ([]*domain.UseCase, error) {
	return nil, u.err
}

func (u unconfiguredUseCases) List(context.Context, domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error) {
	return nil, u.err
}

type unconfiguredUpdates struct{ unconfigured }

func (u unconfiguredUpdates) Create(context.Context, *domain.Update) (*domain.Update, error) {
	return nil, u.err
}

func (u unconfiguredUpdates) GetByID(context.Context, uuid.UUID) (*domain.Update, error) {
	return nil, u.err
}

func (u unconfiguredUpdates) Update(context.Context, uuid.UUID, domain.UpdateUpdateParams) (*domain.Update, error) {
	return nil, u.err
}

func (u unconfiguredUpdates) ListByAccount(context.Context, string) ([]*domain.Update, error) {
	return nil, u.err
}

func (u unconfiguredUpdates) List(context.Context, domain.UpdateFilter) ([]*domain.UpdateWithAccount, error) {
	return nil, u.err
}

type unconfiguredPlatforms struct{ unconfigured }

func (u unconfiguredPlatforms) Upsert(context.Context, *domain.PlatformStatus) (*domain.PlatformStatus, error) {
	return nil, u.err
}

func (u unconfiguredPlatforms) ListByAccount(context.Context, string) ([]*domain.PlatformStatus, error) {
	return nil, u.err
}

func (u unconfiguredPlatforms) List(context.Context) ([]*domain.PlatformStatus, error) {
	return nil, u.err
}

type unconfiguredAreas struct{ unconfigured }

func (u unconfiguredAreas) Get(context.Context, string) (*domain.BusinessArea, error) {
	return nil, u.err
}

func (u unconfiguredAreas) Create(context.Context, string, string) (*domain.BusinessArea, error) {
	return nil, u.err
}

func (u unconfiguredAreas) Upsert(context.Context, string, string) (*domain.BusinessArea, error) {
	return nil, u.err
}

func (u unconfiguredAreas) List(context.Context) ([]*domain.BusinessArea, error) {
	return nil, u.err
}

var (
	_ AccountStore        = unconfiguredAccounts{}
	_ UseCaseStore        = unconfiguredUseCases{}
	_ UpdateStore         = unconfiguredUpdates{}
	_ PlatformStatusStore = unconfiguredPlatforms{}
	_ BusinessAreaStore   = unconfiguredAreas{}
	_ TxRunner            = unconfigured{}
)
