package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/edip-crm/internal/adapter/memory"
	"github.com/heartmarshall/edip-crm/internal/adapter/postgres"
	pgaccount "github.com/heartmarshall/edip-crm/internal/adapter/postgres/account"
	pgarea "github.com/heartmarshall/edip-crm/internal/adapter/postgres/businessarea"
	pgplatform "github.com/heartmarshall/edip-crm/internal/adapter/postgres/platformstatus"
	pgupdate "github.com/heartmarshall/edip-crm/internal/adapter/postgres/update"
	pgusecase "github.com/heartmarshall/edip-crm/internal/adapter/postgres/usecase"
	"github.com/heartmarshall/edip-crm/internal/adapter/sqlite"
	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

// ---------------------------------------------------------------------------
// Repository sets shared by every store realization
// ---------------------------------------------------------------------------

// AccountStore persists accounts.
type AccountStore interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByBSNID(ctx context.Context, bsnid string) (*domain.Account, error)
	Exists(ctx context.Context, bsnid string) (bool, error)
	Search(ctx context.Context, term string) ([]*domain.Account, error)
	AppendLink(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error)
	Count(ctx context.Context) (int, error)
}

// UseCaseStore persists use cases.
type UseCaseStore interface {
	Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UseCase, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UseCaseUpdateParams) (*domain.UseCase, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error)
	List(ctx context.Context, f domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error)
}

// UpdateStore persists account updates.
type UpdateStore interface {
	Create(ctx context.Context, u *domain.Update) (*domain.Update, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UpdateUpdateParams) (*domain.Update, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error)
	List(ctx context.Context, f domain.UpdateFilter) ([]*domain.UpdateWithAccount, error)
}

// PlatformStatusStore persists platform onboarding statuses.
type PlatformStatusStore interface {
	Upsert(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error)
	ListByAccount(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error)
	List(ctx context.Context) ([]*domain.PlatformStatus, error)
}

// BusinessAreaStore persists the business area registry.
type BusinessAreaStore interface {
	Get(ctx context.Context, name string) (*domain.BusinessArea, error)
	Create(ctx context.Context, name, partner string) (*domain.BusinessArea, error)
	Upsert(ctx context.Context, name, partner string) (*domain.BusinessArea, error)
	List(ctx context.Context) ([]*domain.BusinessArea, error)
}

// TxRunner runs fn in a single transaction. RunInSnapshot runs read-only fn
// against one consistent view of the store.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Backend is an opened entity store.
type Backend struct {
	Kind      string
	Accounts  AccountStore
	UseCases  UseCaseStore
	Updates   UpdateStore
	Platforms PlatformStatusStore
	Areas     BusinessAreaStore
	Tx        TxRunner

	ping  func(ctx context.Context) error
	close func() error
}

// Ping checks that the store is reachable.
func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

// Close releases the store's connections or files.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// NewMemoryBackend wraps a volatile in-process store.
func NewMemoryBackend(store *memory.Store) *Backend {
	return &Backend{
		Kind:      config.StoreMemory,
		Accounts:  store.Accounts(),
		UseCases:  store.UseCases(),
		Updates:   store.Updates(),
		Platforms: store.PlatformStatuses(),
		Areas:     store.BusinessAreas(),
		Tx:        store,
		ping:      store.Ping,
	}
}

// OpenBackend opens the store selected by cfg.Store.Kind.
func OpenBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.Store.Kind {
	case config.StoreMemory:
		log.InfoContext(ctx, "using in-memory store; data is lost on restart")
		return NewMemoryBackend(memory.New()), nil

	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		b := NewMemoryBackend(store.Store)
		b.Kind = config.StoreSQLite
		b.ping = store.Ping
		b.close = store.Close
		log.InfoContext(ctx, "sqlite store opened", slog.String("path", store.Path()))
		return b, nil

	case config.StorePostgres:
		if missing := cfg.Database.MissingFields(); len(missing) > 0 {
			err := fmt.Errorf("database: missing %s: %w", strings.Join(missing, ", "), domain.ErrConfiguration)
			log.WarnContext(ctx, "postgres store is not configured; every operation will fail",
				slog.String("error", err.Error()))
			return NewUnconfiguredBackend(config.StorePostgres, err), nil
		}
		return openPostgres(ctx, cfg.Database, log)
	}
	return nil, fmt.Errorf("store kind %q: %w", cfg.Store.Kind, domain.ErrConfiguration)
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Backend, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTables(cfg.Schema, cfg.TablePrefix)

	// goose needs database/sql; the pool is shared, so closing db leaves it open.
	db := stdlib.OpenDBFromPool(pool)
	err = postgres.Bootstrap(ctx, db, tables)
	db.Close() //nolint:errcheck
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	log.InfoContext(ctx, "postgres store ready",
		slog.String("schema", cfg.Schema),
		slog.String("table_prefix", cfg.TablePrefix),
	)

	return &Backend{
		Kind:      config.StorePostgres,
		Accounts:  pgaccount.New(pool, tables),
		UseCases:  pgusecase.New(pool, tables),
		Updates:   pgupdate.New(pool, tables),
		Platforms: pgplatform.New(pool, tables),
		Areas:     pgarea.New(pool, tables),
		Tx:        postgres.NewTxManager(pool),
		ping:      pool.Ping,
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}
