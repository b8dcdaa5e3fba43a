// Package platformstatus implements the per-(account, platform) onboarding
// status repository using PostgreSQL.
package platformstatus

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/edip-crm/internal/adapter/postgres"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var columns = []string{
	"id", "account_bsnid", "platform", "status", "enablement_tier", "created_at", "updated_at",
}

// Repo provides platform status persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.DB
	table string
}

// New creates a new platform status repository.
func New(db postgres.DB, tables postgres.Tables) *Repo {
	return &Repo{db: db, table: tables.PlatformStatuses}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	AccountBSNID   string    `db:"account_bsnid"`
	Platform       string    `db:"platform"`
	Status         string    `db:"status"`
	EnablementTier *string   `db:"enablement_tier"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// upsertSuffix keeps the stored tier when the new row carries none.
const upsertSuffix = `ON CONFLICT (account_bsnid, platform) DO UPDATE SET
    status = EXCLUDED.status,
    enablement_tier = COALESCE(EXCLUDED.enablement_tier, ps.enablement_tier),
    updated_at = now()
RETURNING `

// Upsert inserts ps or, when the (account, platform) pair exists, overwrites
// its status and, if ps carries one, its enablement tier.
func (r *Repo) Upsert(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error) {
	id := ps.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var tier *string
	if ps.EnablementTier != nil {
		t := string(*ps.EnablementTier)
		tier = &t
	}

	query, args, err := postgres.Builder().
		Insert(r.table+" AS ps").
		Columns(columns...).
		Values(id, ps.AccountBSNID, string(ps.Platform), string(ps.Status), tier, sq.Expr("now()"), sq.Expr("now()")).
		Suffix(upsertSuffix + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert platform status: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "platform_status", ps.AccountBSNID+"/"+string(ps.Platform))
	}
	return toDomain(rw), nil
}

// ListByAccount returns the account's platform statuses ordered by platform.
func (r *Repo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error) {
	return r.list(ctx, sq.Eq{"account_bsnid": bsnid}, "platform")
}

// List returns every platform status ordered by account, then platform.
func (r *Repo) List(ctx context.Context) ([]*domain.PlatformStatus, error) {
	return r.list(ctx, nil, "account_bsnid", "platform")
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, orderBy ...string) ([]*domain.PlatformStatus, error) {
	b := postgres.Builder().
		Select(columns...).
		From(r.table).
		OrderBy(orderBy...)
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list platform statuses: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "platform_status", "list")
	}

	out := make([]*domain.PlatformStatus, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

func toDomain(rw row) *domain.PlatformStatus {
	ps := &domain.PlatformStatus{
		ID:           rw.ID,
		AccountBSNID: rw.AccountBSNID,
		Platform:     domain.Platform(rw.Platform),
		Status:       domain.OnboardingStatus(rw.Status),
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
	if rw.EnablementTier != nil && *rw.EnablementTier != "" {
		t, ok := domain.ParseEnablementTier(*rw.EnablementTier)
		if !ok {
			t = domain.EnablementTier(*rw.EnablementTier)
		}
		ps.EnablementTier = &t
	}
	return ps
}
