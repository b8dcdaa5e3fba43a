// Package usecase implements the UseCase repository using PostgreSQL.
package usecase

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
	"id", "account_bsnid", "problem", "solution", "leader", "status",
	"enablement_tier", "platform", "created_at", "updated_at",
}

// Repo provides use case persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.DB
	table    string
	accounts string
}

// New creates a new use case repository.
func New(db postgres.DB, tables postgres.Tables) *Repo {
	return &Repo{db: db, table: tables.UseCases, accounts: tables.Accounts}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	AccountBSNID   string    `db:"account_bsnid"`
	Problem        string    `db:"problem"`
	Solution       string    `db:"solution"`
	Leader         string    `db:"leader"`
	Status         string    `db:"status"`
	EnablementTier string    `db:"enablement_tier"`
	Platform       string    `db:"platform"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`

	// Filled by List only.
	Team         string `db:"team"`
	BusinessArea string `db:"business_area"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a use case. Returns domain.ErrNotFound for an unknown id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UseCase, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get use case: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "use_case", id)
	}
	return toDomain(rw), nil
}

// ListByAccount returns all use cases of an account, newest first.
func (r *Repo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where(sq.Eq{"account_bsnid": bsnid}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list use cases: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "use_case", bsnid)
	}

	out := make([]*domain.UseCase, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// List returns use cases of every account that pass f, newest first, each
// annotated with its account's team and business area. Orphan use cases are
// kept with empty account fields.
func (r *Repo) List(ctx context.Context, f domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "u." + c
	}

	b := postgres.Builder().
		Select(qualified...).
		Columns("COALESCE(a.team, '') AS team", "COALESCE(a.business_area, '') AS business_area").
		From(r.table + " u").
		LeftJoin(r.accounts + " a ON a.bsnid = u.account_bsnid").
		OrderBy("u.created_at DESC", "u.id")

	eq := sq.Eq{}
	if f.BusinessArea != "" {
		eq["a.business_area"] = f.BusinessArea
	}
	if f.Status != "" {
		eq["u.status"] = string(f.Status)
	}
	if f.EnablementTier != "" {
		eq["u.enablement_tier"] = string(f.EnablementTier)
	}
	if f.Platform != "" {
		eq["u.platform"] = string(f.Platform)
	}
	if len(eq) > 0 {
		b = b.Where(eq)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all use cases: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "use_case", "list")
	}

	out := make([]*domain.UseCaseWithAccount, len(rows))
	for i, rw := range rows {
		out[i] = &domain.UseCaseWithAccount{
			UseCase:      *toDomain(rw),
			Team:         rw.Team,
			BusinessArea: rw.BusinessArea,
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a use case.
func (r *Repo) Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error) {
	id := uc.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(r.table).
		Columns(columns...).
		Values(
			id, uc.AccountBSNID, uc.Problem, uc.Solution, uc.Leader, string(uc.Status),
			string(uc.EnablementTier), string(uc.Platform), sq.Expr("now()"), sq.Expr("now()"),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create use case: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "use_case", id)
	}
	return toDomain(rw), nil
}

// Update overwrites every mutable field of a use case.
// Returns domain.ErrNotFound for an unknown id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.UseCaseUpdateParams) (*domain.UseCase, error) {
	query, args, err := postgres.Builder().
		Update(r.table).
		Set("problem", p.Problem).
		Set("solution", p.Solution).
		Set("leader", p.Leader).
		Set("status", string(p.Status)).
		Set("enablement_tier", string(p.EnablementTier)).
		Set("platform", string(p.Platform)).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update use case: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "use_case", id)
	}
	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) *domain.UseCase {
	return &domain.UseCase{
		ID:             rw.ID,
		AccountBSNID:   rw.AccountBSNID,
		Problem:        rw.Problem,
		Solution:       rw.Solution,
		Leader:         rw.Leader,
		Status:         domain.UseCaseStatus(rw.Status),
		EnablementTier: normalizeTier(rw.EnablementTier),
		Platform:       domain.Platform(rw.Platform),
		CreatedAt:      rw.CreatedAt,
		UpdatedAt:      rw.UpdatedAt,
	}
}

// normalizeTier maps stored legacy tier names onto the canonical vocabulary.
func normalizeTier(s string) domain.EnablementTier {
	if t, ok := domain.ParseEnablementTier(s); ok {
		return t
	}
	return domain.EnablementTier(s)
}
