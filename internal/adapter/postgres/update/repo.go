// Package update implements the account Update repository using PostgreSQL.
package update

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
	"id", "account_bsnid", "author", "platform", "description", "update_date", "created_at", "updated_at",
}

// Repo provides update persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.DB
	table    string
	accounts string
}

// New creates a new update repository.
func New(db postgres.DB, tables postgres.Tables) *Repo {
	return &Repo{db: db, table: tables.Updates, accounts: tables.Accounts}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	AccountBSNID string    `db:"account_bsnid"`
	Author       string    `db:"author"`
	Platform     string    `db:"platform"`
	Description  string    `db:"description"`
	UpdateDate   time.Time `db:"update_date"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	// Filled by List only.
	Team         string `db:"team"`
	BusinessArea string `db:"business_area"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an update. Returns domain.ErrNotFound for an unknown id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "update", id)
	}
	return toDomain(rw), nil
}

// ListByAccount returns the account's updates by effective date, newest
// first, ties broken by creation time.
func (r *Repo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where(sq.Eq{"account_bsnid": bsnid}).
		OrderBy("update_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list updates: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "update", bsnid)
	}

	out := make([]*domain.Update, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// List returns updates of every account that pass f in display order, each
// annotated with its account's team and business area.
func (r *Repo) List(ctx context.Context, f domain.UpdateFilter) ([]*domain.UpdateWithAccount, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "u." + c
	}

	b := postgres.Builder().
		Select(qualified...).
		Columns("COALESCE(a.team, '') AS team", "COALESCE(a.business_area, '') AS business_area").
		From(r.table + " u").
		LeftJoin(r.accounts + " a ON a.bsnid = u.account_bsnid").
		OrderBy("u.update_date DESC", "u.created_at DESC")

	eq := sq.Eq{}
	if f.BusinessArea != "" {
		eq["a.business_area"] = f.BusinessArea
	}
	if f.Platform != "" {
		eq["u.platform"] = string(f.Platform)
	}
	if f.Author != "" {
		eq["u.author"] = f.Author
	}
	if len(eq) > 0 {
		b = b.Where(eq)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all updates: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "update", "list")
	}

	out := make([]*domain.UpdateWithAccount, len(rows))
	for i, rw := range rows {
		out[i] = &domain.UpdateWithAccount{
			Update:       *toDomain(rw),
			Team:         rw.Team,
			BusinessArea: rw.BusinessArea,
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an update.
func (r *Repo) Create(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(r.table).
		Columns(columns...).
		Values(
			id, u.AccountBSNID, u.Author, string(u.Platform), u.Description,
			domain.DateOf(u.EffectiveDate), sq.Expr("now()"), sq.Expr("now()"),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "update", id)
	}
	return toDomain(rw), nil
}

// Update overwrites every mutable field of an update.
// Returns domain.ErrNotFound for an unknown id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.UpdateUpdateParams) (*domain.Update, error) {
	query, args, err := postgres.Builder().
		Update(r.table).
		Set("author", p.Author).
		Set("update_date", domain.DateOf(p.EffectiveDate)).
		Set("platform", string(p.Platform)).
		Set("description", p.Description).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "update", id)
	}
	return toDomain(rw), nil
}

func toDomain(rw row) *domain.Update {
	return &domain.Update{
		ID:            rw.ID,
		AccountBSNID:  rw.AccountBSNID,
		Author:        rw.Author,
		EffectiveDate: domain.DateOf(rw.UpdateDate),
		Platform:      domain.Platform(rw.Platform),
		Description:   rw.Description,
		CreatedAt:     rw.CreatedAt,
		UpdatedAt:     rw.UpdatedAt,
	}
}
