// Package businessarea implements the business area registry using PostgreSQL.
package businessarea

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/edip-crm/internal/adapter/postgres"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var columns = []string{"name", "default_it_partner", "created_at", "updated_at"}

// Repo provides registry persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.DB
	table string
}

// New creates a new business area repository.
func New(db postgres.DB, tables postgres.Tables) *Repo {
	return &Repo{db: db, table: tables.BusinessAreas}
}

type row struct {
	Name             string    `db:"name"`
	DefaultITPartner string    `db:"default_it_partner"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Get returns a registry entry. Returns domain.ErrNotFound for an unknown name.
func (r *Repo) Get(ctx context.Context, name string) (*domain.BusinessArea, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get business area: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "business_area", name)
	}
	return toDomain(rw), nil
}

// List returns all entries ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.BusinessArea, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list business areas: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "business_area", "list")
	}

	out := make([]*domain.BusinessArea, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// Create adds a registry entry. Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, name, partner string) (*domain.BusinessArea, error) {
	return r.insert(ctx, name, partner, "")
}

// Upsert sets the default IT partner of a business area, creating the entry
// if needed.
func (r *Repo) Upsert(ctx context.Context, name, partner string) (*domain.BusinessArea, error) {
	return r.insert(ctx, name, partner,
		"ON CONFLICT (name) DO UPDATE SET default_it_partner = EXCLUDED.default_it_partner, updated_at = now() ")
}

func (r *Repo) insert(ctx context.Context, name, partner, onConflict string) (*domain.BusinessArea, error) {
	query, args, err := postgres.Builder().
		Insert(r.table).
		Columns(columns...).
		Values(name, partner, sq.Expr("now()"), sq.Expr("now()")).
		Suffix(onConflict + "RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert business area: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "business_area", name)
	}
	return toDomain(rw), nil
}

func toDomain(rw row) *domain.BusinessArea {
	return &domain.BusinessArea{
		Name:             rw.Name,
		DefaultITPartner: rw.DefaultITPartner,
		CreatedAt:        rw.CreatedAt,
		UpdatedAt:        rw.UpdatedAt,
	}
}
