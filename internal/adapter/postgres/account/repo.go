// Package account implements the Account repository using PostgreSQL.
// Link lists are stored as JSON array text and appended to in place.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/edip-crm/internal/adapter/postgres"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var columns = []string{
	"bsnid", "team", "business_area", "vp", "admin", "primary_it_partner",
	"azure_devops_links", "artifacts_folder_links", "created_at", "updated_at",
}

var linkColumns = map[domain.LinkKind]string{
	domain.LinkKindAzureDevOps:     "azure_devops_links",
	domain.LinkKindArtifactsFolder: "artifacts_folder_links",
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.DB
	table string
}

// New creates a new account repository.
func New(db postgres.DB, tables postgres.Tables) *Repo {
	return &Repo{db: db, table: tables.Accounts}
}

type row struct {
	BSNID                string    `db:"bsnid"`
	Team                 string    `db:"team"`
	BusinessArea         string    `db:"business_area"`
	VP                   string    `db:"vp"`
	Admin                string    `db:"admin"`
	PrimaryITPartner     string    `db:"primary_it_partner"`
	AzureDevOpsLinks     string    `db:"azure_devops_links"`
	ArtifactsFolderLinks string    `db:"artifacts_folder_links"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByBSNID returns an account. Returns domain.ErrNotFound for an unknown BSNID.
func (r *Repo) GetByBSNID(ctx context.Context, bsnid string) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(r.table).
		Where(sq.Eq{"bsnid": bsnid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get account: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", bsnid)
	}
	return toDomain(rw), nil
}

// Exists reports whether an account with the BSNID exists.
func (r *Repo) Exists(ctx context.Context, bsnid string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(r.table).
		Where(sq.Eq{"bsnid": bsnid}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build account exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "account", bsnid)
	}
	return exists, nil
}

// Search returns accounts whose team, business area, VP, admin or IT partner
// contains the normalized term, ordered by team then BSNID. An empty term
// returns every account.
func (r *Repo) Search(ctx context.Context, term string) ([]*domain.Account, error) {
	b := postgres.Builder().
		Select(columns...).
		From(r.table).
		OrderBy("team", "bsnid")

	if term != "" {
		pattern := "%" + escapeLike(term) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"team": pattern},
			sq.ILike{"business_area": pattern},
			sq.ILike{"vp": pattern},
			sq.ILike{"admin": pattern},
			sq.ILike{"primary_it_partner": pattern},
		})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search accounts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", "search")
	}

	accounts := make([]*domain.Account, len(rows))
	for i, rw := range rows {
		accounts[i] = toDomain(rw)
	}
	return accounts, nil
}

// Count returns the number of accounts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().Select("count(*)").From(r.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count accounts: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "account", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account. Returns domain.ErrAlreadyExists if the BSNID
// is taken.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Insert(r.table).
		Columns(columns...).
		Values(
			a.BSNID, a.Team, a.BusinessArea, a.VP, a.Admin, a.PrimaryITPartner,
			encodeLinks(a.AzureDevOpsLinks), encodeLinks(a.ArtifactsFolderLinks),
			sq.Expr("now()"), sq.Expr("now()"),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create account: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", a.BSNID)
	}
	return toDomain(rw), nil
}

// AppendLink appends url to the JSON link list selected by kind in a single
// statement. Returns domain.ErrNotFound for an unknown BSNID.
func (r *Repo) AppendLink(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error) {
	col, ok := linkColumns[kind]
	if !ok {
		return nil, domain.NewValidationError("kind", "unknown link kind")
	}

	appendExpr := fmt.Sprintf("(COALESCE(NULLIF(%s, ''), '[]')::jsonb || jsonb_build_array(?::text))::text", col)

	query, args, err := postgres.Builder().
		Update(r.table).
		Set(col, sq.Expr(appendExpr, url)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"bsnid": bsnid}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build append link: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", bsnid)
	}
	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) *domain.Account {
	return &domain.Account{
		BSNID:                rw.BSNID,
		Team:                 rw.Team,
		BusinessArea:         rw.BusinessArea,
		VP:                   rw.VP,
		Admin:                rw.Admin,
		PrimaryITPartner:     rw.PrimaryITPartner,
		AzureDevOpsLinks:     decodeLinks(rw.AzureDevOpsLinks),
		ArtifactsFolderLinks: decodeLinks(rw.ArtifactsFolderLinks),
		CreatedAt:            rw.CreatedAt,
		UpdatedAt:            rw.UpdatedAt,
	}
}

func encodeLinks(links []string) string {
	if len(links) == 0 {
		return "[]"
	}
	b, err := json.Marshal(links)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeLinks parses a JSON array. Text that is not a JSON array is a single
// legacy link.
func decodeLinks(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	var links []string
	if err := json.Unmarshal([]byte(s), &links); err != nil {
		return []string{s}
	}
	if links == nil {
		return []string{}
	}
	return links
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
