package update

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	postgres "github.com/heartmarshall/edip-crm/internal/adapter/postgres"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

func newMock(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock, postgres.NewTables("crm", "edip")), mock
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)
	id := uuid.New()
	now := time.Now()
	d := date(t, "2024-07-08")

	mock.ExpectQuery(`INSERT INTO "crm"."edip_updates"`).
		WithArgs(id, "b-1", "Mike Chen", "Databricks", "Pipeline optimized", d).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, "b-1", "Mike Chen", "Databricks", "Pipeline optimized", d, now, now))

	got, err := repo.Create(context.Background(), &domain.Update{
		ID: id, AccountBSNID: "b-1", Author: "Mike Chen", Platform: domain.PlatformDatabricks,
		Description: "Pipeline optimized", EffectiveDate: d.Add(15 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !got.EffectiveDate.Equal(d) {
		t.Errorf("effective date = %v, want %v", got.EffectiveDate, d)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListByAccount_Order(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE account_bsnid = \$1 ORDER BY update_date DESC, created_at DESC`).
		WithArgs("b-1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), "b-1", "a", "Databricks", "x", date(t, "2024-07-08"), now, now).
			AddRow(uuid.New(), "b-1", "a", "Databricks", "y", date(t, "2024-07-07"), now, now))

	got, err := repo.ListByAccount(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("ListByAccount: %v", err)
	}
	if len(got) != 2 || got[0].Description != "x" {
		t.Fatalf("ListByAccount = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_List_ByAuthor(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)
	now := time.Now()

	cols := append(append([]string{}, columns...), "team", "business_area")
	mock.ExpectQuery(`FROM "crm"."edip_updates" u LEFT JOIN "crm"."edip_accounts" a .+ WHERE u.author = \$1`).
		WithArgs("Lisa Wang").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(uuid.New(), "orphan", "Lisa Wang", "Power Platform", "x", date(t, "2024-07-01"), now, now, "", ""))

	got, err := repo.List(context.Background(), domain.UpdateFilter{Author: "Lisa Wang"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Team != "" {
		t.Fatalf("List = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE "crm"."edip_updates" SET author = \$1, update_date = \$2, platform = \$3, description = \$4`).
		WithArgs("a", pgxmock.AnyArg(), "Snowflake", "d", id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), id, domain.UpdateUpdateParams{
		Author: "a", EffectiveDate: time.Now(), Platform: domain.PlatformSnowflake, Description: "d",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByID_PassesUUID(t *testing.T) {
	t.Parallel()
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM "crm"."edip_updates" WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
