package testhelper

import (
	"context"
	"database/sql"
	"testing"

	postgres "github.com/heartmarshall/edip-crm/internal/adapter/postgres"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM information_schema.tables WHERE table_schema = $1`,
		Tables.Schema,
	).Scan(&n)
	if err != nil {
		t.Fatalf("count tables: %v", err)
	}
	// Five CRM tables plus the goose version table.
	if n != 6 {
		t.Fatalf("expected 6 tables in schema %s, got %d", Tables.Schema, n)
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	SetupTestDB(t)

	db, err := sql.Open("pgx", DSN())
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	if err := postgres.Bootstrap(context.Background(), db, Tables); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
}
