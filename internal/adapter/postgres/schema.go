package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// schemaStatements returns the idempotent DDL for the CRM tables.
// Link lists are JSON array text. There are no foreign keys.
func schemaStatements(t Tables) []string {
	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{t.Schema}.Sanitize()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    bsnid                  TEXT PRIMARY KEY,
    team                   TEXT NOT NULL DEFAULT '',
    business_area          TEXT NOT NULL DEFAULT '',
    vp                     TEXT NOT NULL DEFAULT '',
    admin                  TEXT NOT NULL DEFAULT '',
    primary_it_partner     TEXT NOT NULL DEFAULT '',
    azure_devops_links     TEXT NOT NULL DEFAULT '[]',
    artifacts_folder_links TEXT NOT NULL DEFAULT '[]',
    created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
)`, t.Accounts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id              UUID PRIMARY KEY,
    account_bsnid   TEXT NOT NULL,
    problem         TEXT NOT NULL DEFAULT '',
    solution        TEXT NOT NULL DEFAULT '',
    leader          TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL,
    enablement_tier TEXT NOT NULL DEFAULT '',
    platform        TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`, t.UseCases),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id              UUID PRIMARY KEY,
    account_bsnid   TEXT NOT NULL,
    platform        TEXT NOT NULL,
    status          TEXT NOT NULL,
    enablement_tier TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (account_bsnid, platform)
)`, t.PlatformStatuses),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id            UUID PRIMARY KEY,
    account_bsnid TEXT NOT NULL,
    author        TEXT NOT NULL DEFAULT '',
    platform      TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    update_date   DATE NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`, t.Updates),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name               TEXT PRIMARY KEY,
    default_it_partner TEXT NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`, t.BusinessAreas),
	}
}

// Bootstrap creates the schema and tables if they do not exist. It is a
// single goose Go migration recorded in Tables.VersionTable, so running it
// again is a no-op.
func Bootstrap(ctx context.Context, db *sql.DB, t Tables) error {
	// The version table lives in the CRM schema, which must exist first.
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{t.Schema}.Sanitize())); err != nil {
		return fmt.Errorf("create schema: %w: %w", domain.ErrBackend, err)
	}

	store, err := database.NewStore(database.DialectPostgres, t.VersionTable())
	if err != nil {
		return fmt.Errorf("goose store: %w", err)
	}

	up := &goose.GoFunc{
		RunTx: func(ctx context.Context, tx *sql.Tx) error {
			for _, stmt := range schemaStatements(t) {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			return nil
		},
	}

	provider, err := goose.NewProvider("", db, nil,
		goose.WithStore(store),
		goose.WithGoMigrations(goose.NewGoMigration(1, up, nil)),
	)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w: %w", domain.ErrBackend, err)
	}
	return nil
}
