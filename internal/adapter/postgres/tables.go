package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Tables holds the quoted, schema-qualified names of every CRM table.
type Tables struct {
	Schema           string
	Prefix           string
	Accounts         string
	UseCases         string
	PlatformStatuses string
	Updates          string
	BusinessAreas    string
}

// NewTables derives table names from a schema and a table prefix.
func NewTables(schema, prefix string) Tables {
	name := func(suffix string) string {
		return pgx.Identifier{schema, prefix + suffix}.Sanitize()
	}
	return Tables{
		Schema:           schema,
		Prefix:           prefix,
		Accounts:         name("_accounts"),
		UseCases:         name("_use_cases"),
		PlatformStatuses: name("_platforms_status"),
		Updates:          name("_updates"),
		BusinessAreas:    name("_business_areas"),
	}
}

// VersionTable is the goose bookkeeping table for the schema bootstrap.
func (t Tables) VersionTable() string {
	return t.Schema + "." + t.Prefix + "_schema_version"
}

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
