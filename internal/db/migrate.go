package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed schema_mysql.sql
	schemaMySQL string

	//go:embed schema_sqlite.sql
	schemaSQLite string
)

// Migrate creates the application tables when they do not exist yet.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	schema := schemaMySQL
	if driver == "sqlite3" {
		schema = schemaSQLite
	}

	for _, stmt := range splitStatements(schema) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func splitStatements(schema string) []string {
	out := []string{}
	for _, part := range strings.Split(schema, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
