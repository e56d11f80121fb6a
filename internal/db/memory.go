package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenMemory opens a private in-memory sqlite database with the schema applied.
// The pool is pinned to one connection so every query sees the same database.
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	if err := Migrate(ctx, conn, "sqlite3"); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
