package db

import (
	"database/sql"
	"time"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullDate stores an optional calendar date, truncated to midnight UTC.
func NullDate(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d
}

// DatePtr converts a scanned nullable date back to a pointer.
func DatePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	d := time.Date(nt.Time.Year(), nt.Time.Month(), nt.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// HasTable reports whether table exists for the given driver.
func HasTable(q QueryRower, driver, table string) bool {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`
	if driver == "sqlite3" {
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? LIMIT 1`
	}

	var name sql.NullString
	if err := q.QueryRow(query, table).Scan(&name); err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
