package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type JournalRepository struct {
	DB *sql.DB
}

func scanJournal(row rowScanner) (models.Journal, error) {
	var (
		j     models.Journal
		cover sql.NullString
	)
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Date, &cover); err != nil {
		return models.Journal{}, err
	}
	j.Cover = cover.String
	return j, nil
}

func (r JournalRepository) Create(ctx context.Context, j *models.Journal) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO journals (title, description, location, date, cover)
		VALUES (?, ?, ?, ?, ?)`,
		j.Title, j.Description, j.Location, j.Date, intdb.NullIfEmpty(j.Cover))
	if err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}
	j.ID = id
	return nil
}

func (r JournalRepository) GetByID(ctx context.Context, id int64) (models.Journal, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, title, description, location, date, cover FROM journals WHERE id=? LIMIT 1`, id)
	j, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Journal{}, domain.NotFoundError{Resource: "journal", Err: err}
		}
		return models.Journal{}, fmt.Errorf("get journal: %w", err)
	}
	return j, nil
}

// ListRecent returns up to limit journals, most recent first.
func (r JournalRepository) ListRecent(ctx context.Context, limit int) ([]models.Journal, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, title, description, location, date, cover FROM journals ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	out := []models.Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
