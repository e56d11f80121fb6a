package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

const bookingColumns = `
	id, user_id, full_name, email, phone,
	destination, from_location, to_location, depart_date, return_date,
	adults, children, cabin, budget, accommodation, trip_type, special_requests,
	pref_direct, pref_window, pref_breakfast, pref_attractions,
	payment_method, status, created_at, updated_at`

type BookingRepository struct {
	DB *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.TripBooking, error) {
	var (
		b              models.TripBooking
		depart, ret    sql.NullTime
		status         string
		adults, childs int64
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.FullName, &b.Email, &b.Phone,
		&b.Destination, &b.FromLocation, &b.ToLocation, &depart, &ret,
		&adults, &childs, &b.Cabin, &b.Budget, &b.Accommodation, &b.TripType, &b.SpecialRequests,
		&b.PrefDirect, &b.PrefWindow, &b.PrefBreakfast, &b.PrefAttractions,
		&b.PaymentMethod, &status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return models.TripBooking{}, err
	}
	b.DepartDate = intdb.DatePtr(depart)
	b.ReturnDate = intdb.DatePtr(ret)
	b.Adults = int(adults)
	b.Children = int(childs)
	b.Status = models.BookingStatus(status)
	return b, nil
}

// Create inserts the booking and sets its ID.
func (r BookingRepository) Create(ctx context.Context, b *models.TripBooking) error {
	if b.UserID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "owner is required"}
	}
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO trip_bookings (
			user_id, full_name, email, phone,
			destination, from_location, to_location, depart_date, return_date,
			adults, children, cabin, budget, accommodation, trip_type, special_requests,
			pref_direct, pref_window, pref_breakfast, pref_attractions,
			payment_method, status, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.UserID, b.FullName, b.Email, b.Phone,
		b.Destination, b.FromLocation, b.ToLocation, intdb.NullDate(b.DepartDate), intdb.NullDate(b.ReturnDate),
		b.Adults, b.Children, b.Cabin, b.Budget, b.Accommodation, b.TripType, b.SpecialRequests,
		b.PrefDirect, b.PrefWindow, b.PrefBreakfast, b.PrefAttractions,
		b.PaymentMethod, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert trip booking: %w", err)
	}
	b.ID = id
	return nil
}

// GetForUser fetches a booking only when it belongs to userID. Another user's
// booking is reported as not found.
func (r BookingRepository) GetForUser(ctx context.Context, id, userID int64) (models.TripBooking, error) {
	if id <= 0 || userID <= 0 {
		return models.TripBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM trip_bookings WHERE id=? AND user_id=? LIMIT 1`, id, userID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripBooking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.TripBooking{}, fmt.Errorf("get trip booking: %w", err)
	}
	return b, nil
}

// GetPendingForUser is GetForUser restricted to bookings still awaiting payment.
func (r BookingRepository) GetPendingForUser(ctx context.Context, id, userID int64) (models.TripBooking, error) {
	if id <= 0 || userID <= 0 {
		return models.TripBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM trip_bookings WHERE id=? AND user_id=? AND status=? LIMIT 1`,
		id, userID, string(models.StatusPending))
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripBooking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.TripBooking{}, fmt.Errorf("get pending trip booking: %w", err)
	}
	return b, nil
}

// ListForUser returns the user's bookings newest first. limit <= 0 means all.
func (r BookingRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]models.TripBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM trip_bookings WHERE user_id=? ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// List serves the admin listing with optional status and free-text filters.
func (r BookingRepository) List(ctx context.Context, f models.BookingFilter) ([]models.TripBooking, error) {
	where := []string{}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status=?")
		args = append(args, string(f.Status))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(full_name LIKE ? OR email LIKE ? OR destination LIKE ?)")
		args = append(args, like, like, like)
	}

	query := `SELECT ` + bookingColumns + ` FROM trip_bookings`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	return r.list(ctx, query, args...)
}

func (r BookingRepository) list(ctx context.Context, query string, args ...any) ([]models.TripBooking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trip bookings: %w", err)
	}
	defer rows.Close()

	out := []models.TripBooking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ConfirmPayment moves a pending booking owned by userID to confirmed.
func (r BookingRepository) ConfirmPayment(ctx context.Context, id, userID int64, method string, now time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE trip_bookings
		SET payment_method=?, status=?, updated_at=?
		WHERE id=? AND user_id=? AND status=?`,
		method, string(models.StatusConfirmed), now, id, userID, string(models.StatusPending))
	if err != nil {
		return fmt.Errorf("confirm trip booking: %w", err)
	}
	return expectOneRow(res, "booking")
}

// Cancel marks a pending or confirmed booking as cancelled.
func (r BookingRepository) Cancel(ctx context.Context, id int64, now time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE trip_bookings
		SET status=?, updated_at=?
		WHERE id=? AND status IN (?, ?)`,
		string(models.StatusCancelled), now, id, string(models.StatusPending), string(models.StatusConfirmed))
	if err != nil {
		return fmt.Errorf("cancel trip booking: %w", err)
	}
	return expectOneRow(res, "booking")
}

func expectOneRow(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
