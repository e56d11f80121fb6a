package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) (*RootOptions, *sql.DB) {
	t.Helper()
	conn, err := intdb.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &RootOptions{
		LoadEnv: func() intconfig.Env { return intconfig.Env{DBDriver: "sqlite3"} },
		OpenDB:  func(intconfig.Env) (*sql.DB, error) { return conn, nil },
	}, conn
}

func seedBookings(t *testing.T, conn *sql.DB) {
	t.Helper()
	ctx := context.Background()
	u := models.User{Username: "ada", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	require.NoError(t, repositories.UserRepository{DB: conn}.Create(ctx, &u))

	repo := repositories.BookingRepository{DB: conn}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, dest := range []string{"Paris", "Kyoto"} {
		status := models.StatusPending
		if dest == "Paris" {
			status = models.StatusConfirmed
		}
		ts := base.Add(time.Duration(i) * time.Hour)
		b := models.TripBooking{
			UserID: u.ID, FullName: "Ada", Email: "ada@example.com", Phone: "1",
			Destination: dest, Adults: 1, Cabin: models.DefaultCabin, Budget: 1000,
			Accommodation: "Hotel", Status: status, CreatedAt: ts, UpdatedAt: ts,
		}
		require.NoError(t, repo.Create(ctx, &b))
	}
}

func run(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{{"serve"}, {"migrate"}, {"bookings", "list"}, {"bookings", "cancel"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}

func TestInvalidFormat(t *testing.T) {
	opts, _ := testOptions(t)
	_, err := run(t, opts, "bookings", "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestMigrate(t *testing.T) {
	opts, _ := testOptions(t)
	out, err := run(t, opts, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date (sqlite3)")
}

func TestBookingsList(t *testing.T) {
	opts, conn := testOptions(t)
	seedBookings(t, conn)

	out, err := run(t, opts, "bookings", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "Kyoto")
	assert.Contains(t, out, "1,680")

	out, err = run(t, opts, "bookings", "list", "--status", "pending", "--format", "json")
	require.NoError(t, err)
	var rows []bookingRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Kyoto", rows[0].Destination)
	assert.Equal(t, int64(1680), rows[0].Total)

	_, err = run(t, opts, "bookings", "list", "--status", "lost")
	require.Error(t, err)

	out, err = run(t, opts, "bookings", "list", "--search", "nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "no bookings")
}

func TestBookingsCancel(t *testing.T) {
	opts, conn := testOptions(t)
	seedBookings(t, conn)

	out, err := run(t, opts, "bookings", "cancel", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "booking 1 cancelled")

	var status string
	require.NoError(t, conn.QueryRow(`SELECT status FROM trip_bookings WHERE id=1`).Scan(&status))
	assert.Equal(t, "cancelled", status)

	_, err = run(t, opts, "bookings", "cancel", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking not found")

	_, err = run(t, opts, "bookings", "cancel", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking id")
}
