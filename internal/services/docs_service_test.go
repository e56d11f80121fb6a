package services

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsServiceBookingConfirmation(t *testing.T) {
	conn := newDB(t)
	owner := seedUser(t, conn, "owner")
	other := seedUser(t, conn, "other")
	repo := repositories.BookingRepository{DB: conn}
	ctx := context.Background()

	depart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC)
	b := models.TripBooking{
		UserID:        owner.ID,
		FullName:      "Tester",
		Email:         "t@example.com",
		Phone:         "0800",
		Destination:   "Cape Town / Winelands",
		DepartDate:    &depart,
		Adults:        2,
		Cabin:         models.DefaultCabin,
		Budget:        1200,
		Accommodation: "Hotel",
		PaymentMethod: "card",
		Status:        models.StatusConfirmed,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	require.NoError(t, repo.Create(ctx, &b))

	svc := DocsService{Bookings: repo, Now: fixedClock(time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC))}

	pdf, filename, err := svc.BookingConfirmation(ctx, owner.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF")
	assert.Equal(t, "BOOKING_"+strconv.FormatInt(b.ID, 10)+"_Cape_Town___Winelands.pdf", filename)

	_, _, err = svc.BookingConfirmation(ctx, other.ID, b.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestSafeFilenamePartKeepsRunesWhole(t *testing.T) {
	got := safeFilenamePart(strings.Repeat("Ålesund ", 10))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 40, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(got, "Ålesund_Ålesund_"))

	assert.Equal(t, "NA", safeFilenamePart("  "))
	assert.Equal(t, "Kyoto", safeFilenamePart("Kyoto"))
}
