package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const maxFilenameRunes = 40

// DocsService renders the booking confirmation as a PDF.
type DocsService struct {
	Bookings  repositories.BookingRepository
	RequestID string
	Now       Clock
}

// BookingConfirmation loads the caller's booking and renders it.
func (s DocsService) BookingConfirmation(ctx context.Context, userID, bookingID int64) ([]byte, string, error) {
	b, err := s.Bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "booking_confirmation", "booking_id", b.ID)
	return buildConfirmationPDF(b, utils.FormatDateTime(s.Now.now()))
}

func buildConfirmationPDF(b models.TripBooking, issued string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Booking #%d    Status: %s", b.ID, b.Status.Label()))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued: "+issued)
	pdf.Ln(10)

	section(pdf, "Traveller")
	rows(pdf, [][2]string{
		{"Name", safe(b.FullName, "-")},
		{"Email", safe(b.Email, "-")},
		{"Phone", safe(b.Phone, "-")},
	})

	section(pdf, "Trip")
	route := "-"
	if b.FromLocation != "" || b.ToLocation != "" {
		route = safe(b.FromLocation, "-") + " -> " + safe(b.ToLocation, "-")
	}
	rows(pdf, [][2]string{
		{"Destination", safe(b.Destination, "-")},
		{"Route", route},
		{"Depart", safe(utils.FormatOptionalDate(b.DepartDate), "-")},
		{"Return", safe(utils.FormatOptionalDate(b.ReturnDate), "-")},
		{"Travellers", fmt.Sprintf("%d adult(s), %d child(ren)", b.Adults, b.Children)},
		{"Cabin", safe(b.Cabin, "-")},
		{"Stay", safe(b.Accommodation, "-")},
		{"Trip type", safe(b.TripType, "-")},
		{"Payment", safe(b.PaymentMethod, "-")},
	})

	p := b.Pricing()
	section(pdf, "Pricing")
	rows(pdf, [][2]string{
		{"Package", utils.FormatAmount(p.Package)},
		{"Service fee", utils.FormatAmount(p.ServiceFee)},
		{"Taxes (18%)", utils.FormatAmount(p.Taxes)},
	})
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(p.Total))
	pdf.Ln(12)

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Special requests: "+b.SpecialRequests, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", b.ID, safeFilenamePart(b.Destination))
	return buf.Bytes(), filename, nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func rows(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, r := range kv {
		pdf.CellFormat(40, 6, r[0], "", 0, "", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "", false, 0, "")
	}
	pdf.Ln(4)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if r := []rune(s); len(r) > maxFilenameRunes {
		s = string(r[:maxFilenameRunes])
	}
	return s
}
