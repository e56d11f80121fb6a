package models

import (
	"fmt"
	"time"

	"travelbook/internal/utils"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Label is the human readable status shown in listings.
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

const (
	DefaultCabin    = "Economy"
	DefaultAdults   = 1
	DefaultChildren = 0
)

// TripBooking is a single trip purchase owned by one user.
type TripBooking struct {
	ID     int64
	UserID int64

	FullName string
	Email    string
	Phone    string

	Destination  string
	FromLocation string
	ToLocation   string
	DepartDate   *time.Time
	ReturnDate   *time.Time
	Adults       int
	Children     int
	Cabin        string

	Budget          int64
	Accommodation   string
	TripType        string
	SpecialRequests string

	PrefDirect      bool
	PrefWindow      bool
	PrefBreakfast   bool
	PrefAttractions bool

	PaymentMethod string
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Pricing derives fee, taxes and total from the stored budget.
func (b TripBooking) Pricing() utils.Pricing {
	return utils.ComputePricing(b.Budget)
}

func (b TripBooking) ServiceFee() int64  { return b.Pricing().ServiceFee }
func (b TripBooking) Taxes() int64       { return b.Pricing().Taxes }
func (b TripBooking) TotalAmount() int64 { return b.Pricing().Total }

func (b TripBooking) String() string {
	return fmt.Sprintf("%s - %s (%s)", b.FullName, b.Destination, b.Status.Label())
}

// BookingFilter narrows admin listings.
type BookingFilter struct {
	Status BookingStatus
	Search string
	Limit  int
}
