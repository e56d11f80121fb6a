package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/forms"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"
)

const (
	quickAccommodation = "Destination Package"
	quickTripType      = "Leisure"

	// RecentBookingsShown is how many bookings the plan page lists.
	RecentBookingsShown = 3
)

var (
	ErrNoDestination  = errors.New("destination or price missing")
	ErrBadPrice       = errors.New("package price is not an integer")
	ErrNothingPending = errors.New("no booking awaiting checkout")
)

type BookingService struct {
	Bookings  repositories.BookingRepository
	RequestID string
	Now       Clock
}

// Offer is a destination package picked from the catalog.
type Offer struct {
	Destination string
	Price       int64
	Pricing     utils.Pricing
}

// ResolveOffer reads the destination and price passed to the quick checkout.
func (s BookingService) ResolveOffer(destination, price string) (Offer, error) {
	destination = strings.TrimSpace(destination)
	price = strings.TrimSpace(price)
	if destination == "" || price == "" {
		return Offer{}, ErrNoDestination
	}
	n, err := strconv.ParseInt(price, 10, 64)
	if err != nil || n < 0 {
		return Offer{}, ErrBadPrice
	}
	return Offer{Destination: destination, Price: n, Pricing: utils.ComputePricing(n)}, nil
}

// QuickCheckout books a catalog package straight into confirmed status.
// Every successful call creates a new booking.
func (s BookingService) QuickCheckout(ctx context.Context, userID int64, o Offer, f forms.QuickCheckoutForm) (models.TripBooking, error) {
	if errs := f.Validate(); !errs.Empty() {
		return models.TripBooking{}, errs.Err()
	}
	depart, ret := utils.ParseDateRange(f.Dates)
	now := s.Now.now()

	b := models.TripBooking{
		UserID:        userID,
		FullName:      f.FullName,
		Email:         f.Email,
		Phone:         f.Phone,
		Destination:   o.Destination,
		DepartDate:    depart,
		ReturnDate:    ret,
		Adults:        f.Travellers(),
		Children:      0,
		Cabin:         models.DefaultCabin,
		Budget:        o.Price,
		Accommodation: quickAccommodation,
		TripType:      quickTripType,
		PaymentMethod: f.PaymentMethod,
		Status:        models.StatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Bookings.Create(ctx, &b); err != nil {
		return models.TripBooking{}, domain.InternalError{Msg: "could not save booking", Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "quick_checkout",
		"booking_id", b.ID, "user_id", userID, "total", b.TotalAmount())
	return b, nil
}

// PlanTrip stores a validated trip plan as a pending booking.
func (s BookingService) PlanTrip(ctx context.Context, userID int64, f *forms.TripPlanForm) (models.TripBooking, error) {
	b, errs := f.Validate()
	if !errs.Empty() {
		return models.TripBooking{}, errs.Err()
	}
	now := s.Now.now()
	b.UserID = userID
	b.Status = models.StatusPending
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.Bookings.Create(ctx, &b); err != nil {
		return models.TripBooking{}, domain.InternalError{Msg: "could not save booking", Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "plan_trip", "booking_id", b.ID, "user_id", userID)
	return b, nil
}

// PendingForCheckout finds the booking awaiting payment. The id remembered in
// the session wins over the one in the query string.
func (s BookingService) PendingForCheckout(ctx context.Context, userID, sessionID int64, param string) (models.TripBooking, error) {
	id := sessionID
	if id <= 0 {
		param = strings.TrimSpace(param)
		if param == "" {
			return models.TripBooking{}, ErrNothingPending
		}
		n, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return models.TripBooking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		id = n
	}
	return s.Bookings.GetPendingForUser(ctx, id, userID)
}

// ConfirmPlan records the payment method and confirms a pending booking.
func (s BookingService) ConfirmPlan(ctx context.Context, userID, bookingID int64, method string) (models.TripBooking, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return models.TripBooking{}, domain.ValidationError{Field: "payment_method", Msg: "Please choose a payment method."}
	}
	pending, err := s.Bookings.GetPendingForUser(ctx, bookingID, userID)
	if err != nil {
		return models.TripBooking{}, err
	}
	// updated_at has second precision, so it must still move when the
	// plan and its confirmation land in the same second.
	at := s.Now.now()
	if !at.After(pending.UpdatedAt) {
		at = pending.UpdatedAt.Add(time.Second)
	}
	if err := s.Bookings.ConfirmPayment(ctx, bookingID, userID, method, at); err != nil {
		return models.TripBooking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "confirm", "booking_id", bookingID, "user_id", userID, "method", method)
	return s.Bookings.GetForUser(ctx, bookingID, userID)
}

func (s BookingService) GetForUser(ctx context.Context, userID, bookingID int64) (models.TripBooking, error) {
	return s.Bookings.GetForUser(ctx, bookingID, userID)
}

func (s BookingService) RecentForUser(ctx context.Context, userID int64) ([]models.TripBooking, error) {
	return s.Bookings.ListForUser(ctx, userID, RecentBookingsShown)
}

func (s BookingService) ListForUser(ctx context.Context, userID int64) ([]models.TripBooking, error) {
	return s.Bookings.ListForUser(ctx, userID, 0)
}

// List is the operator view across all users.
func (s BookingService) List(ctx context.Context, f models.BookingFilter) ([]models.TripBooking, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown status " + strconv.Quote(string(f.Status))}
	}
	return s.Bookings.List(ctx, f)
}

// Cancel is an operator action. Cancelled bookings cannot be cancelled again.
func (s BookingService) Cancel(ctx context.Context, bookingID int64) error {
	if err := s.Bookings.Cancel(ctx, bookingID, s.Now.now()); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking_id", bookingID)
	return nil
}
