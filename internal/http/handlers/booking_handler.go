package handlers

import (
	"errors"
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/forms"
	"travelbook/internal/services"
	"travelbook/internal/session"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

var cabins = []string{"Economy", "Premium Economy", "Business", "First"}

// CheckoutDestination handles GET and POST /checkout-destination/.
func (h *Handler) CheckoutDestination(c *gin.Context) {
	s := session.From(c)
	svc := h.bookings(c)

	offer, err := svc.ResolveOffer(
		utils.FirstNonEmpty(c.Query("destination"), c.PostForm("destination")),
		utils.FirstNonEmpty(c.Query("price"), c.PostForm("price")),
	)
	switch {
	case errors.Is(err, services.ErrNoDestination):
		s.Info("Please select a destination to continue.")
		redirect(c, "/menu/")
		return
	case errors.Is(err, services.ErrBadPrice):
		s.Error("We couldn't read that package price. Please choose a destination again.")
		redirect(c, "/menu/")
		return
	}

	user := currentUser(c)
	var f forms.QuickCheckoutForm
	if c.Request.Method == http.MethodPost {
		_ = c.ShouldBind(&f)
	}
	f.Prefill(user)

	if c.Request.Method == http.MethodPost {
		b, err := svc.QuickCheckout(c.Request.Context(), int64(user.ID), offer, f)
		if err == nil {
			s.Success("Your destination booking is confirmed!")
			redirect(c, confirmPath(b.ID))
			return
		}
		if !domain.IsValidation(err) {
			renderDomainError(c, err)
			return
		}
		for _, msg := range forms.QuickCheckoutMessages(domain.FieldErrorsOf(err)) {
			s.Error(msg)
		}
	}

	render(c, http.StatusOK, "checkout_destination.html", gin.H{
		"Title":  "Checkout " + offer.Destination,
		"Offer":  offer,
		"Form":   f,
		"Action": c.Request.URL.RequestURI(),
	})
}

// PlanTrip handles GET and POST /plantrip/.
func (h *Handler) PlanTrip(c *gin.Context) {
	s := session.From(c)
	svc := h.bookings(c)
	user := currentUser(c)
	ctx := c.Request.Context()

	f := forms.TripPlanForm{FullName: user.DisplayName(), Email: user.Email}
	errs := domain.FieldErrors{}

	if c.Request.Method == http.MethodPost {
		f = forms.TripPlanForm{}
		_ = c.ShouldBind(&f)
		b, err := svc.PlanTrip(ctx, int64(user.ID), &f)
		if err == nil {
			s.SetPendingBookingID(b.ID)
			s.Success("Trip details saved. Please confirm your booking.")
			redirect(c, "/checkout-plan/")
			return
		}
		if !domain.IsValidation(err) {
			renderDomainError(c, err)
			return
		}
		s.Error("Please fix the errors in the form.")
		errs = domain.FieldErrorsOf(err)
	}

	recent, err := svc.RecentForUser(ctx, int64(user.ID))
	if err != nil {
		renderDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "plan_trip.html", gin.H{
		"Title":  "Plan a trip",
		"Form":   f,
		"Errors": errs,
		"Recent": recent,
		"Cabins": cabins,
	})
}

// CheckoutPlan handles GET and POST /checkout-plan/.
func (h *Handler) CheckoutPlan(c *gin.Context) {
	s := session.From(c)
	svc := h.bookings(c)
	user := currentUser(c)
	ctx := c.Request.Context()

	pendingID := s.PendingBookingID()
	b, err := svc.PendingForCheckout(ctx, int64(user.ID), pendingID, c.Query("booking"))
	if pendingID > 0 && domain.IsNotFound(err) {
		// The remembered booking was cancelled or confirmed elsewhere.
		s.ClearPendingBookingID()
		b, err = svc.PendingForCheckout(ctx, int64(user.ID), 0, c.Query("booking"))
	}
	if err != nil {
		if errors.Is(err, services.ErrNothingPending) {
			s.Info("Please plan a trip first.")
			redirect(c, "/plantrip/")
			return
		}
		renderDomainError(c, err)
		return
	}

	if c.Request.Method == http.MethodPost {
		done, err := svc.ConfirmPlan(ctx, int64(user.ID), b.ID, c.PostForm("payment_method"))
		switch {
		case err == nil:
			s.ClearPendingBookingID()
			s.Success("Booking confirmed!")
			redirect(c, confirmPath(done.ID))
			return
		case domain.IsValidation(err):
			var ve domain.ValidationError
			errors.As(err, &ve)
			s.Error(ve.Msg)
		default:
			renderDomainError(c, err)
			return
		}
	}

	render(c, http.StatusOK, "checkout_plan.html", gin.H{
		"Title":   "Checkout",
		"Booking": b,
		"Pricing": b.Pricing(),
	})
}

// Confirm handles GET /confirm/:id/.
func (h *Handler) Confirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	b, err := h.bookings(c).GetForUser(c.Request.Context(), int64(currentUser(c).ID), id)
	if err != nil {
		renderDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "confirm.html", gin.H{
		"Title":   "Booking confirmation",
		"Booking": b,
		"Pricing": b.Pricing(),
	})
}

// MyBookings handles GET /bookings/.
func (h *Handler) MyBookings(c *gin.Context) {
	list, err := h.bookings(c).ListForUser(c.Request.Context(), int64(currentUser(c).ID))
	if err != nil {
		renderDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "my_bookings.html", gin.H{"Title": "My bookings", "Bookings": list})
}
