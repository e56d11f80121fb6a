package forms

import (
	"math"
	"strconv"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/utils"
)

const (
	maxSmallUint = 32767
	maxUint      = math.MaxInt32
)

// TripPlanForm covers every booking field a traveller fills in; owner, status,
// payment method and timestamps are set by the server.
type TripPlanForm struct {
	FullName        string `form:"full_name" validate:"required,max=255"`
	Email           string `form:"email" validate:"required,email,max=254"`
	Phone           string `form:"phone" validate:"required,max=30"`
	Destination     string `form:"destination" validate:"required,max=100"`
	FromLocation    string `form:"from_location" validate:"max=255"`
	ToLocation      string `form:"to_location" validate:"max=255"`
	DepartDate      string `form:"depart_date" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate      string `form:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Adults          string `form:"adults" validate:"omitempty,number"`
	Children        string `form:"children" validate:"omitempty,number"`
	Cabin           string `form:"cabin" validate:"max=50"`
	Budget          string `form:"budget" validate:"required,number"`
	Accommodation   string `form:"accommodation" validate:"required,max=50"`
	TripType        string `form:"trip_type" validate:"max=50"`
	SpecialRequests string `form:"special_requests"`
	PrefDirect      string `form:"pref_direct"`
	PrefWindow      string `form:"pref_window"`
	PrefBreakfast   string `form:"pref_breakfast"`
	PrefAttractions string `form:"pref_attractions"`
}

func (f *TripPlanForm) normalize() {
	for _, p := range []*string{
		&f.FullName, &f.Email, &f.Phone, &f.Destination, &f.FromLocation, &f.ToLocation,
		&f.DepartDate, &f.ReturnDate, &f.Adults, &f.Children, &f.Cabin, &f.Budget,
		&f.Accommodation, &f.TripType, &f.SpecialRequests,
	} {
		*p = strings.TrimSpace(*p)
	}
}

// Validate checks the form and returns the booking draft it describes.
// The draft has no owner, status or timestamps.
func (f *TripPlanForm) Validate() (models.TripBooking, domain.FieldErrors) {
	f.normalize()
	errs := check(f)

	b := models.TripBooking{
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Destination:     f.Destination,
		FromLocation:    f.FromLocation,
		ToLocation:      f.ToLocation,
		Cabin:           utils.FirstNonEmpty(f.Cabin, models.DefaultCabin),
		Accommodation:   f.Accommodation,
		TripType:        f.TripType,
		SpecialRequests: f.SpecialRequests,
		PrefDirect:      utils.IsChecked(f.PrefDirect),
		PrefWindow:      utils.IsChecked(f.PrefWindow),
		PrefBreakfast:   utils.IsChecked(f.PrefBreakfast),
		PrefAttractions: utils.IsChecked(f.PrefAttractions),
	}

	b.Adults = boundedInt(errs, "adults", f.Adults, models.DefaultAdults, maxSmallUint)
	b.Children = boundedInt(errs, "children", f.Children, models.DefaultChildren, maxSmallUint)
	b.Budget = int64(boundedInt(errs, "budget", f.Budget, 0, maxUint))

	if !errs.Has("depart_date") {
		b.DepartDate, _ = utils.ParseOptionalDate(f.DepartDate)
	}
	if !errs.Has("return_date") {
		b.ReturnDate, _ = utils.ParseOptionalDate(f.ReturnDate)
	}
	if b.DepartDate != nil && b.ReturnDate != nil && b.ReturnDate.Before(*b.DepartDate) {
		errs.Add("return_date", "Return date cannot be earlier than departure.")
	}

	return b, errs
}

// boundedInt parses a digits-only value already checked by the validator.
func boundedInt(errs domain.FieldErrors, field, raw string, def, max int) int {
	if raw == "" || errs.Has(field) {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n > max {
		errs.Add(field, "Ensure this value is less than or equal to "+strconv.Itoa(max)+".")
		return def
	}
	return n
}
