package forms

import (
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/utils"
)

// QuickCheckoutForm is the contact and payment step of a destination purchase.
// Missing contact details fall back to the signed-in user's profile.
type QuickCheckoutForm struct {
	FullName      string `form:"full_name"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Dates         string `form:"dates"`
	Travelers     string `form:"travelers"`
	PaymentMethod string `form:"payment_method"`
}

var quickCheckoutChecks = []struct {
	field string
	msg   string
}{
	{"full_name", "Please provide your full name."},
	{"email", "Please provide an email address."},
	{"phone", "Please provide a phone number."},
	{"payment_method", "Select a payment method to continue."},
}

// Prefill trims the submitted values and fills the contact gaps from u.
func (f *QuickCheckoutForm) Prefill(u domain.CurrentUser) {
	f.FullName = utils.FirstNonEmpty(f.FullName, u.DisplayName())
	f.Email = utils.FirstNonEmpty(f.Email, u.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Dates = strings.TrimSpace(f.Dates)
	if strings.TrimSpace(f.Travelers) == "" {
		f.Travelers = "1"
	}
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
}

func (f QuickCheckoutForm) value(field string) string {
	switch field {
	case "full_name":
		return f.FullName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	case "payment_method":
		return f.PaymentMethod
	}
	return ""
}

func (f QuickCheckoutForm) Validate() domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, c := range quickCheckoutChecks {
		if strings.TrimSpace(f.value(c.field)) == "" {
			errs.Add(c.field, c.msg)
		}
	}
	return errs
}

// Travellers is the party size, never below one.
func (f QuickCheckoutForm) Travellers() int {
	return min(utils.AtLeastOne(f.Travelers), maxSmallUint)
}

// QuickCheckoutMessages lists the messages in errs in form order.
func QuickCheckoutMessages(errs domain.FieldErrors) []string {
	out := []string{}
	for _, c := range quickCheckoutChecks {
		out = append(out, errs[c.field]...)
	}
	return out
}
