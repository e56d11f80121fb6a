package forms

import (
	"strings"
	"testing"

	"travelbook/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTripPlan() TripPlanForm {
	return TripPlanForm{
		FullName:      "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "0800",
		Destination:   "Paris",
		DepartDate:    "2025-01-10",
		ReturnDate:    "2025-01-20",
		Adults:        "2",
		Budget:        "1000",
		Accommodation: "Hotel",
		PrefWindow:    "on",
	}
}

func TestTripPlanValid(t *testing.T) {
	f := validTripPlan()
	b, errs := f.Validate()
	require.True(t, errs.Empty(), "unexpected errors: %v", errs)

	assert.Equal(t, int64(1000), b.Budget)
	assert.Equal(t, 2, b.Adults)
	assert.Equal(t, 0, b.Children)
	assert.Equal(t, models.DefaultCabin, b.Cabin)
	assert.True(t, b.PrefWindow)
	assert.False(t, b.PrefDirect)
	require.NotNil(t, b.DepartDate)
	require.NotNil(t, b.ReturnDate)
}

func TestTripPlanDefaults(t *testing.T) {
	f := validTripPlan()
	f.Adults = ""
	f.DepartDate = ""
	f.ReturnDate = ""
	b, errs := f.Validate()
	require.True(t, errs.Empty(), "unexpected errors: %v", errs)
	assert.Equal(t, models.DefaultAdults, b.Adults)
	assert.Nil(t, b.DepartDate)
	assert.Nil(t, b.ReturnDate)
}

func TestTripPlanReturnBeforeDepart(t *testing.T) {
	f := validTripPlan()
	f.DepartDate = "2025-01-20"
	f.ReturnDate = "2025-01-10"
	_, errs := f.Validate()
	assert.Equal(t, "Return date cannot be earlier than departure.", errs.Get("return_date"))
	assert.False(t, errs.Has("depart_date"))
}

func TestTripPlanSameDayReturnIsAllowed(t *testing.T) {
	f := validTripPlan()
	f.ReturnDate = f.DepartDate
	_, errs := f.Validate()
	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
}

func TestTripPlanFieldErrors(t *testing.T) {
	f := TripPlanForm{
		Email:      "not-an-email",
		Adults:     "-1",
		Budget:     "12abc",
		DepartDate: "2025-02-30",
	}
	_, errs := f.Validate()

	for _, field := range []string{"full_name", "phone", "destination", "accommodation"} {
		assert.Equal(t, "This field is required.", errs.Get(field), field)
	}
	assert.Equal(t, "Enter a valid email address.", errs.Get("email"))
	assert.Equal(t, "Enter a whole number.", errs.Get("adults"))
	assert.Equal(t, "Enter a whole number.", errs.Get("budget"))
	assert.Equal(t, "Enter a valid date.", errs.Get("depart_date"))
}

func TestTripPlanBudgetUpperBound(t *testing.T) {
	f := validTripPlan()
	f.Budget = "99999999999"
	_, errs := f.Validate()
	assert.True(t, errs.Has("budget"))
}

func TestJournalForm(t *testing.T) {
	f := JournalForm{Title: "  ", Description: "x", Location: "Oslo"}
	errs := f.Validate()
	assert.Equal(t, "This field is required.", errs.Get("title"))
	assert.False(t, errs.Has("location"))

	f = JournalForm{Title: " Fjords   at  dawn ", Description: "x", Location: "Oslo"}
	assert.True(t, f.Validate().Empty())
	assert.Equal(t, "Fjords at dawn", f.Title)
}

func TestRegisterForm(t *testing.T) {
	f := RegisterForm{
		FullName:  "Ada Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password1: "analytical-engine",
		Password2: "analytical-engine",
	}
	assert.True(t, f.Validate().Empty())

	f.Password2 = "different"
	assert.Equal(t, "The two password fields didn't match.", f.Validate().Get("password2"))

	f = RegisterForm{FullName: "A", Username: "bad name!", Email: "a@b.co", Password1: "12345678", Password2: "12345678"}
	errs := f.Validate()
	assert.True(t, errs.Has("username"))
	assert.Equal(t, "This password is entirely numeric.", errs.Get("password1"))

	long := strings.Repeat("correct-horse-", 6)
	f = RegisterForm{FullName: "Ada", Username: "ada", Email: "ada@example.com", Password1: long, Password2: long}
	assert.Equal(t, "Ensure this password has at most 72 bytes.", f.Validate().Get("password1"))

	// 25 runes, 75 bytes.
	wide := strings.Repeat("日本語", 8) + "日"
	f = RegisterForm{FullName: "Ada", Username: "ada", Email: "ada@example.com", Password1: wide, Password2: wide}
	assert.Equal(t, "Ensure this password has at most 72 bytes.", f.Validate().Get("password1"))
}
