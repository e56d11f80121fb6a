package forms

import (
	"strings"
	"unicode"

	"travelbook/internal/domain"
	"travelbook/internal/utils"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

type RegisterForm struct {
	FullName  string `form:"full_name" validate:"required,max=255"`
	Username  string `form:"username" validate:"required,max=150,username"`
	Email     string `form:"email" validate:"required,email,max=254"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

func (f *RegisterForm) Validate() domain.FieldErrors {
	f.FullName = utils.NormalizeSpace(f.FullName)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	errs := check(f)
	switch {
	case f.Password1 == "" || errs.Has("password1"):
	case len(f.Password1) > MaxPasswordBytes:
		errs.Add("password1", "Ensure this password has at most 72 bytes.")
	case allDigits(f.Password1):
		errs.Add("password1", "This password is entirely numeric.")
	}
	return errs
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate() domain.FieldErrors {
	f.Username = strings.TrimSpace(f.Username)
	return check(f)
}
