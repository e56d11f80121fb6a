package forms

import (
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/utils"
)

type JournalForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
	Location    string `form:"location" validate:"required,max=255"`
}

func (f *JournalForm) Validate() domain.FieldErrors {
	f.Title = utils.NormalizeSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Location = utils.NormalizeSpace(f.Location)
	return check(f)
}
