package models

import (
	"strconv"
	"time"
)

// Journal is a travel journal entry. Date is set on creation and never changes.
type Journal struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Date        time.Time
	Cover       string
}

// JournalCard is one slot in the recent journals grid. Placeholder cards are
// decorative filler with no backing record.
type JournalCard struct {
	ID          int64
	Title       string
	Location    string
	Date        time.Time
	CoverURL    string
	Placeholder bool
}

// DetailPath returns the detail link, empty for placeholders.
func (c JournalCard) DetailPath() string {
	if c.Placeholder || c.ID <= 0 {
		return ""
	}
	return "/map/" + strconv.FormatInt(c.ID, 10) + "/"
}
