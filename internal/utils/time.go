package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// ParseOptionalDate returns nil for blank input.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDateRange splits "YYYY-MM-DD to YYYY-MM-DD" on the literal "to".
// A side that is missing or does not parse comes back nil; it never fails.
func ParseDateRange(raw string) (depart, ret *time.Time) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := []string{}
	for _, p := range strings.Split(raw, "to") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) > 0 {
		if t, err := ParseDate(parts[0]); err == nil {
			depart = &t
		}
	}
	if len(parts) > 1 {
		if t, err := ParseDate(parts[1]); err == nil {
			ret = &t
		}
	}
	return depart, ret
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatOptionalDate renders nil as an empty string.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}
