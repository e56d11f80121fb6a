package services

import (
	"time"

	"travelbook/internal/utils"
)

// Clock returns the current time. Services fall back to UTC wall time.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c != nil {
		return c().UTC().Truncate(time.Second)
	}
	return utils.NowUTC().Truncate(time.Second)
}
