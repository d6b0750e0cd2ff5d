package blend

import (
	"errors"

	"github.com/coder/quartz"
)

// ErrClockUnavailable is returned when the underlying clock cannot provide a
// reading.
var ErrClockUnavailable = errors.New("clock unavailable")

// Clock returns the current time in milliseconds since the Unix epoch.
type Clock func() (int64, error)

// ClockFrom adapts a quartz clock. Tests pass quartz.NewMock(t).
func ClockFrom(c quartz.Clock) Clock {
	return func() (int64, error) {
		now := c.Now("blend", "seed")
		if now.IsZero() {
			return 0, ErrClockUnavailable
		}
		return now.UnixMilli(), nil
	}
}

// SystemClock reads the wall clock.
func SystemClock() Clock {
	return ClockFrom(quartz.NewReal())
}

// FixedClock always returns ms.
func FixedClock(ms int64) Clock {
	return func() (int64, error) { return ms, nil }
}
