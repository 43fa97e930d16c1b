// Package util provides the time and identifier plumbing shared across
// the application.
package util

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the standard date format for displayed records.
	DateFormat = "2006-01-02"

	// ClockFormat is the 12-hour wall clock format used in reports.
	ClockFormat = "03:04 PM"

	// DateTimeFormat combines date and wall clock for report headers.
	DateTimeFormat = "2006-01-02 03:04 PM"
)

// ErrTimeSourceUnavailable indicates the reference-timezone clock could
// not be constructed. Every downstream number depends on the local hour
// and month, so callers must abort the computation pass rather than
// substitute a default.
var ErrTimeSourceUnavailable = fmt.Errorf("time source unavailable")

// Clock supplies the current time in the reference timezone.
// The synthesis engine never reads wall-clock time itself; it receives
// hour and month extracted from a Clock at the boundary.
type Clock interface {
	Now() time.Time
}

// LocalClock reads the system clock in a fixed reference timezone.
type LocalClock struct {
	loc *time.Location
}

// NewLocalClock builds a clock for the named IANA timezone.
// Returns ErrTimeSourceUnavailable (wrapped) if the timezone database
// cannot resolve the name.
func NewLocalClock(timezone string) (*LocalClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: loading timezone %q: %v", ErrTimeSourceUnavailable, timezone, err)
	}
	return &LocalClock{loc: loc}, nil
}

// Now returns the current time in the reference timezone.
func (c *LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the reference timezone.
func (c *LocalClock) Location() *time.Location {
	return c.loc
}

// FixedClock always reports the same instant. Used in tests and anywhere
// a computation pass must be pinned to a known hour and month.
type FixedClock struct {
	t time.Time
}

// NewFixedClock creates a clock frozen at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	return c.t
}

// Set moves the frozen instant.
func (c *FixedClock) Set(t time.Time) {
	c.t = t
}

// FormatDateTime formats a time for report headers.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// FormatClock formats a time as a 12-hour wall clock string.
func FormatClock(t time.Time) string {
	return t.Format(ClockFormat)
}
