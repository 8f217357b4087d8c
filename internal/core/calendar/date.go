// Package calendar contains the pure date logic for the fleet scheduler:
// canonical calendar dates, working-day classification, and forward
// working-day arithmetic. All functions are free of hidden state; the
// holiday set is always an explicit argument.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the canonical calendar-date form. All dates in the system are
// YYYY-MM-DD strings with no time-of-day and no timezone; two canonical
// dates compare correctly as plain strings.
const Layout = time.DateOnly

var (
	// ErrInvalidDate is returned when a string is not a canonical calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNegativeDays is returned when a working-day count is negative.
	ErrNegativeDays = errors.New("negative working-day count")
)

// Parse parses a canonical YYYY-MM-DD date.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// Format renders a time as a canonical calendar date.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Normalize validates a date string and returns its canonical form.
func Normalize(date string) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// AddDays returns the date n calendar days after date. n may be negative.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// Today returns the current local date in canonical form. Core logic never
// calls this; it exists for boundaries that need a default "today".
func Today() string {
	return Format(time.Now())
}
