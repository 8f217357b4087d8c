package primary

import "context"

// SettingsService defines the primary port for scheduler configuration:
// the working-day buffer and the holiday calendar.
type SettingsService interface {
	// GetBufferDays returns the configured buffer, or the default when unset.
	GetBufferDays(ctx context.Context) (int, error)

	// SetBufferDays persists the buffer. Negative values are rejected.
	SetBufferDays(ctx context.Context, days int) error

	// GetHolidays returns the holiday dates, sorted canonical.
	GetHolidays(ctx context.Context) ([]string, error)

	// SetHolidays replaces the holiday list wholesale. Dates are validated,
	// de-duplicated and sorted before acceptance.
	SetHolidays(ctx context.Context, dates []string) error

	// AddHoliday inserts one date into the holiday list.
	AddHoliday(ctx context.Context, date string) error

	// RemoveHoliday drops one date from the holiday list.
	RemoveHoliday(ctx context.Context, date string) error

	// PreviewETA computes the default due date for a start date using the
	// stored buffer and holidays.
	PreviewETA(ctx context.Context, startDate string) (string, error)
}
