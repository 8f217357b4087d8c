package primary

import "context"

// AvailabilityService defines the primary port for the derived availability
// read-model. The reference date is always supplied by the caller so results
// are deterministic.
type AvailabilityService interface {
	// IsReservedNow reports whether a booking is active on today.
	IsReservedNow(ctx context.Context, assetCode, today string) (bool, error)

	// NextReservation returns the current or soonest upcoming booking,
	// or nil when none exists.
	NextReservation(ctx context.Context, assetCode, today string) (*Reservation, error)

	// HasFutureWithin reports whether a booking starts within the next
	// days calendar days.
	HasFutureWithin(ctx context.Context, assetCode, today string, days int) (bool, error)

	// AvailabilityLabel classifies the asset as of today.
	AvailabilityLabel(ctx context.Context, assetCode, today string) (*AvailabilityLabel, error)
}

// Availability kinds.
const (
	AvailabilityFree             = "free"
	AvailabilityReservedNow      = "reserved_now"
	AvailabilityReservedUpcoming = "reserved_upcoming"
)

// AvailabilityLabel is the availability classification for one asset.
// Until carries the active booking's end date (reserved_now) or the next
// booking's start date (reserved_upcoming); it is empty for free assets,
// as is Customer.
type AvailabilityLabel struct {
	Kind     string
	Until    string
	Customer string
}
