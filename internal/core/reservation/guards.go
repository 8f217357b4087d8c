package reservation

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Err     error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return r.Err
}

// BookingContext provides context for the booking guard. Dates must already
// be canonical; Existing holds the stored reservations of the same asset.
type BookingContext struct {
	AssetCode string
	StartDate string
	EndDate   string
	Customer  string
	Existing  []Reservation
}

// CanBook evaluates whether a booking is legal.
// Rules:
// - Customer must be non-empty after trimming
// - StartDate must not be after EndDate
// - The range must not overlap any existing reservation of the asset
func CanBook(ctx BookingContext) GuardResult {
	if strings.TrimSpace(ctx.Customer) == "" {
		return GuardResult{Err: fmt.Errorf("%w: customer is required", ErrInvalidInput)}
	}

	if ctx.StartDate > ctx.EndDate {
		return GuardResult{Err: fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, ctx.StartDate, ctx.EndDate)}
	}

	if OverlapsAny(ctx.StartDate, ctx.EndDate, ctx.Existing) {
		return GuardResult{Err: fmt.Errorf("%w: asset %s is already booked in %s..%s", ErrOverlapConflict, ctx.AssetCode, ctx.StartDate, ctx.EndDate)}
	}

	return GuardResult{Allowed: true}
}
