// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI layer talks to, and their
// request/response types.
package primary

import "context"

// ReservationService defines the primary port for booking operations.
type ReservationService interface {
	// AddReservation validates and persists a new booking.
	AddReservation(ctx context.Context, req AddReservationRequest) (*Reservation, error)

	// RemoveReservation deletes a booking. Removing an unknown id is not
	// an error.
	RemoveReservation(ctx context.Context, id string) error

	// GetReservation retrieves a booking by id.
	GetReservation(ctx context.Context, id string) (*Reservation, error)

	// ListByAsset lists one asset's bookings ascending by start date.
	ListByAsset(ctx context.Context, assetCode string) ([]*Reservation, error)

	// ListAll lists every booking ascending by start date.
	ListAll(ctx context.Context) ([]*Reservation, error)

	// WouldOverlap reports whether the range collides with the asset's
	// stored bookings, using the same predicate AddReservation enforces.
	WouldOverlap(ctx context.Context, assetCode, startDate, endDate string) (bool, error)
}

// AddReservationRequest contains parameters for creating a booking.
// Dates are inclusive calendar dates.
type AddReservationRequest struct {
	AssetCode string
	StartDate string
	EndDate   string
	Customer  string
	Comment   string // optional
}

// Reservation is the booking as exposed to primary adapters.
type Reservation struct {
	ID        string
	AssetCode string
	Customer  string
	Comment   string
	StartDate string
	EndDate   string
}
