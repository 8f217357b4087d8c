// Package reservation contains the pure business logic for fleet bookings:
// the reservation value type, the range-overlap predicate, and the guard
// that decides whether a proposed booking is legal. Guards are pure
// functions that evaluate preconditions without side effects.
package reservation

import (
	"errors"
	"sort"
)

// Reservation is a booking of an asset for an inclusive calendar-date range.
// Dates are canonical YYYY-MM-DD strings, so they compare correctly as
// plain strings. A reservation is never mutated after creation; edits are
// modeled as remove-then-add.
type Reservation struct {
	ID        string
	AssetCode string
	Customer  string
	Comment   string
	StartDate string
	EndDate   string
}

var (
	// ErrInvalidInput marks a missing or blank required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange marks a start after end or a malformed date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrOverlapConflict marks a booking that collides with an existing
	// reservation of the same asset.
	ErrOverlapConflict = errors.New("overlapping reservation")

	// ErrNotFound marks a lookup of a reservation id that does not exist.
	ErrNotFound = errors.New("reservation not found")
)

// SortByStart orders reservations ascending by start date. The sort is
// stable so that equal start dates keep insertion order.
func SortByStart(rs []Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].StartDate < rs[j].StartDate
	})
}

// FilterByAsset returns the reservations belonging to the asset, keeping
// the input order.
func FilterByAsset(rs []Reservation, assetCode string) []Reservation {
	var out []Reservation
	for _, r := range rs {
		if r.AssetCode == assetCode {
			out = append(out, r)
		}
	}
	return out
}
