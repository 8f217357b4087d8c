// Package availability derives availability facts for an asset from its
// reservations as of an explicit reference date. It is a pure read-model:
// nothing here is ever stored, and "today" is always an argument so the
// results are deterministic.
package availability

import (
	"sort"

	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/core/reservation"
)

// Kind classifies an asset's availability as of a reference date.
type Kind string

const (
	// KindFree means no current or upcoming booking exists.
	KindFree Kind = "free"
	// KindReservedNow means a booking is active on the reference date.
	KindReservedNow Kind = "reserved_now"
	// KindReservedUpcoming means the asset is free now but booked later.
	KindReservedUpcoming Kind = "reserved_upcoming"
)

// Label is the human-facing availability classification.
// For KindReservedNow, Until is the active booking's end date; for
// KindReservedUpcoming it is the next booking's start date (the asset is
// usable until then). Customer is set for both reserved kinds.
type Label struct {
	Kind     Kind
	Until    string
	Customer string
}

// IsReservedNow reports whether some reservation is active on today:
// start <= today <= end.
func IsReservedNow(rs []reservation.Reservation, today string) bool {
	for _, r := range rs {
		if r.StartDate <= today && today <= r.EndDate {
			return true
		}
	}
	return false
}

// NextReservation returns the reservation with the smallest start date
// among those ending on or after today: the active one if a booking is
// running, otherwise the soonest upcoming one. Ties on start date go to the
// earlier end date, further ties to insertion order. The second result is
// false when no such reservation exists.
func NextReservation(rs []reservation.Reservation, today string) (reservation.Reservation, bool) {
	var candidates []reservation.Reservation
	for _, r := range rs {
		if r.EndDate >= today {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return reservation.Reservation{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].StartDate != candidates[j].StartDate {
			return candidates[i].StartDate < candidates[j].StartDate
		}
		return candidates[i].EndDate < candidates[j].EndDate
	})
	return candidates[0], true
}

// HasFutureWithin reports whether some reservation starts within the next
// `days` calendar days: today < start <= today+days.
func HasFutureWithin(rs []reservation.Reservation, today string, days int) (bool, error) {
	bound, err := calendar.AddDays(today, days)
	if err != nil {
		return false, err
	}
	for _, r := range rs {
		if r.StartDate > today && r.StartDate <= bound {
			return true, nil
		}
	}
	return false, nil
}

// LabelFor classifies the asset's availability as of today.
func LabelFor(rs []reservation.Reservation, today string) Label {
	for _, r := range rs {
		if r.StartDate <= today && today <= r.EndDate {
			return Label{Kind: KindReservedNow, Until: r.EndDate, Customer: r.Customer}
		}
	}
	if next, ok := nextUpcoming(rs, today); ok {
		return Label{Kind: KindReservedUpcoming, Until: next.StartDate, Customer: next.Customer}
	}
	return Label{Kind: KindFree}
}

// nextUpcoming finds the soonest reservation starting strictly after today.
func nextUpcoming(rs []reservation.Reservation, today string) (reservation.Reservation, bool) {
	var future []reservation.Reservation
	for _, r := range rs {
		if r.StartDate > today {
			future = append(future, r)
		}
	}
	if len(future) == 0 {
		return reservation.Reservation{}, false
	}
	sort.SliceStable(future, func(i, j int) bool {
		if future[i].StartDate != future[j].StartDate {
			return future[i].StartDate < future[j].StartDate
		}
		return future[i].EndDate < future[j].EndDate
	})
	return future[0], true
}
