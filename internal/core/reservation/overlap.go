package reservation

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day: s1 <= e2 && s2 <= e1 on canonical dates.
func Overlaps(start, end, otherStart, otherEnd string) bool {
	return start <= otherEnd && otherStart <= end
}

// OverlapsAny reports whether the range [start, end] overlaps any of the
// candidate reservations. This is the exact predicate the booking guard
// uses; callers may run it for pre-validation without touching the store.
func OverlapsAny(start, end string, candidates []Reservation) bool {
	for _, r := range candidates {
		if Overlaps(start, end, r.StartDate, r.EndDate) {
			return true
		}
	}
	return false
}
