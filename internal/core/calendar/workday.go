package calendar

import (
	"sort"
	"time"
)

// HolidaySet is a finite set of calendar dates treated as non-working
// regardless of weekday. The zero value is an empty set.
type HolidaySet struct {
	days map[string]struct{}
}

// NewHolidaySet builds a set from canonical dates. Entries are normalized
// and de-duplicated; a malformed entry fails the whole set.
func NewHolidaySet(dates []string) (HolidaySet, error) {
	s := HolidaySet{days: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		canon, err := Normalize(d)
		if err != nil {
			return HolidaySet{}, err
		}
		s.days[canon] = struct{}{}
	}
	return s, nil
}

// Contains reports whether the canonical date is a holiday.
func (s HolidaySet) Contains(date string) bool {
	_, ok := s.days[date]
	return ok
}

// Dates returns the holidays as a sorted canonical list.
func (s HolidaySet) Dates() []string {
	out := make([]string, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of holidays in the set.
func (s HolidaySet) Len() int {
	return len(s.days)
}

// IsWorkingDay reports whether the date is a working day: not Saturday or
// Sunday, and not in the holiday set.
func IsWorkingDay(date string, holidays HolidaySet) (bool, error) {
	t, err := Parse(date)
	if err != nil {
		return false, err
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}
	return !holidays.Contains(Format(t)), nil
}

// AddWorkingDays returns the date reached by stepping forward one calendar
// day at a time from date, counting a step only when the landed-on day is a
// working day, until n such days have been counted. n = 0 returns the input
// date unchanged; the starting date itself is never counted. Negative n is
// rejected with ErrNegativeDays. Termination is guaranteed: the holiday set
// is finite, so working days are unbounded going forward.
func AddWorkingDays(date string, n int, holidays HolidaySet) (string, error) {
	if n < 0 {
		return "", ErrNegativeDays
	}
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	for left := n; left > 0; {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if holidays.Contains(Format(t)) {
			continue
		}
		left--
	}
	return Format(t), nil
}

// NextWorkingDay returns the first working day strictly after date.
func NextWorkingDay(date string, holidays HolidaySet) (string, error) {
	return AddWorkingDays(date, 1, holidays)
}

// DefaultETA proposes a target completion date: bufferDays working days
// after start, skipping weekends and holidays.
func DefaultETA(start string, bufferDays int, holidays HolidaySet) (string, error) {
	return AddWorkingDays(start, bufferDays, holidays)
}
