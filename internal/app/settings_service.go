package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/core/reservation"
	"github.com/example/fleet/internal/ports/secondary"
)

// DefaultBufferDays is the working-day buffer applied when none is configured.
const DefaultBufferDays = 2

// SettingsServiceImpl implements the SettingsService interface.
type SettingsServiceImpl struct {
	repo     secondary.SettingsRepository
	notifier secondary.ChangeNotifier
}

// NewSettingsService creates a new SettingsService with injected dependencies.
func NewSettingsService(repo secondary.SettingsRepository, notifier secondary.ChangeNotifier) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:     repo,
		notifier: notifier,
	}
}

// GetBufferDays returns the configured buffer, or DefaultBufferDays when unset.
func (s *SettingsServiceImpl) GetBufferDays(ctx context.Context) (int, error) {
	days, ok, err := s.repo.GetBufferDays(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read buffer days: %w", err)
	}
	if !ok {
		return DefaultBufferDays, nil
	}
	return days, nil
}

// SetBufferDays persists the buffer. Negative values are rejected; zero is
// a valid buffer (same-day ETA on working days).
func (s *SettingsServiceImpl) SetBufferDays(ctx context.Context, days int) error {
	if days < 0 {
		return fmt.Errorf("%w: buffer days must be non-negative, got %d", reservation.ErrInvalidInput, days)
	}
	if err := s.repo.SetBufferDays(ctx, days); err != nil {
		return fmt.Errorf("failed to set buffer days: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

// GetHolidays returns the holiday dates, sorted canonical.
func (s *SettingsServiceImpl) GetHolidays(ctx context.Context) ([]string, error) {
	set, err := s.loadHolidaySet(ctx)
	if err != nil {
		return nil, err
	}
	return set.Dates(), nil
}

// SetHolidays replaces the holiday list wholesale. The incoming dates are
// validated, de-duplicated and sorted before being written.
func (s *SettingsServiceImpl) SetHolidays(ctx context.Context, dates []string) error {
	set, err := calendar.NewHolidaySet(dates)
	if err != nil {
		return fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	return s.saveHolidaySet(ctx, set)
}

// AddHoliday inserts one date into the holiday list. Adding a date that is
// already present is a no-op.
func (s *SettingsServiceImpl) AddHoliday(ctx context.Context, date string) error {
	day, err := calendar.Normalize(date)
	if err != nil {
		return fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	set, err := s.loadHolidaySet(ctx)
	if err != nil {
		return err
	}
	if set.Contains(day) {
		return nil
	}
	set, err = calendar.NewHolidaySet(append(set.Dates(), day))
	if err != nil {
		return fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	return s.saveHolidaySet(ctx, set)
}

// RemoveHoliday drops one date from the holiday list. Removing an unknown
// date is a no-op.
func (s *SettingsServiceImpl) RemoveHoliday(ctx context.Context, date string) error {
	day, err := calendar.Normalize(date)
	if err != nil {
		return fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	set, err := s.loadHolidaySet(ctx)
	if err != nil {
		return err
	}
	if !set.Contains(day) {
		return nil
	}
	kept := make([]string, 0, set.Len())
	for _, d := range set.Dates() {
		if d != day {
			kept = append(kept, d)
		}
	}
	set, err = calendar.NewHolidaySet(kept)
	if err != nil {
		return fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	return s.saveHolidaySet(ctx, set)
}

// PreviewETA computes the default due date for a start date using the
// stored buffer and holiday calendar.
func (s *SettingsServiceImpl) PreviewETA(ctx context.Context, startDate string) (string, error) {
	start, err := calendar.Normalize(startDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	buffer, err := s.GetBufferDays(ctx)
	if err != nil {
		return "", err
	}
	holidays, err := s.loadHolidaySet(ctx)
	if err != nil {
		return "", err
	}
	eta, err := calendar.DefaultETA(start, buffer, holidays)
	if err != nil {
		return "", fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	return eta, nil
}

// loadHolidaySet reads the stored holidays and builds the working set.
// Individually malformed entries are dropped with a warning rather than
// poisoning every calendar computation.
func (s *SettingsServiceImpl) loadHolidaySet(ctx context.Context) (calendar.HolidaySet, error) {
	dates, err := s.repo.GetHolidays(ctx)
	if err != nil {
		return calendar.HolidaySet{}, fmt.Errorf("failed to read holidays: %w", err)
	}
	valid := make([]string, 0, len(dates))
	for _, d := range dates {
		day, err := calendar.Normalize(d)
		if err != nil {
			log.WithField("date", d).Warn("Dropping malformed holiday date")
			continue
		}
		valid = append(valid, day)
	}
	set, err := calendar.NewHolidaySet(valid)
	if err != nil {
		return calendar.HolidaySet{}, fmt.Errorf("failed to build holiday set: %w", err)
	}
	return set, nil
}

func (s *SettingsServiceImpl) saveHolidaySet(ctx context.Context, set calendar.HolidaySet) error {
	if err := s.repo.SetHolidays(ctx, set.Dates()); err != nil {
		return fmt.Errorf("failed to save holidays: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}
