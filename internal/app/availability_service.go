package app

import (
	"context"
	"fmt"

	"github.com/example/fleet/internal/core/availability"
	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/core/reservation"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

// AvailabilityServiceImpl implements the AvailabilityService interface.
// It is a pure read-model over the reservation repository; nothing here
// mutates state.
type AvailabilityServiceImpl struct {
	repo secondary.ReservationRepository
}

// NewAvailabilityService creates a new AvailabilityService with injected dependencies.
func NewAvailabilityService(repo secondary.ReservationRepository) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{repo: repo}
}

// IsReservedNow reports whether a booking is active on today.
func (s *AvailabilityServiceImpl) IsReservedNow(ctx context.Context, assetCode, today string) (bool, error) {
	rs, day, err := s.snapshot(ctx, assetCode, today)
	if err != nil {
		return false, err
	}
	return availability.IsReservedNow(rs, day), nil
}

// NextReservation returns the current or soonest upcoming booking, or nil
// when the asset has no booking ending on or after today.
func (s *AvailabilityServiceImpl) NextReservation(ctx context.Context, assetCode, today string) (*primary.Reservation, error) {
	rs, day, err := s.snapshot(ctx, assetCode, today)
	if err != nil {
		return nil, err
	}
	next, ok := availability.NextReservation(rs, day)
	if !ok {
		return nil, nil
	}
	return &primary.Reservation{
		ID:        next.ID,
		AssetCode: next.AssetCode,
		Customer:  next.Customer,
		Comment:   next.Comment,
		StartDate: next.StartDate,
		EndDate:   next.EndDate,
	}, nil
}

// HasFutureWithin reports whether a booking starts within the next days
// calendar days, today excluded.
func (s *AvailabilityServiceImpl) HasFutureWithin(ctx context.Context, assetCode, today string, days int) (bool, error) {
	rs, day, err := s.snapshot(ctx, assetCode, today)
	if err != nil {
		return false, err
	}
	return availability.HasFutureWithin(rs, day, days)
}

// AvailabilityLabel classifies the asset as of today.
func (s *AvailabilityServiceImpl) AvailabilityLabel(ctx context.Context, assetCode, today string) (*primary.AvailabilityLabel, error) {
	rs, day, err := s.snapshot(ctx, assetCode, today)
	if err != nil {
		return nil, err
	}
	label := availability.LabelFor(rs, day)
	return &primary.AvailabilityLabel{
		Kind:     string(label.Kind),
		Until:    label.Until,
		Customer: label.Customer,
	}, nil
}

func (s *AvailabilityServiceImpl) snapshot(ctx context.Context, assetCode, today string) ([]reservation.Reservation, string, error) {
	day, err := calendar.Normalize(today)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	records, err := s.repo.ListByAsset(ctx, assetCode)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read reservations: %w", err)
	}
	return recordsToReservations(records), day, nil
}
