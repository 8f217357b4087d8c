// Package app implements the primary ports by wiring the pure core logic
// to repositories and the change broadcast.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/core/reservation"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

// ReservationServiceImpl implements the ReservationService interface.
type ReservationServiceImpl struct {
	repo     secondary.ReservationRepository
	notifier secondary.ChangeNotifier

	// mu serializes check-then-write in AddReservation. The repository
	// makes each operation atomic, but the overlap guard and the write it
	// protects are two operations; without this lock two concurrent
	// bookings could both pass the guard and both persist.
	mu sync.Mutex
}

// NewReservationService creates a new ReservationService with injected dependencies.
func NewReservationService(repo secondary.ReservationRepository, notifier secondary.ChangeNotifier) *ReservationServiceImpl {
	return &ReservationServiceImpl{
		repo:     repo,
		notifier: notifier,
	}
}

// AddReservation validates and persists a new booking. The overlap check
// and the write run in one critical section, so concurrent bookings
// serialize and a failed validation never leaves a partial write behind.
func (s *ReservationServiceImpl) AddReservation(ctx context.Context, req primary.AddReservationRequest) (*primary.Reservation, error) {
	start, err := calendar.Normalize(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	end, err := calendar.Normalize(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.ListByAsset(ctx, req.AssetCode)
	if err != nil {
		return nil, fmt.Errorf("failed to read reservations: %w", err)
	}

	guard := reservation.CanBook(reservation.BookingContext{
		AssetCode: req.AssetCode,
		StartDate: start,
		EndDate:   end,
		Customer:  req.Customer,
		Existing:  recordsToReservations(existing),
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	rec := &secondary.ReservationRecord{
		ID:        uuid.NewString(),
		AssetCode: req.AssetCode,
		Customer:  strings.TrimSpace(req.Customer),
		Comment:   strings.TrimSpace(req.Comment),
		StartDate: start,
		EndDate:   end,
	}
	if err := s.repo.Add(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.notifier.Broadcast()
	return recordToReservation(rec), nil
}

// RemoveReservation deletes a booking. Removing an unknown id is not an error.
func (s *ReservationServiceImpl) RemoveReservation(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove reservation: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

// GetReservation retrieves a booking by id.
func (s *ReservationServiceImpl) GetReservation(ctx context.Context, id string) (*primary.Reservation, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", reservation.ErrNotFound, id)
	}
	return recordToReservation(rec), nil
}

// ListByAsset lists one asset's bookings ascending by start date, ties in
// insertion order.
func (s *ReservationServiceImpl) ListByAsset(ctx context.Context, assetCode string) ([]*primary.Reservation, error) {
	records, err := s.repo.ListByAsset(ctx, assetCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return sortedReservations(records), nil
}

// ListAll lists every booking ascending by start date.
func (s *ReservationServiceImpl) ListAll(ctx context.Context) ([]*primary.Reservation, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return sortedReservations(records), nil
}

// WouldOverlap reports whether the range collides with the asset's stored
// bookings. It runs the exact predicate AddReservation enforces, so a
// negative pre-check here is always consistent with a later Add.
func (s *ReservationServiceImpl) WouldOverlap(ctx context.Context, assetCode, startDate, endDate string) (bool, error) {
	start, err := calendar.Normalize(startDate)
	if err != nil {
		return false, fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}
	end, err := calendar.Normalize(endDate)
	if err != nil {
		return false, fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
	}

	existing, err := s.repo.ListByAsset(ctx, assetCode)
	if err != nil {
		return false, fmt.Errorf("failed to read reservations: %w", err)
	}
	return reservation.OverlapsAny(start, end, recordsToReservations(existing)), nil
}

func sortedReservations(records []*secondary.ReservationRecord) []*primary.Reservation {
	rs := recordsToReservations(records)
	reservation.SortByStart(rs)

	out := make([]*primary.Reservation, len(rs))
	for i, r := range rs {
		out[i] = &primary.Reservation{
			ID:        r.ID,
			AssetCode: r.AssetCode,
			Customer:  r.Customer,
			Comment:   r.Comment,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		}
	}
	return out
}

func recordsToReservations(records []*secondary.ReservationRecord) []reservation.Reservation {
	out := make([]reservation.Reservation, len(records))
	for i, rec := range records {
		out[i] = reservation.Reservation{
			ID:        rec.ID,
			AssetCode: rec.AssetCode,
			Customer:  rec.Customer,
			Comment:   rec.Comment,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		}
	}
	return out
}

func recordToReservation(rec *secondary.ReservationRecord) *primary.Reservation {
	return &primary.Reservation{
		ID:        rec.ID,
		AssetCode: rec.AssetCode,
		Customer:  rec.Customer,
		Comment:   rec.Comment,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
	}
}
