// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fleet/internal/ports/primary"
)

// ReservationAdapter is a thin adapter that translates CLI operations to
// ReservationService calls. It depends only on the service interface,
// enabling easy testing with mocks.
type ReservationAdapter struct {
	service primary.ReservationService
	out     io.Writer
}

// NewReservationAdapter creates a new ReservationAdapter with the given service.
func NewReservationAdapter(service primary.ReservationService, out io.Writer) *ReservationAdapter {
	return &ReservationAdapter{
		service: service,
		out:     out,
	}
}

// Add books an asset for a customer over an inclusive date range.
func (a *ReservationAdapter) Add(ctx context.Context, assetCode, customer, comment, startDate, endDate string) error {
	res, err := a.service.AddReservation(ctx, primary.AddReservationRequest{
		AssetCode: assetCode,
		Customer:  customer,
		Comment:   comment,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Reserved %s for %s (%s → %s)\n", res.AssetCode, res.Customer, res.StartDate, res.EndDate)
	fmt.Fprintf(a.out, "  id: %s\n", res.ID)
	return nil
}

// Remove cancels a reservation by id.
func (a *ReservationAdapter) Remove(ctx context.Context, id string) error {
	if err := a.service.RemoveReservation(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Removed reservation %s\n", id)
	return nil
}

// Check reports whether a range would collide with the asset's bookings.
func (a *ReservationAdapter) Check(ctx context.Context, assetCode, startDate, endDate string) error {
	overlap, err := a.service.WouldOverlap(ctx, assetCode, startDate, endDate)
	if err != nil {
		return err
	}
	if overlap {
		fmt.Fprintf(a.out, "✗ %s is already booked in %s → %s\n", assetCode, startDate, endDate)
	} else {
		fmt.Fprintf(a.out, "✓ %s is free in %s → %s\n", assetCode, startDate, endDate)
	}
	return nil
}

// List prints reservations, either for one asset or fleet-wide.
func (a *ReservationAdapter) List(ctx context.Context, assetCode string) error {
	var (
		reservations []*primary.Reservation
		err          error
	)
	if assetCode != "" {
		reservations, err = a.service.ListByAsset(ctx, assetCode)
	} else {
		reservations, err = a.service.ListAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	if len(reservations) == 0 {
		fmt.Fprintln(a.out, "No reservations found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-36s %-10s %-12s %-12s %s\n", "ID", "ASSET", "START", "END", "CUSTOMER")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────")
	for _, r := range reservations {
		fmt.Fprintf(a.out, "%-36s %-10s %-12s %-12s %s\n", r.ID, r.AssetCode, r.StartDate, r.EndDate, r.Customer)
		if r.Comment != "" {
			fmt.Fprintf(a.out, "%-36s %s\n", "", r.Comment)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
