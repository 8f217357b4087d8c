package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fleet/internal/ports/primary"
)

// AvailabilityAdapter is a thin adapter that translates CLI operations to
// AvailabilityService calls.
type AvailabilityAdapter struct {
	service primary.AvailabilityService
	out     io.Writer
}

// NewAvailabilityAdapter creates a new AvailabilityAdapter with the given service.
func NewAvailabilityAdapter(service primary.AvailabilityService, out io.Writer) *AvailabilityAdapter {
	return &AvailabilityAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the availability classification for one asset as of today.
func (a *AvailabilityAdapter) Show(ctx context.Context, assetCode, today string) error {
	label, err := a.service.AvailabilityLabel(ctx, assetCode, today)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%-10s %s\n", assetCode, FormatLabel(label))
	return nil
}

// Next prints the current or soonest upcoming booking for one asset.
func (a *AvailabilityAdapter) Next(ctx context.Context, assetCode, today string) error {
	next, err := a.service.NextReservation(ctx, assetCode, today)
	if err != nil {
		return err
	}
	if next == nil {
		fmt.Fprintf(a.out, "%s has no current or upcoming reservation\n", assetCode)
		return nil
	}
	fmt.Fprintf(a.out, "%s: %s → %s for %s (id %s)\n", assetCode, next.StartDate, next.EndDate, next.Customer, next.ID)
	return nil
}

// FormatLabel renders an availability label as a single status line.
func FormatLabel(label *primary.AvailabilityLabel) string {
	switch label.Kind {
	case primary.AvailabilityReservedNow:
		return fmt.Sprintf("reserved until %s (%s)", label.Until, label.Customer)
	case primary.AvailabilityReservedUpcoming:
		return fmt.Sprintf("free, reserved from %s (%s)", label.Until, label.Customer)
	default:
		return "free"
	}
}
