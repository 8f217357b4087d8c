package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/fleet/internal/adapters/cli"
	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/wire"
)

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Inspect asset availability",
	Long:  "Derived availability of fleet assets as of a reference date",
}

var availabilityShowCmd = &cobra.Command{
	Use:   "show [asset-code]",
	Short: "Show the availability of one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := resolveToday(cmd)
		return wire.AvailabilityAdapter().Show(context.Background(), args[0], today)
	},
}

var availabilityNextCmd = &cobra.Command{
	Use:   "next [asset-code]",
	Short: "Show the current or soonest upcoming booking of one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := resolveToday(cmd)
		return wire.AvailabilityAdapter().Next(context.Background(), args[0], today)
	},
}

var availabilityBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the availability of the whole fleet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		today := resolveToday(cmd)

		assets, err := wire.AssetService().ListAssets(ctx)
		if err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}
		if len(assets) == 0 {
			fmt.Println("No assets registered")
			return nil
		}

		fmt.Printf("\nFleet availability on %s\n\n", today)
		for _, a := range assets {
			label, err := wire.AvailabilityService().AvailabilityLabel(ctx, a.Code, today)
			if err != nil {
				return err
			}
			fmt.Printf("  %-10s %-22s %s\n", a.Code, a.Brand+" "+a.Model, colorizeLabel(label))
		}
		fmt.Println()
		return nil
	},
}

func colorizeLabel(label *primary.AvailabilityLabel) string {
	text := cliadapter.FormatLabel(label)
	switch label.Kind {
	case primary.AvailabilityReservedNow:
		return color.New(color.FgRed).Sprint(text)
	case primary.AvailabilityReservedUpcoming:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgGreen).Sprint(text)
	}
}

// resolveToday reads the --today override, falling back to the current date.
func resolveToday(cmd *cobra.Command) string {
	if today, _ := cmd.Flags().GetString("today"); today != "" {
		return today
	}
	return calendar.Today()
}

func init() {
	for _, c := range []*cobra.Command{availabilityShowCmd, availabilityNextCmd, availabilityBoardCmd} {
		c.Flags().String("today", "", "Reference date, YYYY-MM-DD (defaults to the current date)")
	}

	availabilityCmd.AddCommand(availabilityShowCmd)
	availabilityCmd.AddCommand(availabilityNextCmd)
	availabilityCmd.AddCommand(availabilityBoardCmd)
}

// AvailabilityCmd returns the availability command
func AvailabilityCmd() *cobra.Command {
	return availabilityCmd
}
