package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/wire"
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Manage reservations",
	Long:  "Book, cancel and list reservations on fleet assets",
}

var reserveAddCmd = &cobra.Command{
	Use:   "add [asset-code]",
	Short: "Book an asset for a customer over an inclusive date range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customer, _ := cmd.Flags().GetString("customer")
		comment, _ := cmd.Flags().GetString("comment")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		return wire.ReservationAdapter().Add(context.Background(), args[0], customer, comment, from, to)
	},
}

var reserveRemoveCmd = &cobra.Command{
	Use:   "remove [reservation-id]",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReservationAdapter().Remove(context.Background(), args[0])
	},
}

var reserveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reservations",
	RunE: func(cmd *cobra.Command, args []string) error {
		assetCode, _ := cmd.Flags().GetString("asset")
		return wire.ReservationAdapter().List(context.Background(), assetCode)
	},
}

var reserveCheckCmd = &cobra.Command{
	Use:   "check [asset-code]",
	Short: "Check whether a date range would conflict with existing bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		return wire.ReservationAdapter().Check(context.Background(), args[0], from, to)
	},
}

func init() {
	reserveAddCmd.Flags().StringP("customer", "c", "", "Customer name (required)")
	reserveAddCmd.Flags().String("comment", "", "Free-form note on the booking")
	reserveAddCmd.Flags().String("from", "", "Start date, YYYY-MM-DD (required)")
	reserveAddCmd.Flags().String("to", "", "End date, YYYY-MM-DD (required)")
	_ = reserveAddCmd.MarkFlagRequired("customer")
	_ = reserveAddCmd.MarkFlagRequired("from")
	_ = reserveAddCmd.MarkFlagRequired("to")

	reserveListCmd.Flags().StringP("asset", "a", "", "Filter by asset code")

	reserveCheckCmd.Flags().String("from", "", "Start date, YYYY-MM-DD (required)")
	reserveCheckCmd.Flags().String("to", "", "End date, YYYY-MM-DD (required)")
	_ = reserveCheckCmd.MarkFlagRequired("from")
	_ = reserveCheckCmd.MarkFlagRequired("to")

	reserveCmd.AddCommand(reserveAddCmd)
	reserveCmd.AddCommand(reserveRemoveCmd)
	reserveCmd.AddCommand(reserveListCmd)
	reserveCmd.AddCommand(reserveCheckCmd)
}

// ReserveCmd returns the reserve command
func ReserveCmd() *cobra.Command {
	return reserveCmd
}
