package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/wire"
)

var workOrderCmd = &cobra.Command{
	Use:   "work-order",
	Short: "Manage maintenance and repair orders",
	Long:  "Create, list and complete PM/CM work orders on fleet assets",
}

var workOrderCreateCmd = &cobra.Command{
	Use:   "create [asset-code]",
	Short: "Create a new work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		woType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetString("priority")
		eta, _ := cmd.Flags().GetString("eta")
		description, _ := cmd.Flags().GetString("description")

		wo, err := wire.WorkOrderService().CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
			AssetCode:   args[0],
			Type:        woType,
			Priority:    priority,
			ETA:         eta,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create work order: %w", err)
		}

		fmt.Printf("✓ Created %s work order on %s (priority %s)\n", wo.Type, wo.AssetCode, wo.Priority)
		fmt.Printf("  id:  %s\n", wo.ID)
		fmt.Printf("  eta: %s\n", wo.ETA)
		return nil
	},
}

var workOrderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		assetCode, _ := cmd.Flags().GetString("asset")
		status, _ := cmd.Flags().GetString("status")

		orders, err := wire.WorkOrderService().ListWorkOrders(context.Background(), primary.WorkOrderFilters{
			AssetCode: assetCode,
			Status:    status,
		})
		if err != nil {
			return fmt.Errorf("failed to list work orders: %w", err)
		}

		if len(orders) == 0 {
			fmt.Println("No work orders found")
			return nil
		}

		fmt.Printf("\n%-36s %-10s %-5s %-9s %-12s %s\n", "ID", "ASSET", "TYPE", "PRIORITY", "ETA", "STATUS")
		fmt.Println("────────────────────────────────────────────────────────────────────────────────────")
		for _, wo := range orders {
			fmt.Printf("%-36s %-10s %-5s %-9s %-12s %s\n", wo.ID, wo.AssetCode, wo.Type, wo.Priority, wo.ETA, wo.Status)
			if wo.Description != "" {
				fmt.Printf("%-36s %s\n", "", wo.Description)
			}
		}
		fmt.Println()
		return nil
	},
}

var workOrderCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a work order done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.WorkOrderService().CompleteWorkOrder(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Work order %s completed\n", args[0])
		return nil
	},
}

var workOrderDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.WorkOrderService().DeleteWorkOrder(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Work order %s deleted\n", args[0])
		return nil
	},
}

func init() {
	workOrderCreateCmd.Flags().StringP("type", "t", "PM", "Work order type (PM or CM)")
	workOrderCreateCmd.Flags().StringP("priority", "p", "2", "Priority (1 high .. 3 low)")
	workOrderCreateCmd.Flags().String("eta", "", "Target date, YYYY-MM-DD (defaults via the working-day buffer)")
	workOrderCreateCmd.Flags().StringP("description", "d", "", "What needs doing")

	workOrderListCmd.Flags().StringP("asset", "a", "", "Filter by asset code")
	workOrderListCmd.Flags().StringP("status", "s", "", "Filter by status (open or done)")

	workOrderCmd.AddCommand(workOrderCreateCmd)
	workOrderCmd.AddCommand(workOrderListCmd)
	workOrderCmd.AddCommand(workOrderCompleteCmd)
	workOrderCmd.AddCommand(workOrderDeleteCmd)
}

// WorkOrderCmd returns the work-order command
func WorkOrderCmd() *cobra.Command {
	return workOrderCmd
}
