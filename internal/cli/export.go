package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:       "export [reservations|assets|workorders]",
	Short:     "Export a table as CSV",
	Long:      "Write reservations, assets or work orders as CSV to a file, or stdout when no --out is given",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"reservations", "assets", "workorders"},
	RunE: func(cmd *cobra.Command, args []string) error {
		table := "reservations"
		if len(args) == 1 {
			table = args[0]
		}
		assetCode, _ := cmd.Flags().GetString("asset")
		outPath, _ := cmd.Flags().GetString("out")

		ctx := context.Background()
		var rows [][]string
		var err error
		switch table {
		case "assets":
			rows, err = assetRows(ctx)
		case "workorders":
			rows, err = workOrderRows(ctx, assetCode)
		default:
			rows, err = reservationRows(ctx, assetCode)
		}
		if err != nil {
			return err
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}

		if outPath != "" {
			fmt.Printf("✓ Exported %d %s to %s\n", len(rows)-1, table, outPath)
		}
		return nil
	},
}

func reservationRows(ctx context.Context, assetCode string) ([][]string, error) {
	var (
		reservations []*primary.Reservation
		err          error
	)
	if assetCode != "" {
		reservations, err = wire.ReservationService().ListByAsset(ctx, assetCode)
	} else {
		reservations, err = wire.ReservationService().ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	rows := [][]string{{"id", "asset_code", "customer", "start_date", "end_date", "comment"}}
	for _, r := range reservations {
		rows = append(rows, []string{r.ID, r.AssetCode, r.Customer, r.StartDate, r.EndDate, r.Comment})
	}
	return rows, nil
}

func assetRows(ctx context.Context) ([][]string, error) {
	assets, err := wire.AssetService().ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	rows := [][]string{{"code", "brand", "model", "serial_number", "year", "kva", "status", "site", "customer"}}
	for _, a := range assets {
		rows = append(rows, []string{
			a.Code, a.Brand, a.Model, a.SerialNumber,
			strconv.Itoa(a.Year), strconv.FormatFloat(a.KVA, 'f', -1, 64),
			a.Status, a.Site, a.Customer,
		})
	}
	return rows, nil
}

func workOrderRows(ctx context.Context, assetCode string) ([][]string, error) {
	orders, err := wire.WorkOrderService().ListWorkOrders(ctx, primary.WorkOrderFilters{AssetCode: assetCode})
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	rows := [][]string{{"id", "asset_code", "type", "priority", "eta", "status", "description"}}
	for _, wo := range orders {
		rows = append(rows, []string{wo.ID, wo.AssetCode, wo.Type, wo.Priority, wo.ETA, wo.Status, wo.Description})
	}
	return rows, nil
}

func init() {
	exportCmd.Flags().StringP("asset", "a", "", "Restrict to one asset (reservations and workorders)")
	exportCmd.Flags().StringP("out", "o", "", "Output file (stdout when omitted)")
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return exportCmd
}
