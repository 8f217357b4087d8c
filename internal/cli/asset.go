package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/config"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/wire"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage the asset registry",
	Long:  "Register, list and retire generator assets",
}

var assetAddCmd = &cobra.Command{
	Use:   "add [code]",
	Short: "Register a new asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		brand, _ := cmd.Flags().GetString("brand")
		model, _ := cmd.Flags().GetString("model")
		serial, _ := cmd.Flags().GetString("serial")
		year, _ := cmd.Flags().GetInt("year")
		kva, _ := cmd.Flags().GetFloat64("kva")
		site, _ := cmd.Flags().GetString("site")
		customer, _ := cmd.Flags().GetString("customer")

		asset, err := wire.AssetService().RegisterAsset(context.Background(), primary.RegisterAssetRequest{
			Code:         args[0],
			Brand:        brand,
			Model:        model,
			SerialNumber: serial,
			Year:         year,
			KVA:          kva,
			Site:         resolveSite(site),
			Customer:     customer,
		})
		if err != nil {
			return fmt.Errorf("failed to register asset: %w", err)
		}

		fmt.Printf("✓ Registered asset %s: %s %s\n", asset.Code, asset.Brand, asset.Model)
		return nil
	},
}

// resolveSite falls back to the configured default site when the --site flag
// was left empty. A missing or unreadable config just means no default.
func resolveSite(site string) string {
	if site != "" {
		return site
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.DefaultSite
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := wire.AssetService().ListAssets(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}

		if len(assets) == 0 {
			fmt.Println("No assets registered")
			return nil
		}

		fmt.Printf("\n%-10s %-15s %-15s %-8s %-12s %s\n", "CODE", "BRAND", "MODEL", "KVA", "STATUS", "SITE")
		fmt.Println("──────────────────────────────────────────────────────────────────────────")
		for _, a := range assets {
			fmt.Printf("%-10s %-15s %-15s %-8.0f %-12s %s\n", a.Code, a.Brand, a.Model, a.KVA, a.Status, a.Site)
		}
		fmt.Println()
		return nil
	},
}

var assetShowCmd = &cobra.Command{
	Use:   "show [code]",
	Short: "Show one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := wire.AssetService().GetAsset(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("\nAsset:  %s\n", asset.Code)
		fmt.Printf("Brand:  %s\n", asset.Brand)
		fmt.Printf("Model:  %s\n", asset.Model)
		if asset.SerialNumber != "" {
			fmt.Printf("Serial: %s\n", asset.SerialNumber)
		}
		if asset.Year != 0 {
			fmt.Printf("Year:   %d\n", asset.Year)
		}
		if asset.KVA != 0 {
			fmt.Printf("kVA:    %.0f\n", asset.KVA)
		}
		fmt.Printf("Status: %s\n", asset.Status)
		if asset.Site != "" {
			fmt.Printf("Site:   %s\n", asset.Site)
		}
		if asset.Customer != "" {
			fmt.Printf("Customer: %s\n", asset.Customer)
		}
		fmt.Println()
		return nil
	},
}

var assetStatusCmd = &cobra.Command{
	Use:   "status [code] [ready|rented|maintenance|repair]",
	Short: "Update an asset's operational status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AssetService().SetAssetStatus(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("✓ Asset %s is now %s\n", args[0], args[1])
		return nil
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete [code]",
	Short: "Remove an asset from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AssetService().DeleteAsset(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Asset %s deleted\n", args[0])
		return nil
	},
}

func init() {
	assetAddCmd.Flags().String("brand", "", "Manufacturer (required)")
	assetAddCmd.Flags().String("model", "", "Model designation (required)")
	assetAddCmd.Flags().String("serial", "", "Serial number")
	assetAddCmd.Flags().Int("year", 0, "Year of manufacture")
	assetAddCmd.Flags().Float64("kva", 0, "Rated power in kVA")
	assetAddCmd.Flags().String("site", "", "Current site (defaults to the configured default site)")
	assetAddCmd.Flags().String("customer", "", "Customer the asset is assigned to")
	_ = assetAddCmd.MarkFlagRequired("brand")
	_ = assetAddCmd.MarkFlagRequired("model")

	assetCmd.AddCommand(assetAddCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetShowCmd)
	assetCmd.AddCommand(assetStatusCmd)
	assetCmd.AddCommand(assetDeleteCmd)
}

// AssetCmd returns the asset command
func AssetCmd() *cobra.Command {
	return assetCmd
}
