package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/config"
	"github.com/example/fleet/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the fleet database",
		Long:  `Initialize the fleet database at ~/.fleet/fleet.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			withSeed, _ := cmd.Flags().GetBool("seed")

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing fleet database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			if _, err := config.LoadConfig(); err != nil {
				if err := config.SaveConfig(&config.Config{Version: "1"}); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Println("✓ Config file created")
			}

			if withSeed {
				if err := db.Seed(); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
				fmt.Println("✓ Demo fleet seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  fleet asset add GEN-001 --brand \"Atlas Copco\" --model \"QAS 60\"")
			fmt.Println("  fleet reserve add GEN-001 --customer \"Acme Corp\" --from 2025-10-20 --to 2025-10-24")
			fmt.Println("  fleet availability board")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Load a small demo fleet after initializing")
	return cmd
}
