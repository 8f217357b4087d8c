package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/cli"
	"github.com/example/fleet/internal/version"
)

func main() {
	log.SetLevel(log.WarnLevel)
	if os.Getenv("FLEET_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:     "fleet",
		Short:   "fleet - reservation scheduling for rental generator assets",
		Version: version.String(),
		Long: `fleet is a CLI tool for managing a rental fleet of generator assets.
It tracks reservations, derived availability, maintenance work orders and
the working-day calendar that drives default due dates.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AssetCmd())
	rootCmd.AddCommand(cli.ReserveCmd())
	rootCmd.AddCommand(cli.AvailabilityCmd())
	rootCmd.AddCommand(cli.WorkOrderCmd())
	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
