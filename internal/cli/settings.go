package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/fleet/internal/config"
	"github.com/example/fleet/internal/wire"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage scheduler settings",
	Long:  "Configure the working-day buffer and the holiday calendar",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		buffer, err := wire.SettingsService().GetBufferDays(ctx)
		if err != nil {
			return err
		}
		holidays, err := wire.SettingsService().GetHolidays(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\nBuffer:   %d working days\n", buffer)
		if cfg, err := config.LoadConfig(); err == nil {
			if cfg.Depot != "" {
				fmt.Printf("Depot:    %s\n", cfg.Depot)
			}
			if cfg.DefaultSite != "" {
				fmt.Printf("Site:     %s (default)\n", cfg.DefaultSite)
			}
		}
		if len(holidays) == 0 {
			fmt.Println("Holidays: none")
		} else {
			fmt.Println("Holidays:")
			for _, d := range holidays {
				fmt.Printf("  %s\n", d)
			}
		}
		fmt.Println()
		return nil
	},
}

var settingsBufferCmd = &cobra.Command{
	Use:   "buffer [days]",
	Short: "Set the working-day buffer, or preview the ETA it produces",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 1 {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid buffer: %s", args[0])
			}
			if err := wire.SettingsService().SetBufferDays(ctx, days); err != nil {
				return err
			}
			fmt.Printf("✓ Buffer set to %d working days\n", days)
		}

		if from, _ := cmd.Flags().GetString("preview-from"); from != "" {
			eta, err := wire.SettingsService().PreviewETA(ctx, from)
			if err != nil {
				return err
			}
			fmt.Printf("%s → %s\n", from, eta)
		} else if len(args) == 0 {
			days, err := wire.SettingsService().GetBufferDays(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Buffer: %d working days\n", days)
		}
		return nil
	},
}

var holidayCmd = &cobra.Command{
	Use:   "holiday",
	Short: "Manage the holiday calendar",
}

var holidayAddCmd = &cobra.Command{
	Use:   "add [date]",
	Short: "Add a holiday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SettingsService().AddHoliday(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Holiday %s added\n", args[0])
		return nil
	},
}

var holidayRemoveCmd = &cobra.Command{
	Use:   "remove [date]",
	Short: "Remove a holiday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SettingsService().RemoveHoliday(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Holiday %s removed\n", args[0])
		return nil
	},
}

var holidayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List holidays",
	RunE: func(cmd *cobra.Command, args []string) error {
		holidays, err := wire.SettingsService().GetHolidays(context.Background())
		if err != nil {
			return err
		}
		if len(holidays) == 0 {
			fmt.Println("No holidays configured")
			return nil
		}
		for _, d := range holidays {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	settingsBufferCmd.Flags().String("preview-from", "", "Print the default ETA computed from this start date")

	holidayCmd.AddCommand(holidayAddCmd)
	holidayCmd.AddCommand(holidayRemoveCmd)
	holidayCmd.AddCommand(holidayListCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBufferCmd)
	settingsCmd.AddCommand(holidayCmd)
}

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	return settingsCmd
}
