// Package cmd implements the pocketbook CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocketbook/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:  %s\n", cfg.General.Currency)
	fmt.Printf("    Data dir:  %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:  %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Widget]")
	fmt.Printf("    Projection days: %d\n", cfg.Widget.ProjectionDays)
	fmt.Printf("    Output dir:      %s\n", config.WidgetDir(cfg))
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Refresh minutes: %d\n", cfg.Daemon.RefreshMinutes)
	fmt.Printf("    Listen address:  %s\n", cfg.Daemon.ListenAddr)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `pocketbook setup` to reconfigure.")
	return nil
}
