package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pocketbook/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	fmt.Println("  Welcome to pocketbook!")
	fmt.Println()
	fmt.Printf("  Data lives in %s\n\n", config.DataDir(cfg))

	// 1. Currency
	fmt.Println("  1. Currency code")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Widget projection window
	fmt.Println("  2. Upcoming-bills window")
	fmt.Println("     (1) 7 days")
	fmt.Println("     (2) 10 days [default]")
	fmt.Println("     (3) 30 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Widget.ProjectionDays = 7
	case "3":
		cfg.Widget.ProjectionDays = 30
	default:
		cfg.Widget.ProjectionDays = 10
	}
	fmt.Println()

	// 3. Daemon refresh
	fmt.Println("  3. Background refresh interval (minutes)")
	fmt.Printf("     Current: %d\n", cfg.Daemon.RefreshMinutes)
	fmt.Print("     > ")
	minutes, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(minutes)); err == nil && n > 0 {
		cfg.Daemon.RefreshMinutes = n
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Flexoki Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "flexoki-light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `pocketbook setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
