package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/config"
	"pocketbook/internal/model"
	"pocketbook/internal/store"
	"pocketbook/internal/tui/theme"
)

var (
	flagDBPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pocketbook",
	Short: "Personal finance tracker",
	Long:  "Track accounts, bills, budgets and income divisions from the terminal.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the ledger database (defaults to the data dir)")
}

func initConfig() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded
	theme.SetActive(cfg.Appearance.Theme)
}

// dbPath resolves the database location: flag first, then config.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.DBPath(cfg)
}

// openStore is the shared store-opening path used by all commands.
func openStore() (*store.Store, error) {
	s, err := store.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath(), err)
	}
	return s, nil
}

// findAccount resolves an account by name with a friendly error.
func findAccount(s *store.Store, name string) (model.Account, error) {
	a, err := s.AccountByName(name)
	if err != nil {
		return model.Account{}, fmt.Errorf("account %q not found", name)
	}
	return a, nil
}

// findSubAccount resolves a parent.child pair against the account graph.
func findSubAccount(accounts []model.Account, pair model.PairID) (model.SubAccount, bool) {
	for _, a := range accounts {
		if a.Name != pair.Parent {
			continue
		}
		for _, sub := range a.SubAccounts {
			if sub.Name == pair.Name {
				return sub, true
			}
		}
	}
	return model.SubAccount{}, false
}

// findSubCategory resolves a parent.child pair against the category tree.
func findSubCategory(cats []model.Category, pair model.PairID) (model.SubCategory, bool) {
	for _, c := range cats {
		if c.Name != pair.Parent {
			continue
		}
		for _, sub := range c.SubCategories {
			if sub.Name == pair.Name {
				return sub, true
			}
		}
	}
	return model.SubCategory{}, false
}

func printTable(t cli.Table) {
	fmt.Print(cli.RenderTable(t))
}
