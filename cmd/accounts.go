package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/validate"
)

var (
	flagAccountKind     string
	flagAccountLimit    string
	flagAccountRate     string
	flagAccountLocation string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage accounts and sub-accounts",
	RunE:  runAccountsList,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with per-sub-account balances",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsAdd,
}

var accountsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete an account and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRemove,
}

var accountsRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountsRename,
}

var accountsSubAddCmd = &cobra.Command{
	Use:   "sub-add <account> <name>",
	Short: "Create a sub-account under an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountsSubAdd,
}

var accountsSubRemoveCmd = &cobra.Command{
	Use:   "sub-remove <account.sub>",
	Short: "Delete a sub-account and its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsSubRemove,
}

var accountsReconcileCmd = &cobra.Command{
	Use:   "reconcile <account> <available-credit>",
	Short: "Compare a credit card's books against the issuer's available credit",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountsReconcile,
}

func init() {
	accountsAddCmd.Flags().StringVarP(&flagAccountKind, "kind", "k", "checking",
		"Account kind (credit, checking, savings, cd, trust, cash)")
	accountsAddCmd.Flags().StringVar(&flagAccountLimit, "credit-limit", "", "Credit limit (credit accounts only)")
	accountsAddCmd.Flags().StringVar(&flagAccountRate, "interest-rate", "", "Interest rate percent")
	accountsAddCmd.Flags().StringVar(&flagAccountLocation, "location", "", "Institution or place the account lives")

	accountsCmd.AddCommand(accountsListCmd, accountsAddCmd, accountsRemoveCmd, accountsRenameCmd,
		accountsSubAddCmd, accountsSubRemoveCmd, accountsReconcileCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("  No accounts yet. Create one with `pocketbook accounts add`.")
		return nil
	}

	var rows [][]string
	for _, ab := range pipeline.DetailedBalances(accounts) {
		rows = append(rows, []string{ab.Name, string(ab.Kind), cli.FormatMoney(ab.Balance)})
		for _, sub := range ab.Subs {
			rows = append(rows, []string{"  " + sub.Name, "", cli.FormatMoney(sub.Balance)})
		}
	}
	printTable(cli.Table{
		Title:   "Accounts",
		Headers: []string{"Name", "Kind", "Balance"},
		Rows:    rows,
	})
	return nil
}

func runAccountsAdd(_ *cobra.Command, args []string) error {
	a := model.Account{
		Name:     args[0],
		Kind:     model.AccountKind(flagAccountKind),
		Location: flagAccountLocation,
	}
	if flagAccountLimit != "" {
		limit, err := money.Parse(flagAccountLimit)
		if err != nil {
			return err
		}
		a.CreditLimit = &limit
	}
	if flagAccountRate != "" {
		rate, err := money.Parse(flagAccountRate)
		if err != nil {
			return err
		}
		a.InterestRate = &rate
	}
	if err := validate.Account(a).Err(); err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.CreateAccount(&a); err != nil {
		return err
	}
	fmt.Printf("  Added %s account %q\n", a.Kind, a.Name)
	return nil
}

func runAccountsRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	a, err := findAccount(s, args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteAccount(a.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed account %q and its sub-accounts\n", a.Name)
	return nil
}

func runAccountsRename(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	a, err := findAccount(s, args[0])
	if err != nil {
		return err
	}
	if err := s.RenameAccount(a.ID, args[1]); err != nil {
		return err
	}
	fmt.Printf("  Renamed %q to %q\n", args[0], args[1])
	return nil
}

func runAccountsSubAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	a, err := findAccount(s, args[0])
	if err != nil {
		return err
	}
	sub := model.SubAccount{Name: args[1], AccountID: a.ID}
	if err := validate.SubAccount(sub).Err(); err != nil {
		return err
	}
	if err := s.CreateSubAccount(&sub); err != nil {
		return err
	}
	fmt.Printf("  Added sub-account %s\n", model.NewPairID(a.Name, sub.Name))
	return nil
}

func runAccountsSubRemove(_ *cobra.Command, args []string) error {
	pair, err := model.ParsePairID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}
	sub, ok := findSubAccount(accounts, pair)
	if !ok {
		return fmt.Errorf("sub-account %q not found", pair)
	}
	if err := s.DeleteSubAccount(sub.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed sub-account %s and its entries\n", pair)
	return nil
}

func runAccountsReconcile(_ *cobra.Command, args []string) error {
	available, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}
	var target *model.Account
	for i := range accounts {
		if accounts[i].Name == args[0] {
			target = &accounts[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("account %q not found", args[0])
	}

	rec, err := pipeline.ReconcileCredit(*target, available)
	if err != nil {
		return err
	}
	printTable(cli.Table{
		Title:   "Reconciliation: " + target.Name,
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"On the books", cli.FormatMoney(rec.Actual)},
			{"Issuer reports", cli.FormatMoney(rec.Expected)},
			{"Variance", cli.FormatSignedMoney(rec.Variance)},
		},
	})
	if rec.Variance.IsZero() {
		fmt.Println("  Books match the issuer.")
	} else {
		fmt.Println("  " + cli.Warn("Books disagree with the issuer; look for missing or duplicate entries."))
	}
	return nil
}
