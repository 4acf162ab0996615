package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/validate"
)

var (
	flagEntryCredit   string
	flagEntryDebit    string
	flagEntryDate     string
	flagEntryMemo     string
	flagEntryLocation string
	flagLedgerLimit   int
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record and inspect transactions",
	RunE:  runLedgerList,
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <account.sub> <category.sub>",
	Short: "Record a transaction against a sub-account",
	Long: `Record a transaction. Exactly one of --credit (money in) or
--debit (money out) should carry the amount; the other stays zero.`,
	Args: cobra.ExactArgs(2),
	RunE: runLedgerAdd,
}

var ledgerVoidCmd = &cobra.Command{
	Use:   "void <entry-id>",
	Short: "Void an entry: it stays on the books but leaves every balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerVoid,
}

var ledgerRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Delete an entry outright",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerRemove,
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent entries, newest first",
	RunE:  runLedgerList,
}

func init() {
	ledgerAddCmd.Flags().StringVar(&flagEntryCredit, "credit", "", "Amount received")
	ledgerAddCmd.Flags().StringVar(&flagEntryDebit, "debit", "", "Amount spent")
	ledgerAddCmd.Flags().StringVar(&flagEntryDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	ledgerAddCmd.Flags().StringVar(&flagEntryMemo, "memo", "", "Free-form note")
	ledgerAddCmd.Flags().StringVar(&flagEntryLocation, "location", "", "Where the transaction happened")

	ledgerListCmd.Flags().IntVar(&flagLedgerLimit, "limit", 20, "Max entries to show")

	ledgerCmd.AddCommand(ledgerAddCmd, ledgerVoidCmd, ledgerRemoveCmd, ledgerListCmd)
	rootCmd.AddCommand(ledgerCmd)
}

func runLedgerAdd(_ *cobra.Command, args []string) error {
	accountPair, err := model.ParsePairID(args[0])
	if err != nil {
		return err
	}
	categoryPair, err := model.ParsePairID(args[1])
	if err != nil {
		return err
	}

	e := model.LedgerEntry{
		Memo:     flagEntryMemo,
		Location: flagEntryLocation,
		Date:     today(),
	}
	if flagEntryCredit != "" {
		if e.Credit, err = money.Parse(flagEntryCredit); err != nil {
			return err
		}
	}
	if flagEntryDebit != "" {
		if e.Debit, err = money.Parse(flagEntryDebit); err != nil {
			return err
		}
	}
	if flagEntryDate != "" {
		if e.Date, err = time.Parse("2006-01-02", flagEntryDate); err != nil {
			return fmt.Errorf("invalid date %q: use YYYY-MM-DD", flagEntryDate)
		}
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
	sub, ok := findSubAccount(accounts, accountPair)
	if !ok {
		return fmt.Errorf("sub-account %q not found", accountPair)
	}
	cats, err := s.LoadCategories()
	if err != nil {
		return err
	}
	subCat, ok := findSubCategory(cats, categoryPair)
	if !ok {
		return fmt.Errorf("sub-category %q not found", categoryPair)
	}

	e.SubAccountID = sub.ID
	e.SubCategoryID = subCat.ID
	if err := validate.Entry(e).Err(); err != nil {
		return err
	}
	if err := s.AddEntry(&e); err != nil {
		return err
	}

	amount := e.Credit
	verb := "credited"
	if amount.IsZero() {
		amount = e.Debit
		verb = "debited"
	}
	fmt.Printf("  %s %s %s (%s)\n", accountPair, verb, cli.FormatMoney(amount), e.ID)
	return nil
}

func runLedgerVoid(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.VoidEntry(id); err != nil {
		return err
	}
	fmt.Printf("  Voided entry %s\n", id)
	return nil
}

func runLedgerRemove(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.DeleteEntry(id); err != nil {
		return err
	}
	fmt.Printf("  Removed entry %s\n", id)
	return nil
}

func runLedgerList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}

	type line struct {
		entry model.LedgerEntry
		pair  model.PairID
	}
	var lines []line
	for _, a := range accounts {
		for _, sub := range a.SubAccounts {
			for _, e := range sub.Entries {
				lines = append(lines, line{entry: e, pair: sub.PairID()})
			}
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].entry.Date.After(lines[j].entry.Date)
	})
	if flagLedgerLimit > 0 && len(lines) > flagLedgerLimit {
		lines = lines[:flagLedgerLimit]
	}

	var rows [][]string
	for _, l := range lines {
		amount := cli.FormatMoney(l.entry.Credit)
		if l.entry.Credit.IsZero() {
			amount = "-" + cli.FormatMoney(l.entry.Debit)
		}
		note := l.entry.Memo
		if l.entry.Voided {
			note = "VOID " + note
		}
		rows = append(rows, []string{
			cli.FormatDate(l.entry.Date), l.pair.String(), amount, note,
		})
	}
	printTable(cli.Table{
		Title:   "Recent entries",
		Headers: []string{"Date", "Account", "Amount", "Memo"},
		Rows:    rows,
	})
	return nil
}
