package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/schedule"
	"pocketbook/internal/store"
	"pocketbook/internal/validate"
)

var (
	flagBillAmount   string
	flagBillPeriod   string
	flagBillStart    string
	flagBillEnd      string
	flagBillCompany  string
	flagBillLocation string
	flagBillAutoPay  bool
	flagBillUtility  bool
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Manage recurring bills and utilities",
	RunE:  runBillsList,
}

var billsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bills and utilities with their next due date",
	RunE:  runBillsList,
}

var billsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Track a recurring bill (or utility, with --utility)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsAdd,
}

var billsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Stop tracking a bill or utility",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsRemove,
}

var billsReadingCmd = &cobra.Command{
	Use:   "reading <utility> <amount>",
	Short: "Record a utility charge; estimates average over recent history",
	Args:  cobra.ExactArgs(2),
	RunE:  runBillsReading,
}

func init() {
	billsAddCmd.Flags().StringVarP(&flagBillAmount, "amount", "a", "", "Amount due each period (fixed bills)")
	billsAddCmd.Flags().StringVarP(&flagBillPeriod, "period", "p", "monthly",
		"Recurrence (daily, weekly, biweekly, monthly, quarterly, semiannual, annual)")
	billsAddCmd.Flags().StringVar(&flagBillStart, "start", "", "First due date (YYYY-MM-DD, default today)")
	billsAddCmd.Flags().StringVar(&flagBillEnd, "end", "", "Final date the bill applies (YYYY-MM-DD)")
	billsAddCmd.Flags().StringVar(&flagBillCompany, "company", "", "Who gets paid")
	billsAddCmd.Flags().StringVar(&flagBillLocation, "location", "", "Where the bill applies")
	billsAddCmd.Flags().BoolVar(&flagBillAutoPay, "auto-pay", false, "Paid automatically")
	billsAddCmd.Flags().BoolVar(&flagBillUtility, "utility", false,
		"Variable-amount utility; amount is estimated from recorded readings")

	billsCmd.AddCommand(billsListCmd, billsAddCmd, billsRemoveCmd, billsReadingCmd)
	rootCmd.AddCommand(billsCmd)
}

// loadBillItems flattens bills and utilities into the shared projection shape.
func loadBillItems(s *store.Store) ([]pipeline.BillLike, error) {
	bills, err := s.LoadBills()
	if err != nil {
		return nil, err
	}
	utilities, err := s.LoadUtilities()
	if err != nil {
		return nil, err
	}
	items := make([]pipeline.BillLike, 0, len(bills)+len(utilities))
	for i := range bills {
		items = append(items, &bills[i])
	}
	for i := range utilities {
		items = append(items, &utilities[i])
	}
	return items, nil
}

func runBillsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	items, err := loadBillItems(s)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("  No bills tracked. Add one with `pocketbook bills add`.")
		return nil
	}

	now := today()
	var rows [][]string
	for _, item := range items {
		due := "expired"
		if !item.IsExpired(now) {
			if d, ok := item.NextDueDate(now); ok {
				due = cli.FormatDate(d)
			} else {
				due = "-"
			}
		}
		auto := ""
		if item.IsAutoPay() {
			auto = "auto"
		}
		rows = append(rows, []string{
			item.DisplayName(), cli.FormatMoney(item.DueAmount()), due, auto,
		})
	}
	printTable(cli.Table{
		Title:   "Bills",
		Headers: []string{"Name", "Amount", "Next due", ""},
		Rows:    rows,
	})
	return nil
}

func runBillsAdd(_ *cobra.Command, args []string) error {
	period, err := schedule.ParsePeriod(flagBillPeriod)
	if err != nil {
		return err
	}
	start := today()
	if flagBillStart != "" {
		if start, err = time.Parse("2006-01-02", flagBillStart); err != nil {
			return fmt.Errorf("invalid start date %q: use YYYY-MM-DD", flagBillStart)
		}
	}
	var end *time.Time
	if flagBillEnd != "" {
		e, err := time.Parse("2006-01-02", flagBillEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q: use YYYY-MM-DD", flagBillEnd)
		}
		end = &e
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if flagBillUtility {
		u := model.Utility{
			Name: args[0], Company: flagBillCompany, Location: flagBillLocation,
			Start: start, End: end, Period: period, AutoPay: flagBillAutoPay,
		}
		if err := validate.Utility(u).Err(); err != nil {
			return err
		}
		if err := s.CreateUtility(&u); err != nil {
			return err
		}
		fmt.Printf("  Tracking utility %q (%s); record charges with `pocketbook bills reading`\n", u.Name, period)
		return nil
	}

	amount := money.Zero
	if flagBillAmount != "" {
		if amount, err = money.Parse(flagBillAmount); err != nil {
			return err
		}
	}
	b := model.Bill{
		Name: args[0], Company: flagBillCompany, Location: flagBillLocation,
		Start: start, End: end, Period: period, Amount: amount, AutoPay: flagBillAutoPay,
	}
	if err := validate.Bill(b).Err(); err != nil {
		return err
	}
	if err := s.CreateBill(&b); err != nil {
		return err
	}
	fmt.Printf("  Tracking bill %q: %s %s\n", b.Name, cli.FormatMoney(b.Amount), period)
	return nil
}

func runBillsRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bills, err := s.LoadBills()
	if err != nil {
		return err
	}
	for _, b := range bills {
		if b.Name == args[0] {
			if err := s.DeleteBill(b.ID); err != nil {
				return err
			}
			fmt.Printf("  Removed bill %q\n", b.Name)
			return nil
		}
	}
	utilities, err := s.LoadUtilities()
	if err != nil {
		return err
	}
	for _, u := range utilities {
		if u.Name == args[0] {
			if err := s.DeleteUtility(u.ID); err != nil {
				return err
			}
			fmt.Printf("  Removed utility %q and its readings\n", u.Name)
			return nil
		}
	}
	return fmt.Errorf("no bill or utility named %q", args[0])
}

func runBillsReading(_ *cobra.Command, args []string) error {
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	utilities, err := s.LoadUtilities()
	if err != nil {
		return err
	}
	for _, u := range utilities {
		if u.Name != args[0] {
			continue
		}
		r := model.UtilityReading{UtilityID: u.ID, Date: today(), Amount: amount}
		if err := s.AddUtilityReading(&r); err != nil {
			return err
		}
		u.Readings = append(u.Readings, r)
		fmt.Printf("  Recorded %s for %q; estimate is now %s\n",
			cli.FormatMoney(amount), u.Name, cli.FormatMoney(u.DueAmount()))
		return nil
	}
	return fmt.Errorf("no utility named %q", args[0])
}
