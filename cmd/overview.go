package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show balances and upcoming obligations at a glance",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("pocketbook"))
	fmt.Println()

	balances := pipeline.DetailedBalances(accounts)
	total := money.Zero
	var rows [][]string
	for _, ab := range balances {
		rows = append(rows, []string{ab.Name, string(ab.Kind), cli.FormatMoney(ab.Balance)})
		total = total.Add(ab.Balance)
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatMoney(total)})
	printTable(cli.Table{
		Title:   "Balances",
		Headers: []string{"Account", "Kind", "Balance"},
		Rows:    rows,
	})
	fmt.Println()

	items, err := loadBillItems(s)
	if err != nil {
		return err
	}
	now := today()
	upcoming := dueWithin(pipeline.Upcoming(items, now), now, cfg.Widget.ProjectionDays)

	if len(upcoming) == 0 {
		fmt.Printf("  Nothing due in the next %d days.\n", cfg.Widget.ProjectionDays)
		return nil
	}

	var billRows [][]string
	for _, b := range upcoming {
		auto := ""
		if b.AutoPay {
			auto = "auto"
		}
		billRows = append(billRows, []string{
			b.Name, cli.FormatMoney(b.Amount), cli.FormatDate(b.DueDate), auto,
		})
	}
	billRows = append(billRows, []string{"---"})
	billRows = append(billRows, []string{"Total", cli.FormatMoney(pipeline.TotalDue(upcoming)), "", ""})
	printTable(cli.Table{
		Title:   fmt.Sprintf("Due in the next %d days", cfg.Widget.ProjectionDays),
		Headers: []string{"Bill", "Amount", "Due", ""},
		Rows:    billRows,
	})
	return nil
}

// today truncates the wall clock to a UTC calendar day.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dueWithin keeps upcoming bills due strictly inside the forward window.
func dueWithin(bills []pipeline.UpcomingBill, from time.Time, days int) []pipeline.UpcomingBill {
	cutoff := from.AddDate(0, 0, days)
	var out []pipeline.UpcomingBill
	for _, b := range bills {
		if b.DueDate.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out
}
