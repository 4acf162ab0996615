package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/pipeline"
)

var flagUpcomingDays int

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Project bills due over the coming days",
	RunE:  runUpcoming,
}

func init() {
	upcomingCmd.Flags().IntVarP(&flagUpcomingDays, "days", "n", 0,
		"Forward window in days (default from config)")
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcoming(_ *cobra.Command, _ []string) error {
	days := flagUpcomingDays
	if days <= 0 {
		days = cfg.Widget.ProjectionDays
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	items, err := loadBillItems(s)
	if err != nil {
		return err
	}

	now := today()
	upcoming := dueWithin(pipeline.Upcoming(items, now), now, days)
	if len(upcoming) == 0 {
		fmt.Printf("  Nothing due in the next %d days.\n", days)
		return nil
	}

	var rows [][]string
	for _, b := range upcoming {
		auto := ""
		if b.AutoPay {
			auto = "auto"
		}
		rows = append(rows, []string{
			b.Name, cli.FormatMoney(b.Amount), cli.FormatDate(b.DueDate),
			cli.FormatDueIn(b.DueDate, now), auto,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(pipeline.TotalDue(upcoming)), "", "", ""})
	printTable(cli.Table{
		Title:   fmt.Sprintf("Due in the next %d days", days),
		Headers: []string{"Bill", "Amount", "Due", "", ""},
		Rows:    rows,
	})
	return nil
}
