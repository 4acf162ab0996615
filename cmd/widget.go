package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/config"
	"pocketbook/internal/widget"
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Maintain the desktop widget's upcoming-bills snapshot",
}

var widgetWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Recompute the projection and rewrite the snapshot file",
	RunE:  runWidgetWrite,
}

var widgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the snapshot the widget is currently reading",
	RunE:  runWidgetShow,
}

func init() {
	widgetCmd.AddCommand(widgetWriteCmd, widgetShowCmd)
	rootCmd.AddCommand(widgetCmd)
}

func runWidgetWrite(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	items, err := loadBillItems(s)
	if err != nil {
		return err
	}
	snap := widget.BuildUpcomingBills(items, time.Now(), cfg.Widget.ProjectionDays)
	dir := config.WidgetDir(cfg)
	if err := widget.WriteUpcomingBills(dir, snap); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s covering %d days\n",
		filepath.Join(dir, widget.UpcomingBillsFile), snap.ProjectionDays)
	return nil
}

func runWidgetShow(_ *cobra.Command, _ []string) error {
	snap, err := widget.ReadUpcomingBills(config.WidgetDir(cfg))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  No snapshot yet. Write one with `pocketbook widget write`.")
			return nil
		}
		return err
	}

	fmt.Println(cli.RenderTitle("Widget snapshot"))
	fmt.Printf("  Generated %s, %d-day window\n\n",
		snap.GeneratedAt.Local().Format("Jan 2 15:04"), snap.ProjectionDays)
	if len(snap.Days) == 0 {
		fmt.Println("  Nothing due in the window.")
		return nil
	}
	var rows [][]string
	for _, day := range snap.Days {
		for i, b := range day.Bills {
			date := ""
			if i == 0 {
				date = cli.FormatDate(day.Date)
			}
			rows = append(rows, []string{date, b.Name, cli.FormatMoney(b.Amount)})
		}
	}
	printTable(cli.Table{
		Headers: []string{"Due", "Bill", "Amount"},
		Rows:    rows,
	})
	return nil
}
