package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/config"
	"pocketbook/internal/widget"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show data file, widget, and daemon health",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("pocketbook status"))
	fmt.Println()

	path := dbPath()
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  Database: %s (not created yet)\n", path)
	} else {
		fmt.Printf("  Database: %s (%.1f KB, modified %s)\n",
			path, float64(info.Size())/1024, info.ModTime().Local().Format("Jan 2 15:04"))
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
	entries := 0
	for _, a := range accounts {
		for _, sub := range a.SubAccounts {
			entries += len(sub.Entries)
		}
	}
	bills, err := s.LoadBills()
	if err != nil {
		return err
	}
	utilities, err := s.LoadUtilities()
	if err != nil {
		return err
	}
	jobs, err := s.LoadJobs()
	if err != nil {
		return err
	}

	fmt.Printf("  Accounts: %d  Entries: %d  Bills: %d  Jobs: %d\n",
		len(accounts), entries, len(bills)+len(utilities), len(jobs))
	fmt.Println()

	snap, err := widget.ReadUpcomingBills(config.WidgetDir(cfg))
	switch {
	case os.IsNotExist(err):
		fmt.Println("  Widget snapshot: none (run `pocketbook widget write`)")
	case err != nil:
		fmt.Printf("  Widget snapshot: unreadable (%v)\n", err)
	default:
		age := time.Since(snap.GeneratedAt)
		note := ""
		if age > 2*time.Duration(cfg.Daemon.RefreshMinutes)*time.Minute {
			note = cli.Warn(" (stale)")
		}
		fmt.Printf("  Widget snapshot: %s old, %d-day window%s\n",
			age.Round(time.Minute), snap.ProjectionDays, note)
	}

	if pid, err := readPID(daemonPIDFile()); err == nil && processAlive(pid) {
		fmt.Printf("  Daemon: running (pid %d)\n", pid)
	} else {
		fmt.Println("  Daemon: not running")
	}
	fmt.Println()
	return nil
}
