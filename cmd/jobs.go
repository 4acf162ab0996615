package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/store"
)

var (
	flagJobEmployer string
	flagJobHourly   string
	flagJobSalary   string
	flagPayGross    string
	flagPayDate     string
	flagPayHours    float64
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Track income sources and paychecks",
	RunE:  runJobsList,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs with recent paycheck totals",
	RunE:  runJobsList,
}

var jobsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Track a job (pick one of --hourly or --salary)",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsAdd,
}

var jobsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Stop tracking a job and its paychecks",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsRemove,
}

var jobsPaycheckCmd = &cobra.Command{
	Use:   "paycheck <job> <net-amount>",
	Short: "Record a received paycheck",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobsPaycheck,
}

func init() {
	jobsAddCmd.Flags().StringVar(&flagJobEmployer, "employer", "", "Who pays")
	jobsAddCmd.Flags().StringVar(&flagJobHourly, "hourly", "", "Hourly rate")
	jobsAddCmd.Flags().StringVar(&flagJobSalary, "salary", "", "Annual salary")

	jobsPaycheckCmd.Flags().StringVar(&flagPayGross, "gross", "", "Gross amount (default the net amount)")
	jobsPaycheckCmd.Flags().StringVar(&flagPayDate, "date", "", "Pay date (YYYY-MM-DD, default today)")
	jobsPaycheckCmd.Flags().Float64Var(&flagPayHours, "hours", 0, "Hours worked this period")

	jobsCmd.AddCommand(jobsListCmd, jobsAddCmd, jobsRemoveCmd, jobsPaycheckCmd)
	rootCmd.AddCommand(jobsCmd)
}

func findJob(s *store.Store, name string) (model.Job, error) {
	jobs, err := s.LoadJobs()
	if err != nil {
		return model.Job{}, err
	}
	for _, j := range jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return model.Job{}, fmt.Errorf("no job named %q", name)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	jobs, err := s.LoadJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("  No jobs tracked. Add one with `pocketbook jobs add`.")
		return nil
	}

	var rows [][]string
	for _, j := range jobs {
		rate := ""
		switch {
		case j.HourlyRate != nil:
			rate = cli.FormatMoney(*j.HourlyRate) + "/hr"
		case j.Salary != nil:
			rate = cli.FormatMoney(*j.Salary) + "/yr"
		}

		checks, err := s.LoadPaychecks(j.ID)
		if err != nil {
			return err
		}
		lastPaid, netTotal := "-", money.Zero
		for _, p := range checks {
			netTotal = netTotal.Add(p.Net)
		}
		if len(checks) > 0 {
			lastPaid = cli.FormatDate(checks[len(checks)-1].PayDate)
		}
		rows = append(rows, []string{
			j.Name, j.Employer, rate,
			strconv.Itoa(len(checks)), cli.FormatMoney(netTotal), lastPaid,
		})
	}
	printTable(cli.Table{
		Title:   "Jobs",
		Headers: []string{"Name", "Employer", "Rate", "Checks", "Net total", "Last paid"},
		Rows:    rows,
	})
	return nil
}

func runJobsAdd(_ *cobra.Command, args []string) error {
	if flagJobHourly != "" && flagJobSalary != "" {
		return errors.New("pick one of --hourly or --salary, not both")
	}

	j := model.Job{Name: args[0], Employer: flagJobEmployer}
	if flagJobHourly != "" {
		rate, err := money.Parse(flagJobHourly)
		if err != nil {
			return err
		}
		j.HourlyRate = &rate
	}
	if flagJobSalary != "" {
		salary, err := money.Parse(flagJobSalary)
		if err != nil {
			return err
		}
		j.Salary = &salary
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.CreateJob(&j); err != nil {
		return err
	}
	fmt.Printf("  Tracking job %q\n", j.Name)
	return nil
}

func runJobsRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	j, err := findJob(s, args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteJob(j.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed job %q and its paychecks\n", j.Name)
	return nil
}

func runJobsPaycheck(_ *cobra.Command, args []string) error {
	net, err := money.Parse(args[1])
	if err != nil {
		return err
	}
	gross := net
	if flagPayGross != "" {
		if gross, err = money.Parse(flagPayGross); err != nil {
			return err
		}
	}
	payDate := today()
	if flagPayDate != "" {
		if payDate, err = time.Parse("2006-01-02", flagPayDate); err != nil {
			return fmt.Errorf("invalid date %q: use YYYY-MM-DD", flagPayDate)
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	j, err := findJob(s, args[0])
	if err != nil {
		return err
	}
	p := model.Paycheck{
		JobID:   j.ID,
		PayDate: payDate,
		Gross:   gross,
		Net:     net,
		Hours:   flagPayHours,
	}
	if err := s.AddPaycheck(&p); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s net from %q on %s\n",
		cli.FormatMoney(net), j.Name, cli.FormatDate(payDate))
	return nil
}
