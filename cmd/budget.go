package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/schedule"
)

var flagGoalPeriod string

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Monthly goals and how they are tracking",
	RunE:  runBudgetShow,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the month's goals measured against the ledger",
	RunE:  runBudgetShow,
}

var budgetGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage spending and savings goals",
}

var budgetGoalSpendingCmd = &cobra.Command{
	Use:   "spending <category> <amount>",
	Short: "Cap a category's debits for the month",
	Long: `Cap a category's spending. The amount is given per --period and
normalized to a monthly figure: weekly goals count 52/12 weeks a month,
bi-weekly goals 26/12.`,
	Args: cobra.ExactArgs(2),
	RunE: runBudgetGoalSpending,
}

var budgetGoalSavingsCmd = &cobra.Command{
	Use:   "savings <account> <amount>",
	Short: "Target credits flowing into an account for the month",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetGoalSavings,
}

var budgetGoalRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Drop the goal linked to a category or account",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetGoalRemove,
}

func init() {
	budgetCmd.PersistentFlags().StringVar(&flagIncomeMonth, "month", "", "Budget month (YYYY-MM, default current)")
	budgetGoalCmd.PersistentFlags().StringVarP(&flagGoalPeriod, "period", "p", "monthly",
		"Goal period (weekly, biweekly, monthly)")

	budgetGoalCmd.AddCommand(budgetGoalSpendingCmd, budgetGoalSavingsCmd, budgetGoalRemoveCmd)
	budgetCmd.AddCommand(budgetShowCmd, budgetGoalCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bm, err := s.LoadBudgetMonth(year, month)
	if err != nil {
		return err
	}
	accounts, err := s.LoadAccounts()
	if err != nil {
		return err
	}
	cats, err := s.LoadCategories()
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Budget: " + cli.FormatMonth(year, month)))

	if len(bm.SpendingGoal) == 0 && len(bm.SavingsGoal) == 0 {
		fmt.Println("  No goals set. Add one with `pocketbook budget goal`.")
		return nil
	}

	if len(bm.SpendingGoal) > 0 {
		var rows [][]string
		for _, g := range bm.SpendingGoal {
			name := "(deleted category)"
			var cat model.Category
			for _, c := range cats {
				if c.ID == g.CategoryID {
					cat, name = c, c.Name
					break
				}
			}
			st, err := pipeline.EvaluateSpendingGoal(g, bm, cat, accounts)
			if err != nil {
				return err
			}
			left := cli.FormatSignedMoney(st.FreeToSpend) + " left"
			if st.OverBy.IsPositive() {
				left = cli.Warn("over by " + cli.FormatMoney(st.OverBy))
			}
			rows = append(rows, []string{
				name, cli.FormatMoney(st.Balance), cli.FormatMoney(st.MonthlyGoal), left,
			})
		}
		printTable(cli.Table{
			Title:   "Spending",
			Headers: []string{"Category", "Spent", "Goal", ""},
			Rows:    rows,
		})
	}

	if len(bm.SavingsGoal) > 0 {
		var rows [][]string
		for _, g := range bm.SavingsGoal {
			name := "(deleted account)"
			for _, a := range accounts {
				if a.ID == g.AccountID {
					name = a.Name
					break
				}
			}
			st, err := pipeline.EvaluateSavingsGoal(g, bm, accounts)
			if err != nil {
				return err
			}
			note := cli.FormatSignedMoney(st.FreeToSpend) + " to go"
			if !st.FreeToSpend.IsPositive() {
				note = "reached"
			}
			rows = append(rows, []string{
				name, cli.FormatMoney(st.Balance), cli.FormatMoney(st.MonthlyGoal), note,
			})
		}
		printTable(cli.Table{
			Title:   "Savings",
			Headers: []string{"Account", "Saved", "Goal", ""},
			Rows:    rows,
		})
	}
	return nil
}

func goalPeriod() (schedule.Period, error) {
	period, err := schedule.ParsePeriod(flagGoalPeriod)
	if err != nil {
		return "", err
	}
	if _, _, ok := period.MonthlyFactor(); !ok {
		return "", fmt.Errorf("period %q cannot be tracked against a month; use weekly, biweekly, or monthly", period)
	}
	return period, nil
}

func runBudgetGoalSpending(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}
	period, err := goalPeriod()
	if err != nil {
		return err
	}
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	c, err := s.CategoryByName(args[0])
	if err != nil {
		return fmt.Errorf("category %q not found", args[0])
	}
	g := model.SpendingGoal{CategoryID: c.ID, Amount: amount, Period: period}
	if err := s.AddSpendingGoal(&g, year, month); err != nil {
		return err
	}
	monthly, err := pipeline.MonthlyGoalAmount(amount, period)
	if err != nil {
		return err
	}
	fmt.Printf("  Capped %q at %s %s (%s/month) for %s\n",
		c.Name, cli.FormatMoney(amount), period, cli.FormatMoney(monthly),
		cli.FormatMonth(year, month))
	return nil
}

func runBudgetGoalSavings(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}
	period, err := goalPeriod()
	if err != nil {
		return err
	}
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	a, err := findAccount(s, args[0])
	if err != nil {
		return err
	}
	g := model.SavingsGoal{AccountID: a.ID, Amount: amount, Period: period}
	if err := s.AddSavingsGoal(&g, year, month); err != nil {
		return err
	}
	fmt.Printf("  Targeting %s %s into %q for %s\n",
		cli.FormatMoney(amount), period, a.Name, cli.FormatMonth(year, month))
	return nil
}

// runBudgetGoalRemove drops the month's goal whose category or account
// carries the given name.
func runBudgetGoalRemove(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bm, err := s.LoadBudgetMonth(year, month)
	if err != nil {
		return err
	}

	if c, err := s.CategoryByName(args[0]); err == nil {
		for _, g := range bm.SpendingGoal {
			if g.CategoryID == c.ID {
				if err := s.DeleteSpendingGoal(g.ID); err != nil {
					return err
				}
				fmt.Printf("  Removed spending goal on %q\n", c.Name)
				return nil
			}
		}
	}
	if a, err := s.AccountByName(args[0]); err == nil {
		for _, g := range bm.SavingsGoal {
			if g.AccountID == a.ID {
				if err := s.DeleteSavingsGoal(g.ID); err != nil {
					return err
				}
				fmt.Printf("  Removed savings goal on %q\n", a.Name)
				return nil
			}
		}
	}
	return fmt.Errorf("no goal named %q in %s", args[0], cli.FormatMonth(year, month))
}
