package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/store"
	"pocketbook/internal/validate"
)

var (
	flagIncomeMonth     string
	flagIncomeKind      string
	flagIncomeDeposit   string
	flagDevoteGroup     string
	flagDevoteAmount    string
	flagDevotePercent   string
	flagDevoteRemainder bool
	flagDevoteTarget    string
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Divide received income across devotions",
	RunE:  runIncomeList,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the month's income divisions",
	RunE:  runIncomeList,
}

var incomeAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Record a received amount to divide",
	Args:  cobra.ExactArgs(2),
	RunE:  runIncomeAdd,
}

var incomeDevoteCmd = &cobra.Command{
	Use:   "devote <division> <name>",
	Short: "Add an allocation rule to a division",
	Long: `Add a devotion to an income division. Pick exactly one of
--amount (fixed), --percent (share of the division), or --remainder
(split what is left evenly with other remainder devotions).`,
	Args: cobra.ExactArgs(2),
	RunE: runIncomeDevote,
}

var incomeShowCmd = &cobra.Command{
	Use:   "show <division>",
	Short: "Show a division's computed allocation",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeShow,
}

var incomeFinalizeCmd = &cobra.Command{
	Use:   "finalize <division>",
	Short: "Lock a division; finalized divisions never change",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeFinalize,
}

var incomeRemoveCmd = &cobra.Command{
	Use:   "remove <division>",
	Short: "Delete a division and its devotions",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeRemove,
}

func init() {
	incomeCmd.PersistentFlags().StringVar(&flagIncomeMonth, "month", "", "Budget month (YYYY-MM, default current)")

	incomeAddCmd.Flags().StringVar(&flagIncomeKind, "kind", "pay", "Where the money came from (pay, gift, donation)")
	incomeAddCmd.Flags().StringVar(&flagIncomeDeposit, "deposit-to", "", "Account the money landed in")

	incomeDevoteCmd.Flags().StringVar(&flagDevoteGroup, "group", "need", "Budget group (need, want, savings)")
	incomeDevoteCmd.Flags().StringVar(&flagDevoteAmount, "amount", "", "Fixed amount")
	incomeDevoteCmd.Flags().StringVar(&flagDevotePercent, "percent", "", "Percentage of the division (e.g. 8 for 8%)")
	incomeDevoteCmd.Flags().BoolVar(&flagDevoteRemainder, "remainder", false, "Split whatever is left")
	incomeDevoteCmd.Flags().StringVar(&flagDevoteTarget, "target", "", "Account this slice is meant for")

	incomeCmd.AddCommand(incomeListCmd, incomeAddCmd, incomeDevoteCmd, incomeShowCmd,
		incomeFinalizeCmd, incomeRemoveCmd)
	rootCmd.AddCommand(incomeCmd)
}

// budgetMonth resolves the --month flag, defaulting to the current month.
func budgetMonth() (int, time.Month, error) {
	if flagIncomeMonth == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", flagIncomeMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: use YYYY-MM", flagIncomeMonth)
	}
	return t.Year(), t.Month(), nil
}

func findDivision(s *store.Store, year int, month time.Month, name string) (model.IncomeDivision, error) {
	divisions, err := s.LoadDivisions(year, month)
	if err != nil {
		return model.IncomeDivision{}, err
	}
	for _, div := range divisions {
		if div.Name == name {
			return div, nil
		}
	}
	return model.IncomeDivision{}, fmt.Errorf("no division named %q in %s", name,
		cli.FormatMonth(year, month))
}

func runIncomeList(_ *cobra.Command, _ []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	divisions, err := s.LoadDivisions(year, month)
	if err != nil {
		return err
	}
	if len(divisions) == 0 {
		fmt.Printf("  No income divisions in %s.\n", cli.FormatMonth(year, month))
		return nil
	}

	var rows [][]string
	for _, div := range divisions {
		alloc := pipeline.Allocate(div)
		state := ""
		if div.Finalized {
			state = "finalized"
		}
		balanced := "balanced"
		if !alloc.Balanced() {
			balanced = cli.FormatSignedMoney(alloc.Variance) + " off"
		}
		rows = append(rows, []string{
			div.Name, string(div.Kind), cli.FormatMoney(div.Amount),
			fmt.Sprintf("%d", len(div.Devotions)), balanced, state,
		})
	}
	printTable(cli.Table{
		Title:   "Income: " + cli.FormatMonth(year, month),
		Headers: []string{"Division", "Kind", "Amount", "Devotions", "Allocation", ""},
		Rows:    rows,
	})
	return nil
}

func runIncomeAdd(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
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

	div := model.IncomeDivision{
		Name:   args[0],
		Amount: amount,
		Kind:   model.IncomeKind(flagIncomeKind),
	}
	if flagIncomeDeposit != "" {
		a, err := findAccount(s, flagIncomeDeposit)
		if err != nil {
			return err
		}
		div.DepositTo = &a.ID
	}
	if err := validate.Division(div).Err(); err != nil {
		return err
	}
	if err := s.CreateDivision(&div, year, month); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s %q in %s; add devotions with `pocketbook income devote`\n",
		cli.FormatMoney(div.Amount), div.Name, cli.FormatMonth(year, month))
	return nil
}

func runIncomeDevote(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	dev := model.IncomeDevotion{
		Name:  args[1],
		Group: model.DevotionGroup(flagDevoteGroup),
	}
	picked := 0
	if flagDevoteAmount != "" {
		picked++
		dev.Kind = model.DevotionAmount
		if dev.Amount, err = money.Parse(flagDevoteAmount); err != nil {
			return err
		}
	}
	if flagDevotePercent != "" {
		picked++
		dev.Kind = model.DevotionPercent
		if dev.Percent, err = decimal.NewFromString(flagDevotePercent); err != nil {
			return fmt.Errorf("invalid percent %q", flagDevotePercent)
		}
	}
	if flagDevoteRemainder {
		picked++
		dev.Kind = model.DevotionRemainder
	}
	if picked != 1 {
		return errors.New("pick exactly one of --amount, --percent, or --remainder")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if flagDevoteTarget != "" {
		a, err := findAccount(s, flagDevoteTarget)
		if err != nil {
			return err
		}
		dev.TargetAccount = &a.ID
	}

	div, err := findDivision(s, year, month, args[0])
	if err != nil {
		return err
	}
	div.Devotions = append(div.Devotions, dev)
	if err := validate.Division(div).Err(); err != nil {
		return err
	}
	if err := s.UpdateDivision(div); err != nil {
		if errors.Is(err, store.ErrFinalized) {
			return fmt.Errorf("division %q is finalized and cannot change", div.Name)
		}
		return err
	}
	fmt.Printf("  Devoted %q (%s) in division %q\n", dev.Name, dev.Kind, div.Name)
	return nil
}

func runIncomeShow(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	div, err := findDivision(s, year, month, args[0])
	if err != nil {
		return err
	}
	alloc := pipeline.Allocate(div)

	var rows [][]string
	for _, dev := range div.Devotions {
		detail := ""
		switch dev.Kind {
		case model.DevotionPercent:
			detail = cli.FormatPercent(dev.Percent)
		case model.DevotionRemainder:
			detail = "remainder"
		}
		rows = append(rows, []string{
			dev.Name, string(dev.Group), detail, cli.FormatMoney(alloc.EffectiveAmount(dev.ID)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Received", "", "", cli.FormatMoney(div.Amount)})
	if !alloc.Variance.IsZero() {
		rows = append(rows, []string{"Unallocated", "", "", cli.FormatSignedMoney(alloc.Variance)})
	}
	printTable(cli.Table{
		Title:   fmt.Sprintf("%s (%s)", div.Name, cli.FormatMonth(year, month)),
		Headers: []string{"Devotion", "Group", "Rule", "Amount"},
		Rows:    rows,
	})

	groups := pipeline.GroupTotals(div)
	for _, g := range []model.DevotionGroup{model.GroupNeed, model.GroupWant, model.GroupSavings} {
		if total, ok := groups[g]; ok {
			fmt.Printf("  %-8s %s\n", g, cli.FormatMoney(total))
		}
	}
	return nil
}

func runIncomeFinalize(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	div, err := findDivision(s, year, month, args[0])
	if err != nil {
		return err
	}
	if err := s.FinalizeDivision(div.ID); err != nil {
		return err
	}
	fmt.Printf("  Finalized %q; it can no longer be edited\n", div.Name)
	return nil
}

func runIncomeRemove(_ *cobra.Command, args []string) error {
	year, month, err := budgetMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	div, err := findDivision(s, year, month, args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteDivision(div.ID); err != nil {
		if errors.Is(err, store.ErrFinalized) {
			return fmt.Errorf("division %q is finalized and cannot be removed", div.Name)
		}
		return err
	}
	fmt.Printf("  Removed division %q\n", div.Name)
	return nil
}
