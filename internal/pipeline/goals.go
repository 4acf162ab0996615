package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

// GoalStatus is the read-only evaluation of one budget goal for a month.
type GoalStatus struct {
	// MonthlyGoal is the goal amount normalized to a per-month figure.
	MonthlyGoal money.Money
	// Balance is the actual spending (debits) or saving (credits)
	// attributed to the goal inside the month window.
	Balance money.Money
	// FreeToSpend is MonthlyGoal - Balance. Negative when over.
	FreeToSpend money.Money
	// OverBy is max(0, Balance - MonthlyGoal).
	OverBy money.Money
}

// MonthlyGoalAmount normalizes a goal amount from its native period to a
// monthly figure using exact rational factors (52/12 weekly, 26/12 bi-weekly).
func MonthlyGoalAmount(amount money.Money, period schedule.Period) (money.Money, error) {
	num, den, ok := period.MonthlyFactor()
	if !ok {
		return money.Zero, fmt.Errorf("period %q has no monthly conversion", period)
	}
	return amount.MulFraction(num, den), nil
}

// EvaluateSpendingGoal measures a category-linked spending goal against the
// debits recorded in the month window, inclusive on both ends. Voided entries
// never count. The evaluation is derived state; nothing is mutated.
func EvaluateSpendingGoal(goal model.SpendingGoal, month model.BudgetMonth, category model.Category, accounts []model.Account) (GoalStatus, error) {
	monthly, err := MonthlyGoalAmount(goal.Amount, goal.Period)
	if err != nil {
		return GoalStatus{}, err
	}

	subIDs := make(map[uuid.UUID]struct{}, len(category.SubCategories))
	for _, sub := range category.SubCategories {
		subIDs[sub.ID] = struct{}{}
	}

	start, end := month.Range()
	balance := money.Zero
	forEachEntry(accounts, func(e model.LedgerEntry) {
		if e.Voided || !inWindow(e.Date, start, end) {
			return
		}
		if _, ok := subIDs[e.SubCategoryID]; ok {
			balance = balance.Add(e.Debit)
		}
	})

	return status(monthly, balance), nil
}

// EvaluateSavingsGoal measures an account-linked savings goal against the
// credits recorded into that account in the month window.
func EvaluateSavingsGoal(goal model.SavingsGoal, month model.BudgetMonth, accounts []model.Account) (GoalStatus, error) {
	monthly, err := MonthlyGoalAmount(goal.Amount, goal.Period)
	if err != nil {
		return GoalStatus{}, err
	}

	start, end := month.Range()
	balance := money.Zero
	for _, a := range accounts {
		if a.ID != goal.AccountID {
			continue
		}
		for _, sub := range a.SubAccounts {
			for _, e := range sub.Entries {
				if e.Voided || !inWindow(e.Date, start, end) {
					continue
				}
				balance = balance.Add(e.Credit)
			}
		}
	}

	return status(monthly, balance), nil
}

func status(monthly, balance money.Money) GoalStatus {
	over := balance.Sub(monthly)
	if over.IsNegative() {
		over = money.Zero
	}
	return GoalStatus{
		MonthlyGoal: monthly,
		Balance:     balance,
		FreeToSpend: monthly.Sub(balance),
		OverBy:      over,
	}
}

// inWindow reports start <= t <= end by calendar date.
func inWindow(t, start, end time.Time) bool {
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

func forEachEntry(accounts []model.Account, fn func(model.LedgerEntry)) {
	for _, a := range accounts {
		for _, sub := range a.SubAccounts {
			for _, e := range sub.Entries {
				fn(e)
			}
		}
	}
}
