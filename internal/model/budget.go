package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

// BudgetMonth is one month's plan: the income divisions received in it and
// the spending/savings goals measured against it. Identity is (Year, Month).
type BudgetMonth struct {
	Year  int
	Month time.Month

	Divisions    []IncomeDivision
	SpendingGoal []SpendingGoal
	SavingsGoal  []SavingsGoal
}

// Key renders the month identity as "2025-06".
func (b BudgetMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", b.Year, int(b.Month))
}

// Range returns the inclusive [first day, last day] window of the month,
// both at midnight UTC.
func (b BudgetMonth) Range() (start, end time.Time) {
	start = time.Date(b.Year, b.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// SpendingGoal caps debits attributed to a category for the month.
type SpendingGoal struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Amount     money.Money
	Period     schedule.Period
}

// SavingsGoal targets credits flowing into an account for the month.
type SavingsGoal struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Amount    money.Money
	Period    schedule.Period
}
