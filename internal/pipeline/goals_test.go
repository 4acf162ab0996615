package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

func TestMonthlyGoalAmount(t *testing.T) {
	cases := []struct {
		amount string
		period schedule.Period
		want   string
	}{
		{"120", schedule.Weekly, "520"},  // 120 * 52/12
		{"120", schedule.BiWeekly, "260"}, // 120 * 26/12
		{"120", schedule.Monthly, "120"},
	}
	for _, tc := range cases {
		got, err := MonthlyGoalAmount(money.MustParse(tc.amount), tc.period)
		if err != nil {
			t.Fatalf("%s: %v", tc.period, err)
		}
		if !got.Equal(money.MustParse(tc.want)) {
			t.Errorf("%s %s -> %s, want %s", tc.amount, tc.period, got, tc.want)
		}
	}

	if _, err := MonthlyGoalAmount(money.FromInt(10), schedule.Quarterly); err == nil {
		t.Error("quarterly goal period accepted")
	}
}

func TestEvaluateSpendingGoal(t *testing.T) {
	groceries := model.SubCategory{ID: uuid.New(), Name: "Groceries", CategoryName: "Food"}
	food := model.Category{ID: uuid.New(), Name: "Food", SubCategories: []model.SubCategory{groceries}}

	accounts := []model.Account{{
		Name: "Checking",
		Kind: model.KindChecking,
		SubAccounts: []model.SubAccount{{
			Name: "Main", AccountName: "Checking",
			Entries: []model.LedgerEntry{
				{Debit: money.FromInt(80), Date: day(2025, time.June, 3), SubCategoryID: groceries.ID},
				{Debit: money.FromInt(45), Date: day(2025, time.June, 30), SubCategoryID: groceries.ID}, // last day counts
				{Debit: money.FromInt(45), Date: day(2025, time.July, 1), SubCategoryID: groceries.ID},  // next month: out
				{Debit: money.FromInt(99), Date: day(2025, time.June, 10), SubCategoryID: uuid.New()},   // other category: out
				{Debit: money.FromInt(20), Date: day(2025, time.June, 12), SubCategoryID: groceries.ID, Voided: true},
			},
		}},
	}}

	month := model.BudgetMonth{Year: 2025, Month: time.June}
	goal := model.SpendingGoal{CategoryID: food.ID, Amount: money.FromInt(200), Period: schedule.Monthly}

	st, err := EvaluateSpendingGoal(goal, month, food, accounts)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !st.Balance.Equal(money.FromInt(125)) {
		t.Errorf("balance = %s, want 125", st.Balance)
	}
	if !st.FreeToSpend.Equal(money.FromInt(75)) {
		t.Errorf("freeToSpend = %s, want 75", st.FreeToSpend)
	}
	if !st.OverBy.IsZero() {
		t.Errorf("overBy = %s, want 0", st.OverBy)
	}
}

func TestEvaluateSpendingGoal_OverBudget(t *testing.T) {
	sub := model.SubCategory{ID: uuid.New(), Name: "Eating Out", CategoryName: "Food"}
	cat := model.Category{ID: uuid.New(), Name: "Food", SubCategories: []model.SubCategory{sub}}

	accounts := []model.Account{{
		Name: "Checking", Kind: model.KindChecking,
		SubAccounts: []model.SubAccount{{
			Name: "Main", AccountName: "Checking",
			Entries: []model.LedgerEntry{
				{Debit: money.FromInt(130), Date: day(2025, time.June, 15), SubCategoryID: sub.ID},
			},
		}},
	}}

	goal := model.SpendingGoal{CategoryID: cat.ID, Amount: money.FromInt(100), Period: schedule.Monthly}
	st, err := EvaluateSpendingGoal(goal, model.BudgetMonth{Year: 2025, Month: time.June}, cat, accounts)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !st.OverBy.Equal(money.FromInt(30)) {
		t.Errorf("overBy = %s, want 30", st.OverBy)
	}
	if !st.FreeToSpend.Equal(money.FromInt(-30)) {
		t.Errorf("freeToSpend = %s, want -30", st.FreeToSpend)
	}
}

func TestEvaluateSavingsGoal(t *testing.T) {
	acctID := uuid.New()
	accounts := []model.Account{{
		ID: acctID, Name: "Savings", Kind: model.KindSavings,
		SubAccounts: []model.SubAccount{{
			Name: "Emergency", AccountName: "Savings",
			Entries: []model.LedgerEntry{
				{Credit: money.FromInt(150), Date: day(2025, time.June, 1)},
				{Credit: money.FromInt(150), Date: day(2025, time.June, 15)},
				{Debit: money.FromInt(50), Date: day(2025, time.June, 20)}, // debits don't count toward saving
				{Credit: money.FromInt(75), Date: day(2025, time.May, 31)}, // previous month: out
			},
		}},
	}}

	// 52/12 of 69.23... keep it simple: weekly goal of 60 -> monthly 260.
	goal := model.SavingsGoal{AccountID: acctID, Amount: money.FromInt(60), Period: schedule.Weekly}
	st, err := EvaluateSavingsGoal(goal, model.BudgetMonth{Year: 2025, Month: time.June}, accounts)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !st.MonthlyGoal.Equal(money.FromInt(260)) {
		t.Errorf("monthly goal = %s, want 260", st.MonthlyGoal)
	}
	if !st.Balance.Equal(money.FromInt(300)) {
		t.Errorf("balance = %s, want 300", st.Balance)
	}
	if !st.OverBy.Equal(money.FromInt(40)) {
		t.Errorf("overBy = %s, want 40", st.OverBy)
	}
}
