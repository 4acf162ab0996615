package validate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

func TestAccountValidation(t *testing.T) {
	good := model.Account{Name: "Checking", Kind: model.KindChecking}
	if r := Account(good); !r.OK() {
		t.Errorf("valid account rejected: %v", r.Failures)
	}

	bad := model.Account{Name: "  ", Kind: model.AccountKind("brokerage")}
	r := Account(bad)
	if len(r.Failures) != 2 {
		t.Errorf("got %d failures, want 2: %v", len(r.Failures), r.Failures)
	}
	if r.Err() == nil {
		t.Error("Err() returned nil for a failing result")
	}
}

func TestInterestRateCap(t *testing.T) {
	tooHigh := money.MustParse("150")
	a := model.Account{Name: "Loans R Us", Kind: model.KindSavings, InterestRate: &tooHigh}
	r := Account(a)
	if r.OK() {
		t.Error("interest rate above 100% accepted")
	}
	if r.Failures[0].Field != "interestRate" {
		t.Errorf("failure field = %q, want interestRate", r.Failures[0].Field)
	}
}

func TestEntryValidation(t *testing.T) {
	e := model.LedgerEntry{
		Credit:        money.FromInt(-5),
		Debit:         money.Zero,
		Date:          time.Now(),
		SubAccountID:  uuid.New(),
		SubCategoryID: uuid.New(),
	}
	r := Entry(e)
	if r.OK() {
		t.Error("negative credit accepted")
	}

	orphan := model.LedgerEntry{Credit: money.FromInt(5), Date: time.Now()}
	r = Entry(orphan)
	fields := map[string]bool{}
	for _, f := range r.Failures {
		fields[f.Field] = true
	}
	if !fields["subAccount"] || !fields["subCategory"] {
		t.Errorf("missing reference failures not reported: %v", r.Failures)
	}
}

func TestBillValidation(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, -1, 0)
	b := model.Bill{Name: "Rent", Start: start, End: &before, Period: schedule.Monthly, Amount: money.FromInt(900)}
	r := Bill(b)
	if r.OK() {
		t.Error("end before start accepted")
	}
}

func TestDivisionValidation(t *testing.T) {
	d := model.IncomeDivision{
		Name:   "Paycheck",
		Amount: money.FromInt(450),
		Kind:   model.IncomePay,
		Devotions: []model.IncomeDevotion{
			{Kind: model.DevotionPercent, Group: model.GroupNeed, Percent: decimal.NewFromInt(120)},
		},
	}
	r := Division(d)
	if r.OK() {
		t.Error("devotion over 100% accepted")
	}
	if r.Failures[0].Field != "devotions[0].percent" {
		t.Errorf("failure field = %q, want devotions[0].percent", r.Failures[0].Field)
	}
}
