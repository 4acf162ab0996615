package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func checkingFixture() model.Account {
	return model.Account{
		ID:   uuid.New(),
		Name: "Checking",
		Kind: model.KindChecking,
		SubAccounts: []model.SubAccount{
			{
				Name:        "DI",
				AccountName: "Checking",
				Entries: []model.LedgerEntry{
					{Credit: money.FromInt(1000), Date: day(2025, time.January, 5)},
					{Debit: money.FromInt(250), Date: day(2025, time.January, 20)},
				},
			},
		},
	}
}

func TestComputeBalances_EndToEnd(t *testing.T) {
	totals := ComputeBalances([]model.Account{checkingFixture()})

	got, ok := totals["Checking"]
	if !ok {
		t.Fatal("no totals for Checking")
	}
	if !got.Credit.Equal(money.FromInt(1000)) || !got.Debit.Equal(money.FromInt(250)) {
		t.Errorf("totals = (%s, %s), want (1000, 250)", got.Credit, got.Debit)
	}

	simple := SimpleBalances([]model.Account{checkingFixture()})
	if !simple["Checking"].Equal(money.FromInt(750)) {
		t.Errorf("simple balance = %s, want 750", simple["Checking"])
	}
}

func TestVoidedEntriesExcluded(t *testing.T) {
	a := model.Account{
		Name: "Cash",
		Kind: model.KindCash,
		SubAccounts: []model.SubAccount{
			{
				Name:        "Wallet",
				AccountName: "Cash",
				Entries: []model.LedgerEntry{
					{Credit: money.FromInt(100)},
					{Debit: money.FromInt(30), Voided: true},
				},
			},
		},
	}

	simple := SimpleBalances([]model.Account{a})
	if !simple["Cash"].Equal(money.FromInt(100)) {
		t.Errorf("balance = %s, want 100 (voided entry must not count)", simple["Cash"])
	}
}

func TestEmptyAccountsAndSubAccounts(t *testing.T) {
	accounts := []model.Account{
		{Name: "Empty", Kind: model.KindSavings},
		{Name: "Hollow", Kind: model.KindSavings, SubAccounts: []model.SubAccount{
			{Name: "Nothing", AccountName: "Hollow"},
		}},
	}

	simple := SimpleBalances(accounts)
	for _, name := range []string{"Empty", "Hollow"} {
		if !simple[name].IsZero() {
			t.Errorf("%s balance = %s, want 0", name, simple[name])
		}
	}

	subs := ComputeSubBalances(accounts)
	if got := subs[model.NewPairID("Hollow", "Nothing")]; !got.Balance().IsZero() {
		t.Errorf("empty sub-account balance = %s, want 0", got.Balance())
	}
}

func TestDetailedBalancesRollUp(t *testing.T) {
	a := model.Account{
		Name: "Savings",
		Kind: model.KindSavings,
		SubAccounts: []model.SubAccount{
			{Name: "Vacation", AccountName: "Savings", Entries: []model.LedgerEntry{
				{Credit: money.FromInt(300)},
			}},
			{Name: "Emergency", AccountName: "Savings", Entries: []model.LedgerEntry{
				{Credit: money.FromInt(500), Debit: money.Zero},
				{Debit: money.FromInt(100)},
			}},
		},
	}

	detailed := DetailedBalances([]model.Account{a})
	if len(detailed) != 1 {
		t.Fatalf("got %d accounts, want 1", len(detailed))
	}
	ab := detailed[0]
	if !ab.Balance.Equal(money.FromInt(700)) {
		t.Errorf("parent balance = %s, want 700 (sum of children)", ab.Balance)
	}
	if len(ab.Subs) != 2 {
		t.Fatalf("got %d subs, want 2", len(ab.Subs))
	}
	if ab.Subs[0].Name != "Vacation" || !ab.Subs[0].Balance.Equal(money.FromInt(300)) {
		t.Errorf("sub[0] = %+v, want Vacation 300", ab.Subs[0])
	}
	if ab.Subs[1].Name != "Emergency" || !ab.Subs[1].Balance.Equal(money.FromInt(400)) {
		t.Errorf("sub[1] = %+v, want Emergency 400", ab.Subs[1])
	}
}

func TestReconcileCredit(t *testing.T) {
	limit := money.FromInt(5000)
	card := model.Account{
		Name:        "Visa",
		Kind:        model.KindCredit,
		CreditLimit: &limit,
		SubAccounts: []model.SubAccount{
			{Name: "Main", AccountName: "Visa", Entries: []model.LedgerEntry{
				{Debit: money.FromInt(1200)},
			}},
		},
	}

	// Issuer says 3900 available, so expected balance is 1100. Actual is
	// -1200 (pure debits), variance = -1200 - 1100 = -2300. Any sign is fine.
	rec, err := ReconcileCredit(card, money.FromInt(3900))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !rec.Expected.Equal(money.FromInt(1100)) {
		t.Errorf("expected = %s, want 1100", rec.Expected)
	}
	if !rec.Actual.Equal(money.FromInt(-1200)) {
		t.Errorf("actual = %s, want -1200", rec.Actual)
	}
	if !rec.Variance.Equal(money.FromInt(-2300)) {
		t.Errorf("variance = %s, want -2300", rec.Variance)
	}

	if _, err := ReconcileCredit(model.Account{Name: "Cash", Kind: model.KindCash}, money.Zero); err != ErrNotCreditAccount {
		t.Errorf("non-credit reconcile err = %v, want ErrNotCreditAccount", err)
	}
	if _, err := ReconcileCredit(model.Account{Name: "Amex", Kind: model.KindCredit}, money.Zero); err != ErrNoCreditLimit {
		t.Errorf("missing limit reconcile err = %v, want ErrNoCreditLimit", err)
	}
}
