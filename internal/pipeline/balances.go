// Package pipeline holds the pure computation core: balance resolution,
// upcoming-bill projection, income allocation, and budget goal evaluation.
// Functions here take in-memory snapshots and never mutate their inputs or
// perform I/O, so they are safe to call from any single goroutine.
package pipeline

import (
	"errors"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

// Totals are independently summed credit and debit figures.
type Totals struct {
	Credit money.Money
	Debit  money.Money
}

// Balance is the signed figure: credit minus debit.
func (t Totals) Balance() money.Money {
	return t.Credit.Sub(t.Debit)
}

func (t Totals) add(other Totals) Totals {
	return Totals{Credit: t.Credit.Add(other.Credit), Debit: t.Debit.Add(other.Debit)}
}

// ComputeBalances sums each account's credit and debit totals, rolled up from
// its sub-accounts. Accounts never hold entries directly. Accounts without
// sub-accounts and sub-accounts without entries contribute zero totals.
func ComputeBalances(accounts []model.Account) map[string]Totals {
	result := make(map[string]Totals, len(accounts))
	for _, a := range accounts {
		var total Totals
		for _, sub := range a.SubAccounts {
			total = total.add(subTotals(sub))
		}
		result[a.Name] = total
	}
	return result
}

// ComputeSubBalances sums credit and debit per sub-account, keyed by the
// sub-account's composite identity.
func ComputeSubBalances(accounts []model.Account) map[model.PairID]Totals {
	result := make(map[model.PairID]Totals)
	for _, a := range accounts {
		for _, sub := range a.SubAccounts {
			result[sub.PairID()] = subTotals(sub)
		}
	}
	return result
}

// subTotals sums one sub-account's entries. Voided entries are excluded
// entirely, not zeroed.
func subTotals(sub model.SubAccount) Totals {
	var t Totals
	for _, e := range sub.Entries {
		if e.Voided {
			continue
		}
		t.Credit = t.Credit.Add(e.Credit)
		t.Debit = t.Debit.Add(e.Debit)
	}
	return t
}

// SimpleBalances returns the signed balance per account name.
func SimpleBalances(accounts []model.Account) map[string]money.Money {
	totals := ComputeBalances(accounts)
	result := make(map[string]money.Money, len(totals))
	for name, t := range totals {
		result[name] = t.Balance()
	}
	return result
}

// SubBalance is one sub-account line in a detailed balance view.
type SubBalance struct {
	Name    string
	Balance money.Money
}

// AccountBalance is one account in a detailed balance view: the parent figure
// is the sum of its children, each independently summed.
type AccountBalance struct {
	Name    string
	Kind    model.AccountKind
	Balance money.Money
	Subs    []SubBalance
}

// DetailedBalances builds the hierarchical balance view in input order.
func DetailedBalances(accounts []model.Account) []AccountBalance {
	result := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		ab := AccountBalance{Name: a.Name, Kind: a.Kind}
		for _, sub := range a.SubAccounts {
			bal := subTotals(sub).Balance()
			ab.Subs = append(ab.Subs, SubBalance{Name: sub.Name, Balance: bal})
			ab.Balance = ab.Balance.Add(bal)
		}
		result = append(result, ab)
	}
	return result
}

// ErrNotCreditAccount is returned when reconciling a non-credit account.
var ErrNotCreditAccount = errors.New("account is not a credit account")

// ErrNoCreditLimit is returned when a credit account has no limit recorded.
var ErrNoCreditLimit = errors.New("credit account has no credit limit")

// CreditReconciliation compares a credit card's computed balance against what
// the issuer reports. Expected = creditLimit - availableCredit, where
// availableCredit is the user-observed figure. Variance keeps its sign; this
// is a reconciliation aid, not an accounting rule.
type CreditReconciliation struct {
	Actual   money.Money
	Expected money.Money
	Variance money.Money
}

// ReconcileCredit computes the reconciliation for one credit-kind account.
func ReconcileCredit(account model.Account, availableCredit money.Money) (CreditReconciliation, error) {
	if account.Kind != model.KindCredit {
		return CreditReconciliation{}, ErrNotCreditAccount
	}
	if account.CreditLimit == nil {
		return CreditReconciliation{}, ErrNoCreditLimit
	}

	actual := ComputeBalances([]model.Account{account})[account.Name].Balance()
	expected := account.CreditLimit.Sub(availableCredit)
	return CreditReconciliation{
		Actual:   actual,
		Expected: expected,
		Variance: actual.Sub(expected),
	}, nil
}
