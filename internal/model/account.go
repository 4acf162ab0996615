package model

import (
	"github.com/google/uuid"

	"pocketbook/internal/money"
)

// AccountKind classifies an account.
type AccountKind string

const (
	KindCredit      AccountKind = "credit"
	KindChecking    AccountKind = "checking"
	KindSavings     AccountKind = "savings"
	KindCertificate AccountKind = "cd"
	KindTrust       AccountKind = "trust"
	KindCash        AccountKind = "cash"
)

// AccountKinds lists every valid kind, in display order.
var AccountKinds = []AccountKind{
	KindCredit, KindChecking, KindSavings, KindCertificate, KindTrust, KindCash,
}

// Valid reports whether k is a known account kind.
func (k AccountKind) Valid() bool {
	for _, known := range AccountKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Account holds money through its SubAccounts; it never owns ledger entries
// directly. Name is the unique key across all accounts.
type Account struct {
	ID           uuid.UUID
	Name         string
	Kind         AccountKind
	CreditLimit  *money.Money // meaningful only when Kind == KindCredit
	InterestRate *money.Money // percentage, e.g. 4.5
	Location     string

	SubAccounts []SubAccount
}

// Normalize clears fields that are meaningless for the account's kind.
// Non-credit accounts carry no credit limit.
func (a *Account) Normalize() {
	if a.Kind != KindCredit {
		a.CreditLimit = nil
	}
}

// SubAccount is a named bucket of ledger entries inside an Account. It cannot
// exist without its parent; deleting the Account cascades here and onward to
// the entries.
type SubAccount struct {
	ID        uuid.UUID
	Name      string
	AccountID uuid.UUID

	// AccountName is denormalized for identity; the store fills it on load.
	AccountName string

	Entries []LedgerEntry
}

// PairID returns the (account name, sub-account name) composite identity,
// unique across the whole system.
func (s SubAccount) PairID() PairID {
	return NewPairID(s.AccountName, s.Name)
}
