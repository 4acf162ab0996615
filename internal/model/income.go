package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pocketbook/internal/money"
)

// IncomeKind classifies where an income division's money came from.
type IncomeKind string

const (
	IncomePay      IncomeKind = "pay"
	IncomeGift     IncomeKind = "gift"
	IncomeDonation IncomeKind = "donation"
)

// Valid reports whether k is a known income kind.
func (k IncomeKind) Valid() bool {
	switch k {
	case IncomePay, IncomeGift, IncomeDonation:
		return true
	}
	return false
}

// DevotionKind selects how a devotion takes its share of a division's total.
type DevotionKind string

const (
	// DevotionAmount takes a fixed amount.
	DevotionAmount DevotionKind = "amount"
	// DevotionPercent takes a percentage of the division's total.
	DevotionPercent DevotionKind = "percent"
	// DevotionRemainder splits whatever is left, evenly with its peers.
	DevotionRemainder DevotionKind = "remainder"
)

// Valid reports whether k is a known devotion kind.
func (k DevotionKind) Valid() bool {
	switch k {
	case DevotionAmount, DevotionPercent, DevotionRemainder:
		return true
	}
	return false
}

// DevotionGroup is the budgeting classification of a devotion.
type DevotionGroup string

const (
	GroupNeed    DevotionGroup = "need"
	GroupWant    DevotionGroup = "want"
	GroupSavings DevotionGroup = "savings"
)

// Valid reports whether g is a known devotion group.
func (g DevotionGroup) Valid() bool {
	switch g {
	case GroupNeed, GroupWant, GroupSavings:
		return true
	}
	return false
}

// IncomeDivision splits one received amount (a paycheck, a gift) across its
// devotions. Once Finalized it represents real money and must not change.
type IncomeDivision struct {
	ID        uuid.UUID
	Name      string
	Amount    money.Money
	Kind      IncomeKind
	DepositTo *uuid.UUID // account the money landed in, when known
	Finalized bool

	Devotions []IncomeDevotion
}

// IncomeDevotion is one allocation rule inside a division.
type IncomeDevotion struct {
	ID         uuid.UUID
	DivisionID uuid.UUID
	Name       string
	Kind       DevotionKind
	Group      DevotionGroup

	// Amount is the fixed value for DevotionAmount devotions.
	Amount money.Money
	// Percent is the share (e.g. 8 for 8%) for DevotionPercent devotions.
	Percent decimal.Decimal

	// TargetAccount is where this slice is meant to go, when known.
	TargetAccount *uuid.UUID
}
