package model

import (
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/money"
)

// LedgerEntry is a single transaction against a sub-account. Credit is money
// in, Debit is money out; both are non-negative. A voided entry stays on the
// books for audit but is excluded from every balance computation.
type LedgerEntry struct {
	ID            uuid.UUID
	Memo          string
	Credit        money.Money
	Debit         money.Money
	Date          time.Time // when the transaction happened
	RecordedOn    time.Time // when it was entered
	Location      string
	SubAccountID  uuid.UUID
	SubCategoryID uuid.UUID
	Voided        bool
}
