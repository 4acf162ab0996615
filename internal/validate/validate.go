// Package validate checks user input before it reaches the store. Failures
// are collected as field-level records for the caller to display, never
// raised as fatal errors.
package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

// FieldError is one failed check on one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Result collects field errors from a validation pass.
type Result struct {
	Failures []FieldError
}

// Addf records a failure against a field.
func (r *Result) Addf(field, format string, args ...any) {
	r.Failures = append(r.Failures, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// OK reports whether every check passed.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Err folds the failures into a single error for CLI surfaces, or nil when
// everything passed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	msgs := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		msgs[i] = f.String()
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

// maxInterestRate is the sanity cap on interest rates, in percent.
var maxInterestRate = money.FromInt(100)

// Account checks an account record.
func Account(a model.Account) Result {
	var r Result
	if strings.TrimSpace(a.Name) == "" {
		r.Addf("name", "must not be empty")
	}
	if !a.Kind.Valid() {
		r.Addf("kind", "unknown account kind %q", a.Kind)
	}
	if a.CreditLimit != nil && a.CreditLimit.IsNegative() {
		r.Addf("creditLimit", "must not be negative")
	}
	if a.InterestRate != nil {
		if a.InterestRate.IsNegative() {
			r.Addf("interestRate", "must not be negative")
		} else if a.InterestRate.Cmp(maxInterestRate) > 0 {
			r.Addf("interestRate", "exceeds 100%%")
		}
	}
	return r
}

// SubAccount checks a sub-account record. The owning account is required.
func SubAccount(s model.SubAccount) Result {
	var r Result
	if strings.TrimSpace(s.Name) == "" {
		r.Addf("name", "must not be empty")
	}
	if s.AccountID == uuid.Nil {
		r.Addf("account", "a sub-account cannot exist without a parent account")
	}
	return r
}

// Entry checks a ledger entry: both sides non-negative, references present.
func Entry(e model.LedgerEntry) Result {
	var r Result
	if e.Credit.IsNegative() {
		r.Addf("credit", "must not be negative")
	}
	if e.Debit.IsNegative() {
		r.Addf("debit", "must not be negative")
	}
	if e.Date.IsZero() {
		r.Addf("date", "must be set")
	}
	if e.SubAccountID == uuid.Nil {
		r.Addf("subAccount", "must reference a sub-account")
	}
	if e.SubCategoryID == uuid.Nil {
		r.Addf("subCategory", "must reference a sub-category")
	}
	return r
}

// Bill checks a recurring bill record.
func Bill(b model.Bill) Result {
	var r Result
	if strings.TrimSpace(b.Name) == "" {
		r.Addf("name", "must not be empty")
	}
	if b.Start.IsZero() {
		r.Addf("start", "must be set")
	}
	if !b.Period.Valid() {
		r.Addf("period", "unknown period %q", b.Period)
	}
	if b.Amount.IsNegative() {
		r.Addf("amount", "must not be negative")
	}
	if b.End != nil && b.End.Before(b.Start) {
		r.Addf("end", "must not precede start")
	}
	return r
}

// Utility checks a recurring utility record.
func Utility(u model.Utility) Result {
	var r Result
	if strings.TrimSpace(u.Name) == "" {
		r.Addf("name", "must not be empty")
	}
	if u.Start.IsZero() {
		r.Addf("start", "must be set")
	}
	if !u.Period.Valid() {
		r.Addf("period", "unknown period %q", u.Period)
	}
	if u.End != nil && u.End.Before(u.Start) {
		r.Addf("end", "must not precede start")
	}
	return r
}

var hundred = decimal.NewFromInt(100)

// Division checks an income division and its devotions.
func Division(d model.IncomeDivision) Result {
	var r Result
	if strings.TrimSpace(d.Name) == "" {
		r.Addf("name", "must not be empty")
	}
	if d.Amount.IsNegative() {
		r.Addf("amount", "must not be negative")
	}
	if !d.Kind.Valid() {
		r.Addf("kind", "unknown income kind %q", d.Kind)
	}
	for i, dev := range d.Devotions {
		field := fmt.Sprintf("devotions[%d]", i)
		if !dev.Kind.Valid() {
			r.Addf(field+".kind", "unknown devotion kind %q", dev.Kind)
		}
		if !dev.Group.Valid() {
			r.Addf(field+".group", "unknown devotion group %q", dev.Group)
		}
		switch dev.Kind {
		case model.DevotionAmount:
			if dev.Amount.IsNegative() {
				r.Addf(field+".amount", "must not be negative")
			}
		case model.DevotionPercent:
			if dev.Percent.IsNegative() {
				r.Addf(field+".percent", "must not be negative")
			} else if dev.Percent.GreaterThan(hundred) {
				r.Addf(field+".percent", "exceeds 100%%")
			}
		}
	}
	return r
}
