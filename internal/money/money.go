// Package money provides an exact decimal value type for currency amounts.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal currency amount. The zero value is zero dollars.
// Arithmetic never passes through binary floating point; rounding to the
// currency's minor unit happens only at display time.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// Parse converts a decimal string such as "137.50" into a Money.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustParse converts a decimal string into a Money and panics on error.
// Use only in tests or with literals known to be valid.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt returns a Money holding a whole number of currency units.
func FromInt(n int64) Money {
	return Money{d: decimal.NewFromInt(n)}
}

// FromDecimal wraps a raw decimal as a Money.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.d }

// Add returns m + other.
func (m Money) Add(other Money) Money { return Money{d: m.d.Add(other.d)} }

// Sub returns m - other.
func (m Money) Sub(other Money) Money { return Money{d: m.d.Sub(other.d)} }

// Neg returns -m.
func (m Money) Neg() Money { return Money{d: m.d.Neg()} }

// Percent returns m * pct/100 without intermediate rounding.
// pct is a percentage such as 8 for 8%.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{d: m.d.Mul(pct).Div(decimal.NewFromInt(100))}
}

// DivInt splits m into n equal shares without rounding. n must be non-zero;
// callers guard the degenerate case before dividing.
func (m Money) DivInt(n int64) Money {
	return Money{d: m.d.Div(decimal.NewFromInt(n))}
}

// monthlyPrecision bounds repeating fractions like 52/12 during period
// normalization.
const monthlyPrecision = 10

// MulFraction returns m * num/den at fixed decimal precision. Used for
// period-to-monthly normalization where the ratio may not terminate.
func (m Money) MulFraction(num, den int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(num)).DivRound(decimal.NewFromInt(den), monthlyPrecision)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.d.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.d.IsPositive() }

// Cmp compares two amounts exactly: -1 if m < other, 0 if equal, 1 if greater.
func (m Money) Cmp(other Money) int { return m.d.Cmp(other.d) }

// Equal reports exact numeric equality, ignoring representation exponent.
func (m Money) Equal(other Money) bool { return m.d.Equal(other.d) }

// Round returns m rounded to the currency minor unit (two places).
func (m Money) Round() Money { return Money{d: m.d.Round(2)} }

// String renders the exact amount without forcing a fixed number of places.
func (m Money) String() string { return m.d.String() }

// StringFixed renders the amount rounded to two places, e.g. "276.50".
func (m Money) StringFixed() string { return m.d.StringFixed(2) }

// MarshalJSON encodes the amount as a JSON number string to avoid float
// round-tripping, e.g. "15.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.d.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal representations.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}
	m.d = d
	return nil
}

// Value implements driver.Valuer so amounts persist as exact TEXT columns.
func (m Money) Value() (driver.Value, error) {
	return m.d.String(), nil
}

// Scan implements sql.Scanner for TEXT amount columns.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		m.d = decimal.Zero
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("scanning money %q: %w", v, err)
		}
		m.d = d
		return nil
	case []byte:
		return m.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into money", src)
	}
}

// Float64 returns an inexact binary approximation, for display scaling only.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// Ratio returns m/other as a float for progress displays. Zero divisor
// yields zero.
func (m Money) Ratio(other Money) float64 {
	if other.IsZero() {
		return 0
	}
	f, _ := m.d.Div(other.d).Float64()
	return f
}

// Sum adds a series of amounts.
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.d)
	}
	return Money{d: total}
}
