// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pocketbook/internal/money"
)

// FormatMoney formats an amount with a currency symbol and two decimal
// places. e.g., 1234.5 -> "$1,234.50"
func FormatMoney(m money.Money) string {
	neg := m.IsNegative()
	if neg {
		m = m.Neg()
	}

	fixed := m.StringFixed()
	whole, cents, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Beyond int64 range; show it unseparated rather than wrong.
		if neg {
			return "-$" + fixed
		}
		return "$" + fixed
	}

	s := "$" + FormatNumber(n) + "." + cents
	if neg {
		return "-" + s
	}
	return s
}

// FormatSignedMoney is FormatMoney with an explicit + on non-negative
// amounts, for variance and delta columns.
func FormatSignedMoney(m money.Money) string {
	if m.IsNegative() {
		return FormatMoney(m)
	}
	return "+" + FormatMoney(m)
}

// FormatDate formats a calendar date as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatMonth formats a budget month as "January 2006".
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percent value, trimming trailing zeros.
// e.g., 8 -> "8%", 12.5 -> "12.5%"
func FormatPercent(p decimal.Decimal) string {
	s := p.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s + "%"
}

// FormatDueIn describes how far away a due date is from a reference day.
func FormatDueIn(due, from time.Time) string {
	days := int(due.Sub(from).Hours() / 24)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
