// Package schedule computes due dates for recurring bills and utilities.
package schedule

import "fmt"

// Period is a fixed calendar increment between occurrences of a recurring item.
type Period string

// Supported periods. Day-counted periods advance by whole days; month-counted
// periods follow calendar-month semantics with day-of-month clamping.
const (
	Daily      Period = "daily"
	Weekly     Period = "weekly"
	BiWeekly   Period = "biweekly"
	Monthly    Period = "monthly"
	Quarterly  Period = "quarterly"
	SemiAnnual Period = "semiannual"
	Annual     Period = "annual"
)

// ParsePeriod converts user input into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly, BiWeekly, Monthly, Quarterly, SemiAnnual, Annual:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	_, err := ParsePeriod(string(p))
	return err == nil
}

func (p Period) String() string { return string(p) }

// increment returns the step size of one period occurrence, either in days
// or in calendar months (exactly one of the two is non-zero).
func (p Period) increment() (days, months int) {
	switch p {
	case Daily:
		return 1, 0
	case Weekly:
		return 7, 0
	case BiWeekly:
		return 14, 0
	case Monthly:
		return 0, 1
	case Quarterly:
		return 0, 3
	case SemiAnnual:
		return 0, 6
	case Annual:
		return 0, 12
	default:
		return 0, 0
	}
}

// MonthlyFactor returns the exact rational factor num/den that converts an
// amount in this period into a monthly figure. Only budget-goal periods
// (weekly, bi-weekly, monthly) convert; others report ok = false.
func (p Period) MonthlyFactor() (num, den int64, ok bool) {
	switch p {
	case Weekly:
		return 52, 12, true
	case BiWeekly:
		return 26, 12, true
	case Monthly:
		return 1, 1, true
	default:
		return 0, 0, false
	}
}
