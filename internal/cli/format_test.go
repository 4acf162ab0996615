package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pocketbook/internal/money"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"1234.5", "$1,234.50"},
		{"-45.25", "-$45.25"},
		{"1000000", "$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(money.MustParse(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(money.MustParse("3.10")); got != "+$3.10" {
		t.Errorf("positive = %q", got)
	}
	if got := FormatSignedMoney(money.MustParse("-50")); got != "-$50.00" {
		t.Errorf("negative = %q", got)
	}
	if got := FormatSignedMoney(money.Zero); got != "+$0.00" {
		t.Errorf("zero = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromInt(8)); got != "8%" {
		t.Errorf("whole = %q", got)
	}
	if got := FormatPercent(decimal.NewFromFloat(12.50)); got != "12.5%" {
		t.Errorf("trimmed = %q", got)
	}
}

func TestFormatDueIn(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		due  time.Time
		want string
	}{
		{ref, "today"},
		{ref.AddDate(0, 0, 1), "tomorrow"},
		{ref.AddDate(0, 0, 6), "in 6 days"},
		{ref.AddDate(0, 0, -1), "overdue"},
	}
	for _, tt := range tests {
		if got := FormatDueIn(tt.due, ref); got != tt.want {
			t.Errorf("FormatDueIn(%s) = %q, want %q", tt.due.Format("2006-01-02"), got, tt.want)
		}
	}
}
