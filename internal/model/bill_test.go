package model

import (
	"testing"
	"time"

	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBillExpiry(t *testing.T) {
	end := day(2025, time.June, 15)
	b := Bill{Name: "Rent", Start: day(2025, time.January, 1), End: &end, Period: schedule.Monthly}

	if b.IsExpired(day(2025, time.June, 15)) {
		t.Error("bill ending today reported expired")
	}
	if !b.IsExpired(day(2025, time.June, 16)) {
		t.Error("bill ending yesterday not reported expired")
	}

	open := Bill{Name: "Rent", Start: day(2025, time.January, 1), Period: schedule.Monthly}
	if open.IsExpired(day(2099, time.January, 1)) {
		t.Error("open-ended bill reported expired")
	}
}

func TestUtilityRollingAverage(t *testing.T) {
	u := Utility{Name: "Electric", Period: schedule.Monthly}
	if !u.DueAmount().IsZero() {
		t.Error("utility with no readings has non-zero amount")
	}

	u.Readings = []UtilityReading{
		{Date: day(2025, time.April, 1), Amount: money.MustParse("80.00")},
		{Date: day(2025, time.May, 1), Amount: money.MustParse("90.00")},
		{Date: day(2025, time.June, 1), Amount: money.MustParse("100.00")},
	}
	if got := u.DueAmount(); !got.Equal(money.FromInt(90)) {
		t.Errorf("rolling average = %s, want 90", got)
	}
}

func TestUtilityRollingWindowCap(t *testing.T) {
	u := Utility{Name: "Water", Period: schedule.Monthly}
	// 13 readings of 10 with one old outlier of 1000: the outlier falls
	// outside the 12-reading window.
	u.Readings = append(u.Readings, UtilityReading{Amount: money.FromInt(1000)})
	for i := 0; i < RollingWindow; i++ {
		u.Readings = append(u.Readings, UtilityReading{Amount: money.FromInt(10)})
	}
	if got := u.DueAmount(); !got.Equal(money.FromInt(10)) {
		t.Errorf("windowed average = %s, want 10", got)
	}
}

func TestAccountNormalizeClearsCreditLimit(t *testing.T) {
	limit := money.FromInt(5000)
	a := Account{Name: "Everyday", Kind: KindChecking, CreditLimit: &limit}
	a.Normalize()
	if a.CreditLimit != nil {
		t.Error("credit limit kept on a non-credit account")
	}

	b := Account{Name: "Visa", Kind: KindCredit, CreditLimit: &limit}
	b.Normalize()
	if b.CreditLimit == nil {
		t.Error("credit limit cleared on a credit account")
	}
}
