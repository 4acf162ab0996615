package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate_MonthEndClamps(t *testing.T) {
	// A bill anchored on Jan 31 must land on Feb 28, not spill into March.
	got, ok := NextDueDate(date(2025, time.January, 31), nil, Monthly, date(2025, time.February, 1))
	if !ok {
		t.Fatal("no due date computed")
	}
	if !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("next due = %s, want 2025-02-28", got.Format("2006-01-02"))
	}

	// And the month after that returns to the 31st.
	got, ok = NextDueDate(date(2025, time.January, 31), nil, Monthly, date(2025, time.March, 1))
	if !ok {
		t.Fatal("no due date computed")
	}
	if !got.Equal(date(2025, time.March, 31)) {
		t.Errorf("next due = %s, want 2025-03-31", got.Format("2006-01-02"))
	}
}

func TestNextDueDate_InclusiveLowerBound(t *testing.T) {
	for _, p := range []Period{Daily, Weekly, BiWeekly, Monthly, Quarterly, SemiAnnual, Annual} {
		d := date(2025, time.June, 1)
		got, ok := NextDueDate(d, nil, p, d)
		if !ok || !got.Equal(d) {
			t.Errorf("period %s: NextDueDate(d, nil, p, d) = %s, %v; want d itself", p, got, ok)
		}
	}
}

func TestNextDueDate_FutureStart(t *testing.T) {
	// A schedule that has not begun yet is due on its start date.
	start := date(2025, time.September, 15)
	got, ok := NextDueDate(start, nil, Weekly, date(2025, time.June, 1))
	if !ok || !got.Equal(start) {
		t.Errorf("future start = %s, %v; want start date", got, ok)
	}
}

func TestNextDueDate_EndInclusive(t *testing.T) {
	start := date(2025, time.January, 1)
	end := date(2025, time.March, 1)

	// The candidate falling exactly on end is still due.
	got, ok := NextDueDate(start, &end, Monthly, date(2025, time.February, 2))
	if !ok || !got.Equal(end) {
		t.Errorf("due = %s, %v; want end date itself", got, ok)
	}

	// One day later the schedule is over.
	if _, ok := NextDueDate(start, &end, Monthly, date(2025, time.March, 2)); ok {
		t.Error("schedule past its end still reported a due date")
	}
}

func TestNextDueDate_WeeklyAdvance(t *testing.T) {
	got, ok := NextDueDate(date(2025, time.January, 6), nil, Weekly, date(2025, time.January, 25))
	if !ok {
		t.Fatal("no due date computed")
	}
	if !got.Equal(date(2025, time.January, 27)) {
		t.Errorf("next weekly = %s, want 2025-01-27", got.Format("2006-01-02"))
	}
}

func TestNextDueDate_BiWeekly(t *testing.T) {
	got, ok := NextDueDate(date(2025, time.January, 3), nil, BiWeekly, date(2025, time.January, 18))
	if !ok {
		t.Fatal("no due date computed")
	}
	if !got.Equal(date(2025, time.January, 31)) {
		t.Errorf("next biweekly = %s, want 2025-01-31", got.Format("2006-01-02"))
	}
}

func TestNextDueDate_UnknownPeriod(t *testing.T) {
	if _, ok := NextDueDate(date(2025, time.January, 1), nil, Period("fortnightly"), date(2025, time.January, 1)); ok {
		t.Error("unknown period produced a due date")
	}
}

func TestNextDueDate_Idempotent(t *testing.T) {
	start := date(2024, time.May, 30)
	rel := date(2025, time.June, 10)
	a, okA := NextDueDate(start, nil, Monthly, rel)
	b, okB := NextDueDate(start, nil, Monthly, rel)
	if okA != okB || !a.Equal(b) {
		t.Errorf("not idempotent: %s vs %s", a, b)
	}
	if !a.Equal(date(2025, time.June, 30)) {
		t.Errorf("next due = %s, want 2025-06-30", a.Format("2006-01-02"))
	}
}

func TestNextDueDate_TruncatesClock(t *testing.T) {
	start := time.Date(2025, time.June, 1, 15, 4, 5, 0, time.UTC)
	rel := time.Date(2025, time.June, 1, 23, 59, 0, 0, time.UTC)
	got, ok := NextDueDate(start, nil, Monthly, rel)
	if !ok || !got.Equal(date(2025, time.June, 1)) {
		t.Errorf("clock not truncated: %s, %v", got, ok)
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod("biweekly"); err != nil || p != BiWeekly {
		t.Errorf("ParsePeriod(biweekly) = %v, %v", p, err)
	}
	if _, err := ParsePeriod("hourly"); err == nil {
		t.Error("ParsePeriod accepted hourly")
	}
}

func TestMonthlyFactor(t *testing.T) {
	cases := []struct {
		p        Period
		num, den int64
		ok       bool
	}{
		{Weekly, 52, 12, true},
		{BiWeekly, 26, 12, true},
		{Monthly, 1, 1, true},
		{Quarterly, 0, 0, false},
	}
	for _, tc := range cases {
		num, den, ok := tc.p.MonthlyFactor()
		if num != tc.num || den != tc.den || ok != tc.ok {
			t.Errorf("%s.MonthlyFactor() = %d/%d %v, want %d/%d %v", tc.p, num, den, ok, tc.num, tc.den, tc.ok)
		}
	}
}
