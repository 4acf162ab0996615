package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

func monthlyBill(name, amount string, start time.Time) model.Bill {
	return model.Bill{
		ID:     uuid.New(),
		Name:   name,
		Start:  start,
		Period: schedule.Monthly,
		Amount: money.MustParse(amount),
	}
}

func TestProjectDays_SingleMonthlyBill(t *testing.T) {
	bill := monthlyBill("Streaming", "15.00", day(2025, time.June, 1))

	bundles := ProjectDays([]BillLike{bill}, day(2025, time.June, 1), 10)
	if len(bundles) != 10 {
		t.Fatalf("got %d bundles, want 10", len(bundles))
	}

	// Day one: the bill is due that very day.
	first := bundles[0]
	if len(first.Bills) != 1 {
		t.Fatalf("day 1: got %d bills, want 1", len(first.Bills))
	}
	if !first.Bills[0].DueDate.Equal(day(2025, time.June, 1)) {
		t.Errorf("day 1 due date = %s, want 2025-06-01", first.Bills[0].DueDate)
	}
	if !first.Bills[0].Amount.Equal(money.MustParse("15.00")) {
		t.Errorf("day 1 amount = %s, want 15.00", first.Bills[0].Amount)
	}

	// Later days: the next occurrence (July 1) is beyond every reference day
	// in the window but still appears, since Upcoming lists anything due on
	// or after the reference date.
	second := bundles[1]
	if len(second.Bills) != 1 || !second.Bills[0].DueDate.Equal(day(2025, time.July, 1)) {
		t.Errorf("day 2 = %+v, want one bill due 2025-07-01", second.Bills)
	}
}

func TestUpcoming_FiltersExpiredAndEnded(t *testing.T) {
	end := day(2025, time.March, 1)
	dead := model.Bill{
		ID: uuid.New(), Name: "Old gym", Start: day(2024, time.January, 1),
		End: &end, Period: schedule.Monthly, Amount: money.FromInt(30),
	}
	live := monthlyBill("Rent", "900", day(2025, time.January, 1))

	got := Upcoming([]BillLike{dead, live}, day(2025, time.June, 1))
	if len(got) != 1 || got[0].Name != "Rent" {
		t.Errorf("upcoming = %+v, want only Rent", got)
	}
}

func TestUpcoming_SortedStable(t *testing.T) {
	sameDay := day(2025, time.June, 5)
	a := model.Bill{ID: uuid.New(), Name: "Alpha", Start: sameDay, Period: schedule.Monthly, Amount: money.FromInt(1)}
	b := model.Bill{ID: uuid.New(), Name: "Beta", Start: sameDay, Period: schedule.Monthly, Amount: money.FromInt(2)}
	later := monthlyBill("Gamma", "3", day(2025, time.June, 20))
	earlier := monthlyBill("Delta", "4", day(2025, time.June, 2))

	got := Upcoming([]BillLike{a, later, b, earlier}, day(2025, time.June, 1))
	names := make([]string, len(got))
	for i, u := range got {
		names[i] = u.Name
	}

	// Delta first (June 2), then Alpha and Beta in input order (tied June 5),
	// then Gamma (June 20).
	want := []string{"Delta", "Alpha", "Beta", "Gamma"}
	for i := range want {
		if i >= len(names) || names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestUpcoming_UtilityUsesRollingAverage(t *testing.T) {
	u := model.Utility{
		ID: uuid.New(), Name: "Electric",
		Start: day(2025, time.January, 10), Period: schedule.Monthly,
		Readings: []model.UtilityReading{
			{Amount: money.MustParse("80.00")},
			{Amount: money.MustParse("120.00")},
		},
	}

	got := Upcoming([]BillLike{u}, day(2025, time.June, 1))
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if !got[0].Amount.Equal(money.FromInt(100)) {
		t.Errorf("utility amount = %s, want the 100 average", got[0].Amount)
	}
	if !got[0].DueDate.Equal(day(2025, time.June, 10)) {
		t.Errorf("utility due = %s, want 2025-06-10", got[0].DueDate)
	}
}

func TestProjectDays_DefaultWindow(t *testing.T) {
	bundles := ProjectDays(nil, day(2025, time.June, 1), 0)
	if len(bundles) != DefaultProjectionDays {
		t.Errorf("got %d bundles, want default %d", len(bundles), DefaultProjectionDays)
	}
}

func TestTotalDue(t *testing.T) {
	bills := []UpcomingBill{
		{Amount: money.MustParse("15.50")},
		{Amount: money.MustParse("4.50")},
	}
	if got := TotalDue(bills); !got.Equal(money.FromInt(20)) {
		t.Errorf("total = %s, want 20", got)
	}
}
