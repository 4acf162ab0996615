package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/money"
)

// BillLike is the shared capability of Bills and Utilities the projector
// needs; both model types implement it.
type BillLike interface {
	RecordID() uuid.UUID
	DisplayName() string
	DueAmount() money.Money
	IsAutoPay() bool
	IsExpired(asOf time.Time) bool
	NextDueDate(from time.Time) (time.Time, bool)
}

// UpcomingBill is one projected obligation.
type UpcomingBill struct {
	ID      uuid.UUID   `json:"id"`
	Name    string      `json:"name"`
	Amount  money.Money `json:"amount"`
	DueDate time.Time   `json:"dueDate"`
	AutoPay bool        `json:"autoPay,omitempty"`
}

// DayBundle is the projection for a single reference day.
type DayBundle struct {
	Date  time.Time      `json:"date"`
	Bills []UpcomingBill `json:"bills"`
}

// DefaultProjectionDays is the forward window when none is configured.
const DefaultProjectionDays = 10

// Upcoming lists every item due on or after ref, sorted by due date
// ascending. Expired items, items with no computable occurrence, and items
// due before ref are dropped. The sort is stable: items sharing a due date
// keep their input order, there is no secondary key.
func Upcoming(items []BillLike, ref time.Time) []UpcomingBill {
	var result []UpcomingBill
	for _, item := range items {
		if item.IsExpired(ref) {
			continue
		}
		due, ok := item.NextDueDate(ref)
		if !ok || due.Before(ref) {
			continue
		}
		result = append(result, UpcomingBill{
			ID:      item.RecordID(),
			Name:    item.DisplayName(),
			Amount:  item.DueAmount(),
			DueDate: due,
			AutoPay: item.IsAutoPay(),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result
}

// ProjectDays produces one independently recomputed bundle per day for a
// forward window of the given length, starting at start. Days that cannot be
// represented (calendar overflow) are skipped rather than aborting the whole
// projection.
func ProjectDays(items []BillLike, start time.Time, days int) []DayBundle {
	if days <= 0 {
		days = DefaultProjectionDays
	}

	y, m, d := start.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	bundles := make([]DayBundle, 0, days)
	for i := 0; i < days; i++ {
		ref := day.AddDate(0, 0, i)
		if ref.Year() > 9999 {
			continue
		}
		bundles = append(bundles, DayBundle{Date: ref, Bills: Upcoming(items, ref)})
	}
	return bundles
}

// TotalDue sums the amounts in a bundle.
func TotalDue(bills []UpcomingBill) money.Money {
	total := money.Zero
	for _, b := range bills {
		total = total.Add(b.Amount)
	}
	return total
}
