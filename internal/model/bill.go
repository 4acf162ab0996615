package model

import (
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
)

// Bill is a recurring obligation with a fixed amount per occurrence.
type Bill struct {
	ID       uuid.UUID
	Name     string
	Company  string
	Location string
	Start    time.Time
	End      *time.Time
	Period   schedule.Period
	Amount   money.Money
	AutoPay  bool
}

// DisplayName implements the bill-like capability.
func (b Bill) DisplayName() string { return b.Name }

// RecordID returns the bill's stable identifier.
func (b Bill) RecordID() uuid.UUID { return b.ID }

// DueAmount is the fixed per-occurrence amount.
func (b Bill) DueAmount() money.Money { return b.Amount }

// IsAutoPay reports whether the bill pays itself.
func (b Bill) IsAutoPay() bool { return b.AutoPay }

// IsExpired reports whether the bill's end date has passed as of the given day.
func (b Bill) IsExpired(asOf time.Time) bool {
	return expired(b.End, asOf)
}

// NextDueDate returns the first occurrence on or after from.
func (b Bill) NextDueDate(from time.Time) (time.Time, bool) {
	return schedule.NextDueDate(b.Start, b.End, b.Period, from)
}

// Utility is a recurring obligation whose amount varies per period; the
// projected amount is a rolling average of recent readings.
type Utility struct {
	ID       uuid.UUID
	Name     string
	Company  string
	Location string
	Start    time.Time
	End      *time.Time
	Period   schedule.Period
	AutoPay  bool

	// Readings are historical per-period datapoints, oldest first.
	Readings []UtilityReading
}

// UtilityReading is one observed charge for a utility period.
type UtilityReading struct {
	ID        uuid.UUID
	UtilityID uuid.UUID
	Date      time.Time
	Amount    money.Money
}

// RollingWindow is how many recent readings feed a utility's average amount.
const RollingWindow = 12

// DisplayName implements the bill-like capability.
func (u Utility) DisplayName() string { return u.Name }

// RecordID returns the utility's stable identifier.
func (u Utility) RecordID() uuid.UUID { return u.ID }

// DueAmount is the rolling average of the last RollingWindow readings,
// or zero when no history exists yet.
func (u Utility) DueAmount() money.Money {
	n := len(u.Readings)
	if n == 0 {
		return money.Zero
	}
	window := u.Readings
	if n > RollingWindow {
		window = u.Readings[n-RollingWindow:]
	}
	total := money.Zero
	for _, r := range window {
		total = total.Add(r.Amount)
	}
	return total.DivInt(int64(len(window)))
}

// IsAutoPay reports whether the utility pays itself.
func (u Utility) IsAutoPay() bool { return u.AutoPay }

// IsExpired reports whether the utility's end date has passed.
func (u Utility) IsExpired(asOf time.Time) bool {
	return expired(u.End, asOf)
}

// NextDueDate returns the first occurrence on or after from.
func (u Utility) NextDueDate(from time.Time) (time.Time, bool) {
	return schedule.NextDueDate(u.Start, u.End, u.Period, from)
}

// expired is true once end is set and strictly before the day of asOf.
// An item ending exactly on asOf is still due that day.
func expired(end *time.Time, asOf time.Time) bool {
	if end == nil {
		return false
	}
	y, m, d := asOf.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := end.UTC().Date()
	endDay := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return endDay.Before(day)
}
