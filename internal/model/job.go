package model

import (
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/money"
)

// Job is an income source being tracked for paychecks.
type Job struct {
	ID         uuid.UUID
	Name       string
	Employer   string
	HourlyRate *money.Money // unset for salaried jobs
	Salary     *money.Money // annual, unset for hourly jobs
}

// Paycheck is one received payment from a job. Its net amount can seed an
// income division's total.
type Paycheck struct {
	ID      uuid.UUID
	JobID   uuid.UUID
	PayDate time.Time
	Gross   money.Money
	Net     money.Money
	Hours   float64 // hours worked this period, zero for salaried
}
