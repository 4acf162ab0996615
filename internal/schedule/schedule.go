package schedule

import "time"

// maxOccurrences bounds the search so degenerate inputs (a start date
// thousands of years in the past with a daily period) terminate instead of
// spinning. Hitting the bound is reported as "cannot compute".
const maxOccurrences = 1 << 20

// NextDueDate returns the first occurrence of a recurring item on or after
// relativeTo. The schedule starts at start and repeats every period; end, if
// non-nil, is the last date an occurrence may fall on (inclusive).
//
// The second return is false when no valid occurrence exists: the schedule
// ended before the candidate date, the period is unknown, or the search
// overflowed the calendar.
//
// Month-counted periods preserve the start's day-of-month, clamping to the
// last valid day of shorter months (Jan 31 monthly -> Feb 28 -> Mar 31).
// The function is pure: same inputs, same answer.
func NextDueDate(start time.Time, end *time.Time, period Period, relativeTo time.Time) (time.Time, bool) {
	days, months, ok := normalizedIncrement(period)
	if !ok {
		return time.Time{}, false
	}

	start = dateOnly(start)
	relativeTo = dateOnly(relativeTo)

	candidate := start
	for n := 0; candidate.Before(relativeTo); n++ {
		if n >= maxOccurrences {
			return time.Time{}, false
		}
		if months > 0 {
			// Advance from start, not from the previous candidate, so the
			// original day-of-month survives clamped months.
			candidate = addMonthsClamped(start, (n+1)*months)
		} else {
			candidate = start.AddDate(0, 0, (n+1)*days)
		}
		if candidate.Year() > maxYear {
			return time.Time{}, false
		}
	}

	if end != nil && candidate.After(dateOnly(*end)) {
		return time.Time{}, false
	}
	return candidate, true
}

// maxYear guards against runaway calendar arithmetic.
const maxYear = 9999

func normalizedIncrement(period Period) (days, months int, ok bool) {
	days, months = period.increment()
	if days == 0 && months == 0 {
		return 0, 0, false
	}
	return days, months, true
}

// dateOnly truncates a timestamp to midnight UTC so comparisons are purely
// calendar-date comparisons.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped adds whole calendar months, clamping the day-of-month to
// the last valid day of the target month instead of letting it spill over
// (time.AddDate would turn Jan 31 + 1 month into Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	idx := int(m) - 1 + months
	y += idx / 12
	idx %= 12
	if idx < 0 {
		idx += 12
		y--
	}
	month := time.Month(idx + 1)
	if last := daysInMonth(y, month); d > last {
		d = last
	}
	return time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
