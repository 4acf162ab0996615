package tui

import (
	"fmt"
	"time"

	"pocketbook/internal/cli"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/tui/components"
)

// renderOverview shows headline figures and the next obligations.
func (a App) renderOverview(width int) string {
	total := money.Zero
	for _, ab := range a.balances {
		total = total.Add(ab.Balance)
	}

	dueSoon := a.dueWithin(a.projectionDays)
	dueTotal := pipeline.TotalDue(dueSoon)

	cards := []struct{ Label, Value, Detail string }{
		{"Net balance", cli.FormatMoney(total), fmt.Sprintf("%d accounts", len(a.accounts))},
		{"Due soon", cli.FormatMoney(dueTotal), fmt.Sprintf("%d bills in %d days", len(dueSoon), a.projectionDays)},
		{"Bills tracked", fmt.Sprintf("%d", len(a.bills)+len(a.utilities)), fmt.Sprintf("%d utilities", len(a.utilities))},
		{"Divisions", fmt.Sprintf("%d", len(a.budget.Divisions)), cli.FormatMonth(a.budget.Year, a.budget.Month)},
	}
	top := components.MetricCardRow(cards, width)

	inner := components.CardInnerWidth(width)
	body := ""
	if len(dueSoon) == 0 {
		body = "Nothing due in the window."
	}
	shown := dueSoon
	if len(shown) > 8 {
		shown = shown[:8]
	}
	now := today()
	for _, b := range shown {
		name := b.Name
		if b.AutoPay {
			name += " (auto)"
		}
		line := fmt.Sprintf("%-*s %12s  %s", inner-28, truncate(name, inner-28),
			cli.FormatMoney(b.Amount), cli.FormatDueIn(b.DueDate, now))
		body += line + "\n"
	}

	return top + "\n" + components.ContentCard("Upcoming bills", body, width)
}

// dueWithin filters the projection to bills due inside the window.
func (a App) dueWithin(days int) []pipeline.UpcomingBill {
	cutoff := today().AddDate(0, 0, days)
	var out []pipeline.UpcomingBill
	for _, b := range a.upcoming {
		if b.DueDate.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
