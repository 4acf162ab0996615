package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/cli"
	"pocketbook/internal/money"
	"pocketbook/internal/tui/components"
	"pocketbook/internal/tui/theme"
)

// renderBills shows fixed bills and utilities with their next occurrence.
func (a App) renderBills(width int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	now := today()
	inner := components.CardInnerWidth(width)

	billBody := ""
	for _, b := range a.bills {
		status := ""
		if b.IsExpired(now) {
			status = dimStyle.Render("expired")
		} else if due, ok := b.NextDueDate(now); ok {
			status = cli.FormatDate(due)
		}
		name := b.Name
		if b.AutoPay {
			name += " (auto)"
		}
		billBody += fmt.Sprintf("%-*s %12s  %s\n", inner-28, truncate(name, inner-28),
			cli.FormatMoney(b.Amount), mutedStyle.Render(status))
	}
	if billBody == "" {
		billBody = "No bills tracked.\n"
	}

	utilBody := ""
	for _, u := range a.utilities {
		history := make([]money.Money, 0, len(u.Readings))
		for _, r := range u.Readings {
			history = append(history, r.Amount)
		}
		status := ""
		if u.IsExpired(now) {
			status = dimStyle.Render("expired")
		} else if due, ok := u.NextDueDate(now); ok {
			status = cli.FormatDate(due)
		}
		utilBody += fmt.Sprintf("%-*s %12s  %-12s %s\n", inner-42, truncate(u.Name, inner-42),
			cli.FormatMoney(u.DueAmount()), mutedStyle.Render(status),
			dimStyle.Render(cli.RenderSparkline(history)))
	}
	if utilBody == "" {
		utilBody = "No utilities tracked.\n"
	}

	return components.ContentCard("Bills", billBody, width) + "\n" +
		components.ContentCard("Utilities (estimated from history)", utilBody, width)
}
