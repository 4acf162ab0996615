package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/cli"
	"pocketbook/internal/tui/components"
	"pocketbook/internal/tui/theme"
)

// renderAccounts shows the hierarchical balance view, one card per account.
func (a App) renderAccounts(width int) string {
	if len(a.balances) == 0 {
		return components.ContentCard("Accounts", "No accounts yet. Add one with `pocketbook accounts add`.", width)
	}

	t := theme.Active
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	kindStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(width)
	out := ""
	for _, ab := range a.balances {
		body := ""
		for _, sub := range ab.Subs {
			body += subStyle.Render(fmt.Sprintf("  %-*s", inner-14, truncate(sub.Name, inner-14))) +
				fmt.Sprintf("%12s", cli.FormatMoney(sub.Balance)) + "\n"
		}
		if len(ab.Subs) == 0 {
			body = subStyle.Render("  no sub-accounts") + "\n"
		}
		title := fmt.Sprintf("%s %s  %s", ab.Name, kindStyle.Render("("+string(ab.Kind)+")"),
			cli.FormatMoney(ab.Balance))
		out += components.ContentCard(title, body, width) + "\n"
	}
	return out
}
