package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/tui/components"
	"pocketbook/internal/tui/theme"
)

// renderBudget shows the month's income divisions and goal progress.
func (a App) renderBudget(width int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	inner := components.CardInnerWidth(width)
	out := ""

	divBody := ""
	for _, div := range a.budget.Divisions {
		alloc := pipeline.Allocate(div)
		state := ""
		if div.Finalized {
			state = dimStyle.Render(" [finalized]")
		}
		divBody += fmt.Sprintf("%s  %s%s\n", div.Name, cli.FormatMoney(div.Amount), state)
		for _, dev := range div.Devotions {
			divBody += mutedStyle.Render(fmt.Sprintf("  %-*s %12s  %s\n",
				inner-26, truncate(dev.Name, inner-26),
				cli.FormatMoney(alloc.EffectiveAmount(dev.ID)), string(dev.Group)))
		}
		if !alloc.Variance.IsZero() {
			divBody += warnStyle.Render("  unallocated: "+cli.FormatSignedMoney(alloc.Variance)) + "\n"
		}
	}
	if divBody == "" {
		divBody = "No income divisions this month.\n"
	}
	out += components.ContentCard("Income divisions", divBody, width) + "\n"

	barWidth := inner - 50
	if barWidth < 10 {
		barWidth = 10
	}

	spendBody := ""
	for _, goal := range a.budget.SpendingGoal {
		cat, ok := a.categoryByID(goal.CategoryID)
		if !ok {
			continue
		}
		status, err := pipeline.EvaluateSpendingGoal(goal, a.budget, cat, a.accounts)
		if err != nil {
			continue
		}
		spendBody += components.GoalBar(truncate(cat.Name, 18), status.Balance, status.MonthlyGoal, 18, barWidth) + "\n"
	}
	if spendBody == "" {
		spendBody = "No spending goals this month.\n"
	}
	out += components.ContentCard("Spending goals", spendBody, width) + "\n"

	saveBody := ""
	for _, goal := range a.budget.SavingsGoal {
		name, ok := a.accountNameByID(goal.AccountID)
		if !ok {
			continue
		}
		status, err := pipeline.EvaluateSavingsGoal(goal, a.budget, a.accounts)
		if err != nil {
			continue
		}
		saveBody += components.SavingsBar(truncate(name, 18), status.Balance, status.MonthlyGoal, 18, barWidth) + "\n"
	}
	if saveBody == "" {
		saveBody = "No savings goals this month.\n"
	}
	out += components.ContentCard("Savings goals", saveBody, width)

	return out
}

func (a App) categoryByID(id uuid.UUID) (model.Category, bool) {
	for _, c := range a.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

func (a App) accountNameByID(id uuid.UUID) (string, bool) {
	for _, acct := range a.accounts {
		if acct.ID == id {
			return acct.Name, true
		}
	}
	return "", false
}
