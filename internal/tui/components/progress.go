package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/cli"
	"pocketbook/internal/money"
	"pocketbook/internal/tui/theme"
)

// ColorForPct returns green/yellow/orange/red based on how much of a goal
// has been consumed.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1.0:
		return string(t.Red)
	case pct >= 0.85:
		return string(t.Orange)
	case pct >= 0.6:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// GoalBar renders a labeled spent-against-goal progress bar.
func GoalBar(label string, spent, goal money.Money, labelW, barWidth int) string {
	t := theme.Active

	pct := spent.Ratio(goal)
	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	amounts := fmt.Sprintf("%s / %s", cli.FormatMoney(spent), cli.FormatMoney(goal))
	over := ""
	if pct > 1 {
		over = " " + amountStyle.Render("over by "+cli.FormatMoney(spent.Sub(goal)))
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(display) + " " +
		restStyle.Render(amounts) + over
}

// SavingsBar renders progress toward a savings goal. Unlike GoalBar, filling
// up is the good outcome.
func SavingsBar(label string, saved, goal money.Money, labelW, barWidth int) string {
	t := theme.Active

	pct := saved.Ratio(goal)
	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}

	fill := string(t.Blue)
	if pct >= 1 {
		fill = string(t.Green)
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	amounts := fmt.Sprintf("%s / %s", cli.FormatMoney(saved), cli.FormatMoney(goal))
	suffix := ""
	if pct >= 1 {
		suffix = " " + doneStyle.Render("reached")
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(display) + " " +
		restStyle.Render(amounts) + suffix
}
