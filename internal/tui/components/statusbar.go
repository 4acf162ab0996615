package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, monthLabel string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [tab]next  [r]efresh  [q]uit"
	right := ""
	if monthLabel != "" {
		right = fmt.Sprintf("Month: %s ", monthLabel)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
