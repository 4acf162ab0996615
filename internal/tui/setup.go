package tui

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/config"
	"pocketbook/internal/tui/theme"
)

// setupState drives the first-run wizard, shown when no config file exists.
type setupState struct {
	active bool
	form   *huh.Form

	currency  string
	days      string
	themeName string

	saveErr error
}

func newSetupState() setupState {
	ss := setupState{
		active:    true,
		currency:  "USD",
		days:      "10",
		themeName: theme.FlexokiDark.Name,
	}

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(th.Name, th.Name))
	}

	ss.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("US Dollar (USD)", "USD"),
					huh.NewOption("Euro (EUR)", "EUR"),
					huh.NewOption("British Pound (GBP)", "GBP"),
					huh.NewOption("Canadian Dollar (CAD)", "CAD"),
				).
				Value(&ss.currency),
			huh.NewInput().
				Title("Widget projection window (days)").
				Value(&ss.days).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 90 {
						return errBadDays
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&ss.themeName),
		),
	)
	return ss
}

var errBadDays = errors.New("enter a number of days between 1 and 90")

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	form, cmd := a.setup.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setup.form = f
	}

	if a.setup.form.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.setup.active = false
		return a, tea.Batch(cmd, loadDataCmd(a.dbPath), a.spinner.Tick)
	}
	if a.setup.form.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg := config.DefaultConfig()
	cfg.General.Currency = a.setup.currency
	if n, err := strconv.Atoi(a.setup.days); err == nil {
		cfg.Widget.ProjectionDays = n
		a.projectionDays = n
	}
	cfg.Appearance.Theme = a.setup.themeName
	theme.SetActive(cfg.Appearance.Theme)

	a.setup.saveErr = config.Save(cfg)
}

func (a App) renderSetup() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	header := "\n" + titleStyle.Render("  Welcome to pocketbook!") + "\n" +
		labelStyle.Render("  A few questions before your first ledger.") + "\n\n"

	return header + a.setup.form.View()
}
