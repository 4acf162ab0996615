// Package tui provides the interactive Bubble Tea dashboard for pocketbook.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/cli"
	"pocketbook/internal/config"
	"pocketbook/internal/model"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/store"
	"pocketbook/internal/tui/components"
	"pocketbook/internal/tui/theme"
)

// DataLoadedMsg is sent when the store finishes loading.
type DataLoadedMsg struct {
	Accounts   []model.Account
	Categories []model.Category
	Bills      []model.Bill
	Utilities  []model.Utility
	Budget     model.BudgetMonth
	Err        error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath         string
	projectionDays int

	// Data
	accounts   []model.Account
	categories []model.Category
	bills      []model.Bill
	utilities  []model.Utility
	budget     model.BudgetMonth
	loaded     bool
	loadErr    error

	// Pre-computed for the current data
	balances []pipeline.AccountBalance
	upcoming []pipeline.UpcomingBill

	// UI state
	width     int
	height    int
	activeTab int
	scroll    int

	// First-run setup
	setup setupState

	// Settings tab state
	themeChoice int

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
)

// NewApp creates a new TUI app model.
func NewApp(dbPath string, projectionDays int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		dbPath:         dbPath,
		projectionDays: projectionDays,
		spinner:        sp,
	}
	if !config.Exists() {
		a.setup = newSetupState()
	}
	for i, th := range theme.All {
		if th.Name == theme.Active.Name {
			a.themeChoice = i
		}
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	}
	if a.setup.active {
		cmds = append(cmds, a.setup.form.Init())
	}
	return tea.Batch(cmds...)
}

// loadDataCmd loads everything the dashboard shows in one pass.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer func() { _ = s.Close() }()

		var msg DataLoadedMsg
		if msg.Accounts, err = s.LoadAccounts(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Categories, err = s.LoadCategories(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Bills, err = s.LoadBills(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Utilities, err = s.LoadUtilities(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		now := time.Now()
		if msg.Budget, err = s.LoadBudgetMonth(now.Year(), now.Month()); err != nil {
			return DataLoadedMsg{Err: err}
		}
		return msg
	}
}

func (a *App) recompute() {
	a.balances = pipeline.DetailedBalances(a.accounts)

	items := make([]pipeline.BillLike, 0, len(a.bills)+len(a.utilities))
	for i := range a.bills {
		items = append(items, &a.bills[i])
	}
	for i := range a.utilities {
		items = append(items, &a.utilities[i])
	}
	a.upcoming = pipeline.Upcoming(items, time.Now())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.setup.active {
		return a.updateSetup(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loadErr = msg.Err
		a.loaded = true
		if msg.Err == nil {
			a.accounts = msg.Accounts
			a.categories = msg.Categories
			a.bills = msg.Bills
			a.utilities = msg.Utilities
			a.budget = msg.Budget
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.scroll = 0
		return a, nil
	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		a.scroll = 0
		return a, nil
	case "r":
		a.loaded = false
		return a, loadDataCmd(a.dbPath)
	case "down", "j":
		if a.onSettings() {
			if a.themeChoice < len(theme.All)-1 {
				a.themeChoice++
			}
			return a, nil
		}
		a.scroll++
		return a, nil
	case "up", "k":
		if a.onSettings() {
			if a.themeChoice > 0 {
				a.themeChoice--
			}
			return a, nil
		}
		if a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	case "enter":
		if a.onSettings() {
			a.applyTheme()
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			a.scroll = 0
		}
	}
	return a, nil
}

func (a App) onSettings() bool {
	return components.Tabs[a.activeTab].Name == "Settings"
}

func (a *App) applyTheme() {
	name := theme.All[a.themeChoice].Name
	theme.SetActive(name)

	cfg, err := config.Load()
	if err != nil {
		return
	}
	cfg.Appearance.Theme = name
	_ = config.Save(cfg)
}

// View implements tea.Model.
func (a App) View() string {
	if a.setup.active {
		return a.renderSetup()
	}
	if a.width > 0 && a.width < minTerminalWidth {
		return "\n  Terminal too narrow; need at least 70 columns.\n"
	}
	if !a.loaded {
		return "\n  " + a.spinner.View() + " Loading pocketbook data...\n"
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render("Failed to load data: "+a.loadErr.Error()) + "\n\n  [r] retry  [q] quit\n"
	}

	width := a.width
	if width > maxContentWidth {
		width = maxContentWidth
	}
	if width == 0 {
		width = 100
	}

	var body string
	switch components.Tabs[a.activeTab].Name {
	case "Overview":
		body = a.renderOverview(width)
	case "Accounts":
		body = a.renderAccounts(width)
	case "Bills":
		body = a.renderBills(width)
	case "Budget":
		body = a.renderBudget(width)
	case "Settings":
		body = a.renderSettings(width)
	}

	body = a.clipScroll(body)

	month := cli.FormatMonth(a.budget.Year, a.budget.Month)
	return components.RenderTabBar(a.activeTab, width) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(width, month)
}

// clipScroll drops the first scroll lines so long tabs can be paged with j/k.
func (a App) clipScroll(body string) string {
	if a.scroll <= 0 {
		return body
	}
	lines := splitLines(body)
	if a.scroll >= len(lines) {
		return ""
	}
	return joinLines(lines[a.scroll:])
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func (a App) renderSettings(width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	body := labelStyle.Render("Color theme") + "\n\n"
	for i, th := range theme.All {
		marker := "( ) "
		style := labelStyle
		if i == a.themeChoice {
			marker = "(o) "
			style = accentStyle
		}
		suffix := ""
		if th.Name == theme.Active.Name {
			suffix = "  " + labelStyle.Render("active")
		}
		body += "  " + style.Render(marker+th.Name) + suffix + "\n"
	}
	body += "\n" + labelStyle.Render("j/k to select, Enter to apply")

	return components.ContentCard("Settings", body, width)
}
