// Package tui provides the interactive Bubble Tea dashboard for paisa.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/paisapaglu/paisa/internal/advisor"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/market"
	"github.com/paisapaglu/paisa/internal/news"
	"github.com/paisapaglu/paisa/internal/profile"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the profile store finishes loading.
type dataLoadedMsg struct {
	prof  profile.Profile
	goals []profile.Goal
	invs  []profile.Investment
	err   error
}

// newsMsg carries fetched headlines.
type newsMsg struct {
	items []news.Item
}

// quoteMsg carries a fetched market quote.
type quoteMsg struct {
	quote market.Quote
	err   error
}

// adviceMsg carries the advisor's reply. offline marks fallback guidance.
type adviceMsg struct {
	text    string
	offline bool
	err     error
}

// statusClearMsg clears the transient status bar message.
type statusClearMsg struct{}

// App is the root Bubble Tea model.
type App struct {
	dbPath string

	// Data
	prof   profile.Profile
	goals  []profile.Goal
	invs   []profile.Investment
	loaded bool
	stale  bool // a mutation is in flight

	// Derived from prof on every load
	summary          finance.Summary
	totalAssets      float64
	totalLiabilities float64
	netWorth         float64

	headlines []news.Item

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Per-tab state
	budget  budgetState
	invest  investState
	goalsUI goalsState
	learn   learnState
	chat    advisorState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

const (
	tabOverview = iota
	tabBudget
	tabInvest
	tabGoals
	tabLearn
	tabAdvisor
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(dbPath string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dbPath:    dbPath,
		needSetup: !config.Exists(),
		spinner:   sp,
		invest:    newInvestState(),
		chat:      newAdvisorState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cfg := loadConfigOrDefault()
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath),
		fetchNewsCmd(cfg),
		a.spinner.Tick,
	)
}

// recompute refreshes the derived budget and balance figures.
func (a *App) recompute() {
	summary, err := finance.Compute(finance.BudgetInput{Income: a.prof.Income, Expenses: a.prof.Expenses})
	if err == nil {
		a.summary = summary
	}
	ta, tl, nw, err := finance.NetWorth(a.prof.Assets, a.prof.Liabilities)
	if err == nil {
		a.totalAssets, a.totalLiabilities, a.netWorth = ta, tl, nw
	}

	if a.goalsUI.cursor >= len(a.goals) {
		a.goalsUI.cursor = len(a.goals) - 1
	}
	if a.goalsUI.cursor < 0 {
		a.goalsUI.cursor = 0
	}
	if a.invest.cursor >= len(a.invs) {
		a.invest.cursor = len(a.invs) - 1
	}
	if a.invest.cursor < 0 {
		a.invest.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case dataLoadedMsg:
		a.stale = false
		if msg.err != nil {
			a.status = "load failed: " + msg.err.Error()
			return a, clearStatusCmd()
		}
		a.prof = msg.prof
		a.goals = msg.goals
		a.invs = msg.invs
		a.loaded = true
		a.recompute()

		if a.needSetup && a.setupForm == nil {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case newsMsg:
		a.headlines = msg.items
		return a, nil

	case quoteMsg:
		a.invest.fetching = false
		if msg.err != nil {
			a.invest.quoteErr = msg.err
			a.invest.quote = nil
		} else {
			q := msg.quote
			a.invest.quote = &q
			a.invest.quoteErr = nil
		}
		return a, nil

	case adviceMsg:
		a.chat.waiting = false
		if msg.err != nil {
			a.chat.history = append(a.chat.history, chatEntry{role: roleAdvisor, text: "Error: " + msg.err.Error()})
		} else {
			role := roleAdvisor
			if msg.offline {
				role = roleOffline
			}
			a.chat.history = append(a.chat.history, chatEntry{role: role, text: msg.text})
		}
		return a, nil

	case statusClearMsg:
		a.status = ""
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.chat.waiting || a.invest.fetching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Text-entry modes intercept keys on their tabs
	if a.activeTab == tabBudget && a.budget.editing {
		return a.updateBudgetInput(msg)
	}
	if a.activeTab == tabInvest && a.invest.searching {
		return a.updateTickerInput(msg)
	}
	if a.activeTab == tabGoals && a.goalsUI.funding {
		return a.updateGoalFundInput(msg)
	}
	if a.activeTab == tabAdvisor && a.chat.typing {
		return a.updateAdvisorInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Tab-specific keys
	switch a.activeTab {
	case tabBudget:
		if m, cmd, handled := a.updateBudgetKeys(key); handled {
			return m, cmd
		}
	case tabInvest:
		if m, cmd, handled := a.updateInvestKeys(key); handled {
			return m, cmd
		}
	case tabGoals:
		if m, cmd, handled := a.updateGoalsKeys(key); handled {
			return m, cmd
		}
	case tabLearn:
		if m, cmd, handled := a.updateLearnKeys(key); handled {
			return m, cmd
		}
	case tabAdvisor:
		if m, cmd, handled := a.updateAdvisorKeys(key); handled {
			return m, cmd
		}
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Manual refresh: reload profile data and headlines
	if key == "r" {
		cfg := loadConfigOrDefault()
		a.status = "refreshing..."
		return a, tea.Batch(loadDataCmd(a.dbPath), fetchNewsCmd(cfg), clearStatusCmd())
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		saveCmd := a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, saveCmd
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := "\n  Terminal too narrow\n\n  paisa needs at least " +
		lipgloss.NewStyle().Bold(true).Render("80") + " columns.\n"
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("₹ paisa"))
	b.WriteString(subtitleStyle.Render(" · Personal Finance"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading your profile..."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	renderBindings := func(b *strings.Builder, bindings []struct{ key, desc string }) {
		for _, bind := range bindings {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(padRight(bind.key, 10)))
			b.WriteString("  ")
			b.WriteString(descStyle.Render(bind.desc))
			b.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	renderBindings(&b, []struct{ key, desc string }{
		{"o b i g l a", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	})

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	renderBindings(&b, []struct{ key, desc string }{
		{"Enter", "Edit / Confirm / Ask"},
		{"/", "Look up a ticker (Invest)"},
		{"f", "Fund selected goal (Goals)"},
		{"Esc", "Back / Cancel"},
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusMessage())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabInvest:
		content = a.renderInvestTab(cw)
	case tabGoals:
		content = a.renderGoalsTab(cw)
	case tabLearn:
		content = a.renderLearnTab(cw)
	case tabAdvisor:
		content = a.renderAdvisorTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusMessage() string {
	if a.status != "" {
		return a.status
	}
	if a.stale {
		return "saving..."
	}
	return ""
}

// ─── Commands ───────────────────────────────────────────────────

// loadDataCmd reads the profile store in a background goroutine.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		store, err := profile.Open(dbPath)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer func() { _ = store.Close() }()

		if err := store.Seed(); err != nil {
			return dataLoadedMsg{err: err}
		}

		prof, err := store.LoadProfile()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		goals, err := store.ListGoals()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		invs, err := store.ListInvestments()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{prof: prof, goals: goals, invs: invs}
	}
}

// mutateCmd applies fn against the store, then reloads everything.
func mutateCmd(dbPath string, fn func(*profile.Store) error) tea.Cmd {
	return func() tea.Msg {
		store, err := profile.Open(dbPath)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		if err := fn(store); err != nil {
			_ = store.Close()
			return dataLoadedMsg{err: err}
		}
		_ = store.Close()
		return loadDataCmd(dbPath)()
	}
}

// fetchNewsCmd fetches headlines in a background goroutine. The fetcher
// itself never fails; slow feeds are bounded by its per-feed timeout.
func fetchNewsCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		feeds := make([]news.Feed, 0, len(cfg.News.Feeds))
		for _, f := range cfg.News.Feeds {
			feeds = append(feeds, news.Feed{Name: f.Name, URL: f.URL})
		}
		fetcher := news.NewFetcher(feeds)
		return newsMsg{items: fetcher.Headlines(context.Background())}
	}
}

// fetchQuoteCmd fetches a market quote in a background goroutine.
func fetchQuoteCmd(symbol string) tea.Cmd {
	return func() tea.Msg {
		client := market.NewClient("")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		q, err := client.Fetch(ctx, symbol)
		return quoteMsg{quote: q, err: err}
	}
}

// fetchAdviceCmd asks the advisor in a background goroutine. Missing
// keys and unreachable services degrade to offline guidance.
func fetchAdviceCmd(question string, snap advisor.Snapshot) tea.Cmd {
	return func() tea.Msg {
		cfg := loadConfigOrDefault()
		client, err := advisor.NewClient(config.GetAPIKey(cfg), cfg.Gemini.Model, cfg.Gemini.BaseURL)
		if err != nil {
			return adviceMsg{text: advisor.Fallback(question), offline: true}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := client.Generate(ctx, advisor.BuildPrompt(question, snap))
		if err != nil {
			return adviceMsg{text: advisor.Fallback(question), offline: true}
		}
		return adviceMsg{text: text}
	}
}

// clearStatusCmd clears the status message after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// currentSnapshot condenses the loaded profile for advisor prompts.
func (a App) currentSnapshot() advisor.Snapshot {
	cfg := loadConfigOrDefault()
	return advisor.Snapshot{
		Income:      a.summary.Income,
		Expenses:    a.summary.TotalExpenses,
		SavingsRate: a.summary.SavingsRate,
		NetWorth:    a.netWorth,
		GoalCount:   len(a.goals),
		Currency:    cfg.General.Currency,
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
