package tui

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/profile"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetState holds the budget tab's cursor and edit field.
type budgetState struct {
	cursor  int // 0 = income, 1..n = expense categories
	editing bool
	adding  bool // editing a brand new category ("name amount")
	input   textinput.Model
}

func newBudgetInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// budgetRows returns the expense categories in display order.
func (a App) budgetRows() []finance.ExpenseEntry {
	return finance.SortedExpenses(a.prof.Expenses)
}

func (a App) updateBudgetKeys(key string) (tea.Model, tea.Cmd, bool) {
	rows := a.budgetRows()
	last := len(rows) // income row plus categories

	switch key {
	case "j", "down":
		if a.budget.cursor < last {
			a.budget.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.budget.cursor > 0 {
			a.budget.cursor--
		}
		return a, nil, true

	case "enter":
		a.budget.input = newBudgetInput()
		if a.budget.cursor == 0 {
			a.budget.input.Placeholder = "monthly income"
			a.budget.input.SetValue(strconv.FormatFloat(a.prof.Income, 'f', -1, 64))
		} else {
			entry := rows[a.budget.cursor-1]
			a.budget.input.Placeholder = entry.Category + " amount"
			a.budget.input.SetValue(strconv.FormatFloat(entry.Amount, 'f', -1, 64))
		}
		a.budget.input.Focus()
		a.budget.editing = true
		a.budget.adding = false
		return a, textinput.Blink, true

	case "n":
		a.budget.input = newBudgetInput()
		a.budget.input.Placeholder = "Category 5000"
		a.budget.input.Focus()
		a.budget.editing = true
		a.budget.adding = true
		return a, textinput.Blink, true

	case "x":
		if a.budget.cursor > 0 && a.budget.cursor-1 < len(rows) {
			category := rows[a.budget.cursor-1].Category
			a.stale = true
			return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
				p, err := s.LoadProfile()
				if err != nil {
					return err
				}
				delete(p.Expenses, category)
				return s.SaveProfile(p)
			}), true
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.budget.editing = false
		return a, nil

	case "enter":
		value := strings.TrimSpace(a.budget.input.Value())
		a.budget.editing = false
		if value == "" {
			return a, nil
		}

		if a.budget.adding {
			name, amt, err := parseCategoryAmount(value)
			if err != nil {
				a.status = err.Error()
				return a, clearStatusCmd()
			}
			a.stale = true
			return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
				p, err := s.LoadProfile()
				if err != nil {
					return err
				}
				p.Expenses[name] = amt
				return s.SaveProfile(p)
			})
		}

		amt, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) || amt < 0 {
			a.status = "enter a non-negative amount"
			return a, clearStatusCmd()
		}

		rows := a.budgetRows()
		cursor := a.budget.cursor
		a.stale = true
		return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
			p, err := s.LoadProfile()
			if err != nil {
				return err
			}
			if cursor == 0 {
				p.Income = amt
			} else if cursor-1 < len(rows) {
				category := rows[cursor-1].Category
				if amt == 0 {
					delete(p.Expenses, category)
				} else {
					p.Expenses[category] = amt
				}
			}
			return s.SaveProfile(p)
		})
	}

	var cmd tea.Cmd
	a.budget.input, cmd = a.budget.input.Update(msg)
	return a, cmd
}

// allocRow compares one category's target allocation with actual spend.
type allocRow struct {
	Category  string
	TargetPct float64
	Target    float64 // income * TargetPct / 100
	Actual    float64
}

// allocationRows pairs the profile's target allocation percents with
// actual expenses, largest target first. Categories without a target
// are skipped; a zero-percent target is kept only when money was spent
// against it.
func allocationRows(income float64, targets, expenses map[string]float64) []allocRow {
	rows := make([]allocRow, 0, len(targets))
	for category, pct := range targets {
		actual := expenses[category]
		if pct == 0 && actual == 0 {
			continue
		}
		rows = append(rows, allocRow{
			Category:  category,
			TargetPct: pct,
			Target:    income * pct / 100,
			Actual:    actual,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Target != rows[j].Target {
			return rows[i].Target > rows[j].Target
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// parseCategoryAmount splits "Category Name 5000" into name and amount.
func parseCategoryAmount(s string) (string, float64, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("use: <category> <amount>")
	}
	amt, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) || amt < 0 {
		return "", 0, fmt.Errorf("enter a non-negative amount")
	}
	name := strings.Join(fields[:len(fields)-1], " ")
	return name, amt, nil
}

func (a App) renderBudgetTab(cw int) string {
	if a.isCompactLayout() {
		var b strings.Builder
		b.WriteString(components.ContentCard("Monthly Budget", a.budgetListBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Allocation", a.budgetChartBody(components.CardInnerWidth(cw)), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	left := components.ContentCard("Monthly Budget", a.budgetListBody(components.CardInnerWidth(widths[0])), widths[0])
	right := components.ContentCard("Allocation", a.budgetChartBody(components.CardInnerWidth(widths[1])), widths[1])
	return components.CardRow([]string{left, right})
}

func (a App) budgetListBody(innerW int) string {
	t := theme.Active

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rows := a.budgetRows()

	renderRow := func(idx int, label, value string) string {
		marker := "  "
		nameStyle := labelStyle
		if idx == a.budget.cursor {
			marker = cursorStyle.Render("▸ ")
			nameStyle = selStyle
		}
		gap := innerW - lipgloss.Width(label) - lipgloss.Width(value) - 2
		if gap < 1 {
			gap = 1
		}
		return marker + nameStyle.Render(label) + strings.Repeat(" ", gap) + valStyle.Render(value)
	}

	var b strings.Builder
	b.WriteString(renderRow(0, "Income", cli.FormatAmount(a.prof.Income)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	for i, entry := range rows {
		b.WriteString(renderRow(i+1, entry.Category, cli.FormatAmount(entry.Amount)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	gap := innerW - 7 - lipgloss.Width(cli.FormatAmount(a.summary.TotalExpenses)) - 2
	if gap < 1 {
		gap = 1
	}
	b.WriteString("  " + labelStyle.Render("Total") + strings.Repeat(" ", gap+2) +
		valStyle.Render(cli.FormatAmount(a.summary.TotalExpenses)))
	b.WriteString("\n\n")

	if a.budget.editing {
		prompt := "edit: "
		if a.budget.adding {
			prompt = "new:  "
		}
		b.WriteString(labelStyle.Render(prompt) + a.budget.input.View())
		b.WriteString("\n" + dimStyle.Render("enter to save · esc to cancel"))
	} else {
		b.WriteString(dimStyle.Render("[enter]edit  [n]ew  [x]remove  [jk]move"))
	}
	return b.String()
}

func (a App) budgetChartBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rows := a.budgetRows()
	entries := make([]components.HBarEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, components.HBarEntry{Label: truncStr(r.Category, 14), Value: r.Amount})
	}

	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("No expenses recorded."))
	} else {
		b.WriteString(components.HBarList(entries, innerW, t.Accent, cli.FormatAmount))
	}
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	overStyle := lipgloss.NewStyle().Foreground(t.Red)
	underStyle := lipgloss.NewStyle().Foreground(t.Green)

	if alloc := allocationRows(a.prof.Income, a.prof.CategoryPct, a.prof.Expenses); len(alloc) > 0 {
		b.WriteString(labelStyle.Render("Target vs actual"))
		b.WriteString("\n")
		for _, row := range alloc {
			status := underStyle.Render("under")
			if row.Actual > row.Target {
				status = overStyle.Render("over")
			} else if row.Actual == row.Target {
				status = dimStyle.Render("on target")
			}
			left := fmt.Sprintf("  %-14s %s of %s (%.0f%%)",
				truncStr(row.Category, 14),
				cli.FormatAmount(row.Actual), cli.FormatAmount(row.Target), row.TargetPct)
			b.WriteString(valStyle.Render(left) + " " + status)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	barW := innerW - 22
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.SavingsGauge(a.summary.SavingsRate, barW))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("50/30/20 of income") + "\n")
	b.WriteString(labelStyle.Render("  Needs   ") + valStyle.Render(cli.FormatAmount(a.summary.NeedsTarget)) + "\n")
	b.WriteString(labelStyle.Render("  Wants   ") + valStyle.Render(cli.FormatAmount(a.summary.WantsTarget)) + "\n")
	b.WriteString(labelStyle.Render("  Savings ") + valStyle.Render(cli.FormatAmount(a.summary.SavingsTarget)))
	return b.String()
}
