package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/profile"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// goalsState holds the goals tab's cursor and input field.
type goalsState struct {
	cursor  int
	funding bool // input holds a fund amount
	adding  bool // input holds "name target"
	input   textinput.Model
}

func (a App) updateGoalsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.goalsUI.cursor < len(a.goals)-1 {
			a.goalsUI.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.goalsUI.cursor > 0 {
			a.goalsUI.cursor--
		}
		return a, nil, true

	case "f", "enter":
		if len(a.goals) == 0 {
			return a, nil, true
		}
		ti := textinput.New()
		ti.Placeholder = "amount to add"
		ti.CharLimit = 16
		ti.Width = 16
		ti.Focus()
		a.goalsUI.input = ti
		a.goalsUI.funding = true
		a.goalsUI.adding = false
		return a, textinput.Blink, true

	case "n":
		ti := textinput.New()
		ti.Placeholder = "Emergency Fund 500000"
		ti.CharLimit = 64
		ti.Width = 30
		ti.Focus()
		a.goalsUI.input = ti
		a.goalsUI.funding = true
		a.goalsUI.adding = true
		return a, textinput.Blink, true

	case "x":
		if a.goalsUI.cursor < len(a.goals) {
			id := a.goals[a.goalsUI.cursor].ID
			a.stale = true
			return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
				return s.DeleteGoal(id)
			}), true
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) updateGoalFundInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.goalsUI.funding = false
		return a, nil

	case "enter":
		value := strings.TrimSpace(a.goalsUI.input.Value())
		a.goalsUI.funding = false
		if value == "" {
			return a, nil
		}

		if a.goalsUI.adding {
			name, target, err := parseCategoryAmount(value)
			if err != nil {
				a.status = "use: <name> <target>"
				return a, clearStatusCmd()
			}
			a.stale = true
			return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
				return s.SaveGoal(profile.Goal{
					Name:     name,
					Target:   target,
					Deadline: time.Now().AddDate(1, 0, 0),
				})
			})
		}

		amt, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) || amt <= 0 {
			a.status = "enter a positive amount"
			return a, clearStatusCmd()
		}
		if a.goalsUI.cursor >= len(a.goals) {
			return a, nil
		}
		id := a.goals[a.goalsUI.cursor].ID
		a.stale = true
		return a, mutateCmd(a.dbPath, func(s *profile.Store) error {
			return s.AddToGoal(id, amt)
		})
	}

	var cmd tea.Cmd
	a.goalsUI.input, cmd = a.goalsUI.input.Update(msg)
	return a, cmd
}

func (a App) renderGoalsTab(cw int) string {
	if a.isCompactLayout() {
		var b strings.Builder
		b.WriteString(components.ContentCard("Savings Goals", a.goalListBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Goal Detail", a.goalDetailBody(), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	left := components.ContentCard("Savings Goals", a.goalListBody(components.CardInnerWidth(widths[0])), widths[0])
	right := components.ContentCard("Goal Detail", a.goalDetailBody(), widths[1])
	return components.CardRow([]string{left, right})
}

func (a App) goalListBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	if len(a.goals) == 0 {
		b.WriteString(dimStyle.Render("No goals yet. Press n to add one."))
		b.WriteString("\n\n")
	} else {
		labelW := 0
		for _, g := range a.goals {
			if len(g.Name) > labelW {
				labelW = len(g.Name)
			}
		}
		if labelW > 16 {
			labelW = 16
		}
		barW := innerW - labelW - 9
		if barW < 8 {
			barW = 8
		}

		for i, g := range a.goals {
			marker := "  "
			if i == a.goalsUI.cursor {
				marker = cursorStyle.Render("▸ ")
			}
			pct := finance.GoalProgress(g.Saved, g.Target)
			b.WriteString(marker + components.GoalBar(truncStr(g.Name, labelW), pct, labelW, barW))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if a.goalsUI.funding {
		prompt := "fund: "
		if a.goalsUI.adding {
			prompt = "new:  "
		}
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(labelStyle.Render(prompt) + a.goalsUI.input.View())
		b.WriteString("\n" + dimStyle.Render("enter to save · esc to cancel"))
	} else {
		b.WriteString(dimStyle.Render("[f]und  [n]ew  [x]remove  [jk]move"))
	}
	return b.String()
}

func (a App) goalDetailBody() string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.goals) == 0 || a.goalsUI.cursor >= len(a.goals) {
		return dimStyle.Render("Select a goal to see details.")
	}

	g := a.goals[a.goalsUI.cursor]
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	nameStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	remaining := g.Target - g.Saved
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(g.Name))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Target     ") + valStyle.Render(cli.FormatAmount(g.Target)) + "\n")
	b.WriteString(labelStyle.Render("Saved      ") + valStyle.Render(cli.FormatAmount(g.Saved)) + "\n")
	b.WriteString(labelStyle.Render("Remaining  ") + valStyle.Render(cli.FormatAmount(remaining)) + "\n")

	if !g.Deadline.IsZero() {
		b.WriteString(labelStyle.Render("Deadline   ") + valStyle.Render(g.Deadline.Format("02 Jan 2006")) + "\n")

		// Months left, rounded up, floor of one
		months := int(time.Until(g.Deadline).Hours()/(24*30)) + 1
		if months > 0 && remaining > 0 {
			perMonth := remaining / float64(months)
			b.WriteString(labelStyle.Render("Per month  ") +
				valStyle.Render(cli.FormatAmount(perMonth)) +
				dimStyle.Render(fmt.Sprintf(" over %d months", months)))
			b.WriteString("\n")
		} else if remaining > 0 {
			b.WriteString(dimStyle.Render("Deadline has passed.") + "\n")
		}
	}

	if remaining == 0 {
		doneStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		b.WriteString("\n" + doneStyle.Render("✓ Goal reached"))
	}
	return b.String()
}
