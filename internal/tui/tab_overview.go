package tui

import (
	"fmt"
	"strings"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/news"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	savingsDelta := ""
	if a.summary.SavingsRate != nil {
		savingsDelta = fmt.Sprintf("%.1f%% of income", *a.summary.SavingsRate*100)
	}

	cards := []struct{ Label, Value, Delta string }{
		{Label: "Income", Value: cli.FormatAmount(a.summary.Income), Delta: "monthly"},
		{Label: "Expenses", Value: cli.FormatAmount(a.summary.TotalExpenses), Delta: "monthly"},
		{Label: "Savings", Value: cli.FormatAmount(a.summary.Savings), Delta: savingsDelta},
		{Label: "Net Worth", Value: cli.FormatAmount(a.netWorth), Delta: ""},
	}

	metricRow := components.MetricCardRow(cards, cw)

	var b strings.Builder
	b.WriteString(metricRow)
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Savings", a.savingsBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Goals", a.goalsSummaryBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Market Headlines", a.headlinesBody(components.CardInnerWidth(cw), 8), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		left := components.ContentCard("Savings", a.savingsBody(components.CardInnerWidth(widths[0])), widths[0])
		right := components.ContentCard("Goals", a.goalsSummaryBody(components.CardInnerWidth(widths[1])), widths[1])
		b.WriteString(components.CardRow([]string{left, right}))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Market Headlines", a.headlinesBody(components.CardInnerWidth(cw), 6), cw))
	}

	return b.String()
}

// savingsBody renders the savings gauge plus the 50/30/20 targets.
func (a App) savingsBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barW := innerW - 22
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(components.SavingsGauge(a.summary.SavingsRate, barW))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("50/30/20 targets"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Needs   ") + valStyle.Render(cli.FormatAmount(a.summary.NeedsTarget)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Wants   ") + valStyle.Render(cli.FormatAmount(a.summary.WantsTarget)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Savings ") + valStyle.Render(cli.FormatAmount(a.summary.SavingsTarget)))
	return b.String()
}

func (a App) goalsSummaryBody(innerW int) string {
	t := theme.Active
	if len(a.goals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No goals yet. Press g to add one.")
	}

	labelW := 0
	for _, g := range a.goals {
		if len(g.Name) > labelW {
			labelW = len(g.Name)
		}
	}
	if labelW > 18 {
		labelW = 18
	}

	barW := innerW - labelW - 7
	if barW < 8 {
		barW = 8
	}

	lines := make([]string, 0, len(a.goals))
	for _, g := range a.goals {
		pct := finance.GoalProgress(g.Saved, g.Target)
		lines = append(lines, components.GoalBar(truncStr(g.Name, labelW), pct, labelW, barW))
	}
	return strings.Join(lines, "\n")
}

// headlinesBody lists the most recent finance headlines with sentiment marks.
func (a App) headlinesBody(innerW, limit int) string {
	t := theme.Active
	if len(a.headlines) == 0 {
		return a.spinner.View() + lipgloss.NewStyle().Foreground(t.TextDim).Render(" fetching headlines...")
	}

	upStyle := lipgloss.NewStyle().Foreground(t.Green)
	downStyle := lipgloss.NewStyle().Foreground(t.Red)
	flatStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	srcStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	items := a.headlines
	if len(items) > limit {
		items = items[:limit]
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		var mark string
		switch item.Sentiment {
		case news.Positive:
			mark = upStyle.Render("▲")
		case news.Negative:
			mark = downStyle.Render("▼")
		default:
			mark = flatStyle.Render("•")
		}
		title := truncStr(item.Title, innerW-len(item.Source)-6)
		lines = append(lines, mark+" "+titleStyle.Render(title)+" "+srcStyle.Render("· "+item.Source))
	}
	return strings.Join(lines, "\n")
}
