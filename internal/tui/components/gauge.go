package components

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSavingsRate grades a savings rate: under 10% is poor, 10-20%
// is workable, 20%+ is healthy.
func ColorForSavingsRate(rate float64) string {
	t := theme.Active
	switch {
	case rate >= 0.2:
		return string(t.Green)
	case rate >= 0.1:
		return string(t.Yellow)
	default:
		return string(t.Red)
	}
}

// SavingsGauge renders a labeled gauge of the savings rate on a 0-50% scale.
// A nil rate (income is zero) renders as an undefined marker.
func SavingsGauge(rate *float64, barWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if rate == nil {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return labelStyle.Render("Savings rate ") + dimStyle.Render("n/a (no income)")
	}

	// Scale to a 0-50% band so typical rates use the full bar
	pct := *rate / 0.5
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForSavingsRate(*rate)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForSavingsRate(*rate))).
		Bold(true)

	return labelStyle.Render("Savings rate ") +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%.1f%%", *rate*100))
}

// GoalBar renders a labeled goal progress bar.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	fill := string(t.Accent)
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
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
