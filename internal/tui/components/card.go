// Package components provides reusable TUI widgets for the paisa dashboard.
package components

import (
	"strings"

	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow splits totalWidth into n column widths that sum to exactly
// totalWidth, widening the leftmost columns by one cell each until the
// integer-division remainder is used up.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	remaining := totalWidth
	for i := range widths {
		w := remaining / (n - i)
		widths[i] = w
		remaining -= w
	}
	// reverse so the wider columns end up first
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		widths[i], widths[j] = widths[j], widths[i]
	}
	return widths
}

// deltaStyle picks a color for a metric delta from its leading sign:
// "+..." renders as a gain, "-..." as a loss, anything else dimmed.
func deltaStyle(delta string) lipgloss.Style {
	t := theme.Active
	switch {
	case strings.HasPrefix(delta, "+"):
		return lipgloss.NewStyle().Foreground(t.Green)
	case strings.HasPrefix(delta, "-"):
		return lipgloss.NewStyle().Foreground(t.Red)
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim)
	}
}

// MetricCard renders one money metric: a dim label, the amount, and an
// optional delta line colored by its sign. outerWidth is the total
// rendered width including the border.
func MetricCard(label, value, delta string, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	lines := []string{
		labelStyle.Render(strings.ToUpper(label)),
		valueStyle.Render(value),
	}
	if delta != "" {
		lines = append(lines, deltaStyle(delta).Render(delta))
	}

	return frame.Render(strings.Join(lines, "\n"))
}

// MetricCardRow lays a set of metric cards out side by side across
// totalWidth.
func MetricCardRow(cards []struct{ Label, Value, Delta string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(cards))

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = MetricCard(c.Label, c.Value, c.Delta, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered pane. A non-empty title is drawn with
// an accent bar so panes stay scannable across tabs.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	if title != "" {
		bar := lipgloss.NewStyle().Foreground(t.Accent).Render("▍")
		titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
		body = bar + titleStyle.Render(title) + "\n" + body
	}

	return frame.Render(body)
}

// CardRow joins pre-rendered cards horizontally, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth is the usable text width inside a ContentCard of the
// given outer width (border and padding subtracted).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
