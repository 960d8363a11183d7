package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// RenderTitle renders a section heading.
func RenderTitle(title string) string {
	return titleStyle.Render(title)
}

// RenderDim renders muted supporting text.
func RenderDim(s string) string {
	return dimStyle.Render(s)
}

// RenderSigned colors a value green when positive, red when negative.
func RenderSigned(s string, v float64) string {
	if v < 0 {
		return lossStyle.Render(s)
	}
	return gainStyle.Render(s)
}

// RenderTable renders rows under a header with box-drawing borders.
// Column widths follow the widest cell in each column.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	writeRule := func(left, mid, right string) {
		b.WriteString(borderStyle.Render(left))
		for i, w := range widths {
			b.WriteString(borderStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(borderStyle.Render(mid))
			}
		}
		b.WriteString(borderStyle.Render(right))
		b.WriteString("\n")
	}

	writeCells := func(cells []string, style lipgloss.Style) {
		b.WriteString(borderStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := w - lipgloss.Width(cell)
			b.WriteString(" " + style.Render(cell) + strings.Repeat(" ", pad+1))
			b.WriteString(borderStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	writeRule("┌", "┬", "┐")
	writeCells(headers, headerStyle)
	writeRule("├", "┼", "┤")
	for _, row := range rows {
		writeCells(row, lipgloss.NewStyle())
	}
	writeRule("└", "┴", "┘")

	return b.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws a single-line chart of the series, scaled to
// its own min/max. Empty input renders as an empty string.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	span := hi - lo
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// RenderBar draws a horizontal progress bar, with pct clamped to [0, 1].
func RenderBar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct*float64(width) + 0.5)
	bar := gainStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, FormatPercent(pct))
}
