package components

import (
	"fmt"
	"strings"

	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values, scaled to the
// series' own min/max so small price moves stay visible.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBarEntry is one row of a horizontal bar list.
type HBarEntry struct {
	Label string
	Value float64
}

// HBarList renders labeled horizontal bars scaled to the largest value,
// with the formatted value right of each bar. Used for budget category
// and balance breakdowns.
func HBarList(entries []HBarEntry, width int, color lipgloss.Color, format func(float64) string) string {
	if len(entries) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	valueW := 0
	peak := 0.0
	for _, e := range entries {
		if len(e.Label) > labelW {
			labelW = len(e.Label)
		}
		if w := lipgloss.Width(format(e.Value)); w > valueW {
			valueW = w
		}
		if e.Value > peak {
			peak = e.Value
		}
	}
	if peak == 0 {
		peak = 1
	}

	barW := width - labelW - valueW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, e := range entries {
		filled := int(e.Value / peak * float64(barW))
		if filled > barW {
			filled = barW
		}
		fmt.Fprintf(&b, "%s  %s%s  %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, e.Label)),
			barStyle.Render(strings.Repeat("█", filled)),
			restStyle.Render(strings.Repeat("·", barW-filled)),
			valueStyle.Render(fmt.Sprintf("%*s", valueW, format(e.Value))),
		)
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
