package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRow_SumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 2},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", tt.total, tt.n, sum, tt.total)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow with n=0 = %v, want nil", got)
	}
}

func TestLayoutRow_WiderColumnsFirst(t *testing.T) {
	widths := LayoutRow(103, 4)
	for i := 1; i < len(widths); i++ {
		if widths[i] > widths[i-1] {
			t.Errorf("widths = %v, want non-increasing", widths)
		}
	}
}

func TestMetricCard_RendersAtRequestedWidth(t *testing.T) {
	card := MetricCard("Income", "₹1,00,000.00", "+2.0%", 30)
	if got := lipgloss.Width(card); got != 30 {
		t.Errorf("card width = %d, want 30", got)
	}
	if !strings.Contains(card, "INCOME") {
		t.Error("card should render the label uppercased")
	}
	if !strings.Contains(card, "₹1,00,000.00") {
		t.Error("card should render the value")
	}
}

func TestMetricCardRow_SpansTotalWidth(t *testing.T) {
	cards := []struct{ Label, Value, Delta string }{
		{"Income", "100", ""},
		{"Expenses", "70", ""},
		{"Savings", "30", "+30%"},
	}
	row := MetricCardRow(cards, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("row width = %d, want 90", got)
	}
}

func TestContentCard_TitleBar(t *testing.T) {
	card := ContentCard("Goals", "body text", 40)
	if !strings.Contains(card, "▍") {
		t.Error("titled card should carry the accent bar")
	}
	if !strings.Contains(card, "Goals") || !strings.Contains(card, "body text") {
		t.Error("card should render title and body")
	}

	plain := ContentCard("", "body only", 40)
	if strings.Contains(plain, "▍") {
		t.Error("untitled card should not carry the accent bar")
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestHBarList_ScalesToPeak(t *testing.T) {
	entries := []HBarEntry{
		{Label: "Rent", Value: 100},
		{Label: "Food", Value: 50},
	}
	out := HBarList(entries, 60, "4", func(v float64) string { return "x" })

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("HBarList produced %d lines, want 2", len(lines))
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("larger value should render a longer bar")
	}

	if got := HBarList(nil, 60, "4", nil); got != "" {
		t.Errorf("HBarList(nil) = %q, want empty", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, "6"); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}

	out := Sparkline([]float64{1, 2, 3}, "6")
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("Sparkline should span min to max blocks, got %q", out)
	}

	flat := Sparkline([]float64{5, 5, 5}, "6")
	if strings.Count(flat, "▁") != 3 {
		t.Errorf("flat series should render all-low blocks, got %q", flat)
	}
}
