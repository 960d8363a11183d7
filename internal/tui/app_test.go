package tui

import (
	"strings"
	"testing"

	"github.com/paisapaglu/paisa/internal/tui/components"
)

func TestTabAtX_MatchesRenderedHitboxes(t *testing.T) {
	app := NewApp("unused.db")
	app.activeTab = 0

	// The bar starts with one space, tabs are separated by two.
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == app.activeTab)

		if got := app.tabAtX(pos); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d (%s left edge)", pos, got, i, tab.Name)
		}
		if got := app.tabAtX(pos + w - 1); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d (%s right edge)", pos+w-1, got, i, tab.Name)
		}
		pos += w + 2
	}

	if got := app.tabAtX(0); got != -1 {
		t.Errorf("tabAtX(0) = %d, want -1 (leading space)", got)
	}
	if got := app.tabAtX(pos + 100); got != -1 {
		t.Errorf("tabAtX far right = %d, want -1", got)
	}
}

func TestTruncateHeight(t *testing.T) {
	in := "a\nb\nc\nd"
	if got := truncateHeight(in, 2); got != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", got, "a\nb")
	}
	if got := truncateHeight(in, 10); got != in {
		t.Errorf("truncateHeight should not change short input, got %q", got)
	}
}

func TestPadHeight(t *testing.T) {
	got := padHeight("a\nb", 5)
	if lines := strings.Count(got, "\n") + 1; lines != 5 {
		t.Errorf("padHeight produced %d lines, want 5", lines)
	}
	if got := padHeight("a\nb\nc", 2); got != "a\nb\nc" {
		t.Errorf("padHeight should not truncate, got %q", got)
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncStr(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	in := "one two three four five"
	got := wrapText(in, 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Errorf("wrapText produced line longer than 10: %q", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != in {
		t.Errorf("wrapText lost words: %q", got)
	}

	para := "first paragraph\n\nsecond paragraph"
	if got := wrapText(para, 40); !strings.Contains(got, "\n\n") {
		t.Errorf("wrapText should preserve paragraph breaks, got %q", got)
	}
}

func TestAllocationRows(t *testing.T) {
	targets := map[string]float64{
		"Housing": 30,
		"Food":    15,
		"Savings": 10,
		"Other":   0, // no target, no spend: dropped
	}
	expenses := map[string]float64{
		"Housing": 35000, // over the 30000 target
		"Food":    12000,
	}

	rows := allocationRows(100000, targets, expenses)
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3 (zero-target zero-spend dropped)", len(rows))
	}
	if rows[0].Category != "Housing" {
		t.Errorf("rows[0] = %s, want Housing (largest target first)", rows[0].Category)
	}
	if rows[0].Target != 30000 || rows[0].Actual != 35000 {
		t.Errorf("Housing = %v of %v, want 35000 of 30000", rows[0].Actual, rows[0].Target)
	}
	if rows[2].Category != "Savings" || rows[2].Actual != 0 {
		t.Errorf("rows[2] = %s/%v, want Savings with no spend", rows[2].Category, rows[2].Actual)
	}
}

func TestParseCategoryAmount(t *testing.T) {
	name, amt, err := parseCategoryAmount("Health Insurance 2500")
	if err != nil {
		t.Fatalf("parseCategoryAmount: %v", err)
	}
	if name != "Health Insurance" || amt != 2500 {
		t.Errorf("got (%q, %v), want (\"Health Insurance\", 2500)", name, amt)
	}

	if _, _, err := parseCategoryAmount("onlyname"); err == nil {
		t.Error("expected error for missing amount")
	}
	if _, _, err := parseCategoryAmount("Rent -100"); err == nil {
		t.Error("expected error for negative amount")
	}
}
