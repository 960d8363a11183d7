package cli

import (
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{123456.7, "₹123,456.70"},
		{999.999, "₹1,000.00"},
		{-2500, "-₹2,500.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(nil); got != "n/a" {
		t.Errorf("FormatRate(nil) = %q, want %q", got, "n/a")
	}
	rate := 0.54
	if got := FormatRate(&rate); got != "54.0%" {
		t.Errorf("FormatRate(0.54) = %q, want %q", got, "54.0%")
	}
}

func TestFormatChange(t *testing.T) {
	if got := FormatChange(1.254); got != "+1.25%" {
		t.Errorf("FormatChange = %q, want %q", got, "+1.25%")
	}
	if got := FormatChange(-0.5); got != "-0.50%" {
		t.Errorf("FormatChange = %q, want %q", got, "-0.50%")
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty series rendered %q, want empty", got)
	}

	got := RenderSparkline([]float64{1, 2, 3})
	if len([]rune(got)) != 3 {
		t.Errorf("sparkline length = %d, want 3", len([]rune(got)))
	}
	runes := []rune(got)
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("sparkline = %q, want lowest first and highest last", got)
	}

	flat := RenderSparkline([]float64{5, 5, 5})
	for _, r := range flat {
		if r != '▁' {
			t.Errorf("flat series rendered %q, want all ▁", flat)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"Category", "Amount"}, [][]string{
		{"Rent", "₹1,500.00"},
		{"Food", "₹500.00"},
	})
	for _, want := range []string{"Category", "Rent", "₹500.00", "┌", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBar_Clamps(t *testing.T) {
	over := RenderBar(1.5, 10)
	if !strings.Contains(over, "100.0%") {
		t.Errorf("RenderBar(1.5) = %q, want clamped to 100.0%%", over)
	}
	under := RenderBar(-0.2, 10)
	if !strings.Contains(under, "0.0%") {
		t.Errorf("RenderBar(-0.2) = %q, want clamped to 0.0%%", under)
	}
}
