// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is the symbol prefixed to money values. Overridden from config
// at startup; the default matches the Indian-market feeds paisa ships with.
var Currency = "₹"

// FormatAmount formats a money value with thousands separators,
// e.g. 123456.7 -> "₹123,456.70".
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 { // rounding carried into the next rupee
		whole++
		cents -= 100
	}

	s := fmt.Sprintf("%s%s.%02d", Currency, FormatNumber(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats a savings rate that may be undefined.
func FormatRate(rate *float64) string {
	if rate == nil {
		return "n/a"
	}
	return FormatPercent(*rate)
}

// FormatChange formats a signed percent change, e.g. "+1.25%".
func FormatChange(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}
