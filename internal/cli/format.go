// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount formats a money-like value rounded to whole units with
// comma separators. e.g., 132000 -> "132,000", -1500.4 -> "-1,500"
func FormatAmount(v float64) string {
	r := math.Round(v)
	if r == 0 {
		return "0"
	}
	return FormatNumber(int64(r))
}

// FormatCompact formats a value with K/M/B suffixes for card deltas.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatGrowth formats a per-month growth rate with an explicit sign.
func FormatGrowth(g float64) string {
	if g >= 0 {
		return "+" + FormatAmount(g) + "/mo"
	}
	return "-" + FormatAmount(-g) + "/mo"
}
