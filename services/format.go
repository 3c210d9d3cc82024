package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats an amount with the given currency symbol, western
// thousands grouping and exactly 2 decimal places (e.g. "$12,345.50").
// This is the presentation boundary: calculations keep full precision and
// only the rendered string is rounded.
func FormatMoney(amount float64, symbol string) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := symbol + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatHours renders an hour figure: whole values without decimals,
// fractional ones with a single decimal place.
func FormatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0f h", hours)
	}
	return fmt.Sprintf("%.1f h", hours)
}
