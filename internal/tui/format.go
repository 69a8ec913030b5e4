package tui

import (
	"fmt"
	"math"
	"strings"
)

// formatMoney renders an amount as "$1,250,000.00".
func formatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	total := int64(math.Round(amount * 100))
	whole := total / 100
	cents := total % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents)
}

// formatMillions renders an amount in millions with one decimal, the way
// the dashboard summary cards show totals, e.g. "$2.5M".
func formatMillions(amount float64) string {
	return fmt.Sprintf("$%.1fM", amount/1_000_000)
}

// progressBar renders a fixed-width 0-100 bar.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
