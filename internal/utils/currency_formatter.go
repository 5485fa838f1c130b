package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders an amount with thousands separators and two
// decimals, e.g. 1234.5 -> "1,234.50 USD".
func FormatCurrency(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := sign + humanize.FormatFloat("#,###.##", amount)
	if currency == "" {
		return s
	}
	return fmt.Sprintf("%s %s", s, currency)
}

// FormatSigned prefixes income with "+" and expense with "-".
func FormatSigned(amount float64, income bool, currency string) string {
	sign := "-"
	if income {
		sign = "+"
	}
	return sign + " " + FormatCurrency(math.Abs(amount), currency)
}

// FormatPercent renders a 0-100 share with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
