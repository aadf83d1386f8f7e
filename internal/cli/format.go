// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency describes how amounts are displayed.
type Currency struct {
	Symbol   string
	Decimal  string
	Thousand string
}

// DefaultCurrency is Brazilian real formatting: "R$ 1.234,56".
var DefaultCurrency = Currency{Symbol: "R$", Decimal: ",", Thousand: "."}

var (
	activeCurrency    = DefaultCurrency
	currencyFormatter = newFormatter(DefaultCurrency)
)

// maxCents bounds the int64 cents path; larger amounts are formatted from
// their decimal text.
const maxCents = 1 << 62

func newFormatter(c Currency) *money.Formatter {
	return money.NewFormatter(2, c.Decimal, c.Thousand, c.Symbol, "$ 1")
}

// SetCurrency replaces the active currency used by FormatCurrency.
// Empty fields fall back to DefaultCurrency.
func SetCurrency(c Currency) {
	if c.Symbol == "" {
		c.Symbol = DefaultCurrency.Symbol
	}
	if c.Decimal == "" {
		c.Decimal = DefaultCurrency.Decimal
	}
	if c.Thousand == "" {
		c.Thousand = DefaultCurrency.Thousand
	}
	activeCurrency = c
	currencyFormatter = newFormatter(c)
}

// FormatCurrency formats an amount with the currency symbol, grouped thousands
// and exactly two decimals. Non-finite values format as zero.
// e.g., 2070 -> "R$ 2.070,00", -2070 -> "-R$ 2.070,00"
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	cents := math.Round(v * 100)
	if math.Abs(cents) < maxCents {
		return currencyFormatter.Format(int64(cents))
	}
	return formatLargeCurrency(v)
}

// formatLargeCurrency lays out amounts beyond int64 cents the same way the
// money formatter does: "-", symbol, space, grouped digits, decimals.
func formatLargeCurrency(v float64) string {
	c := activeCurrency
	digits := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	b.WriteString(c.Symbol)
	b.WriteByte(' ')
	b.WriteString(groupDigits(whole, c.Thousand))
	b.WriteString(c.Decimal)
	b.WriteString(frac)
	return b.String()
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10), ",")
}

// groupDigits inserts sep between groups of three digits.
func groupDigits(s, sep string) string {
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
			result.WriteString(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
