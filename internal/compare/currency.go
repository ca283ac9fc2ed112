package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var thousand = decimal.NewFromInt(1000)

// FormatCurrency renders a whole-unit amount with thousands separators:
// $1,234 or -$1,234. Amounts are rounded half away from zero.
func FormatCurrency(d decimal.Decimal, symbol string) string {
	r := d.Round(0)
	formatted := printer.Sprintf("%d", r.Abs().IntPart())
	if r.IsNegative() {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// FormatDollars is FormatCurrency for a float amount in dollars
func FormatDollars(v float64) string {
	return FormatCurrency(decimal.NewFromFloat(v), "$")
}

// FormatShort renders compact axis labels: $10k, -$5k, $500
func FormatShort(d decimal.Decimal, symbol string) string {
	r := d.Round(0)
	abs := r.Abs()
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	if abs.GreaterThanOrEqual(thousand) {
		return fmt.Sprintf("%s%s%sk", sign, symbol, abs.Div(thousand).Round(0).String())
	}
	return sign + symbol + abs.String()
}

// FormatPercent renders a ratio as a percentage with one decimal: 0.125 -> 12.5%
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
