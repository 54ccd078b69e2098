package report

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const numberFormat = "#,###.##"

// FormatNumber renders f with thousands separators and two decimals.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return humanize.FormatFloat(numberFormat, f)
}

// FormatDecimal renders d with thousands separators and two decimals.
func FormatDecimal(d decimal.Decimal) string {
	return FormatNumber(d.RoundBank(2).InexactFloat64())
}

// FormatMoney renders d as a dollar amount, e.g. $1,234.50.
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + FormatDecimal(d.Neg())
	}
	return "$" + FormatDecimal(d)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount[T ~int | ~int64](n T) string {
	return humanize.Comma(int64(n))
}
