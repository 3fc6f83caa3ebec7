package shared

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	usPrinter = message.NewPrinter(language.AmericanEnglish)
	maxWhole  = decimal.NewFromInt(math.MaxInt64)
)

// FormatUSD renders v as en-US dollars with no decimals ("$2,839,421"), rounding half
// away from zero. Non-finite values render as "".
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	d := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	if d.GreaterThan(maxWhole) {
		return sign + "$" + d.StringFixed(0)
	}
	return sign + "$" + usPrinter.Sprintf("%d", d.IntPart())
}

// FormatPercent renders percentage points with at most two decimals ("8.5%").
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return decimal.NewFromFloat(v).Round(2).String() + "%"
}
