package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tolerance is the maximum debit/credit divergence still considered
// balanced: one cent, exclusive.
var Tolerance = decimal.New(1, -2)

// Round2 rounds an amount to 2 decimal places, half away from zero.
// Every derived monetary amount passes through here before being
// stored or compared; re-rounding after each arithmetic step bounds
// float-style drift to sub-cent noise the balance tolerance absorbs.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatFR renders an amount with two decimals and a comma decimal
// separator, e.g. "1234,56", as the accounting export format expects.
func FormatFR(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
