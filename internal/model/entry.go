package model

import "github.com/shopspring/decimal"

// JournalEntry is one aggregate posting line against the chart of
// accounts. The generator emits one-sided entries (either debit or
// credit); after aggregation an account may carry both totals.
type JournalEntry struct {
	Account string // fixed-width numeric code, e.g. "411000"
	Label   string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// BalanceResult reports whether total debits equal total credits
// within the rounding tolerance.
type BalanceResult struct {
	Balanced   bool
	Difference decimal.Decimal // |total debit - total credit|
}
