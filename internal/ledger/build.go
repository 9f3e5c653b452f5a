package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/money"
	"github.com/facturo-dev/facturo/internal/vat"
)

// Build runs both generators and merges the results into a single
// ledger keyed by account code, sorted ascending.
func Build(clientInvoices []model.ClientInvoice, vendorInvoices []model.VendorInvoice, cfg vat.Config) []model.JournalEntry {
	entries := ClientEntries(clientInvoices, cfg)
	entries = append(entries, VendorEntries(vendorInvoices, cfg)...)
	return Merge(entries)
}

// Merge groups entries by account code. Debit and credit are summed
// independently and re-rounded; with the fixed chart no account
// receives both sides, but the merge does not assume that.
func Merge(entries []model.JournalEntry) []model.JournalEntry {
	byAccount := make(map[string]model.JournalEntry, len(entries))
	for _, e := range entries {
		cur, ok := byAccount[e.Account]
		if !ok {
			byAccount[e.Account] = e
			continue
		}
		cur.Debit = money.Round2(cur.Debit.Add(e.Debit))
		cur.Credit = money.Round2(cur.Credit.Add(e.Credit))
		byAccount[e.Account] = cur
	}

	merged := make([]model.JournalEntry, 0, len(byAccount))
	for _, e := range byAccount {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Account < merged[j].Account
	})
	return merged
}

// Totals returns the summed debit and credit of a ledger.
func Totals(entries []model.JournalEntry) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}
	return totalDebit, totalCredit
}

// CheckBalance computes the debit/credit difference. Balanced means
// strictly under one cent; exactly one cent is not balanced. An empty
// ledger is balanced with a zero difference.
func CheckBalance(entries []model.JournalEntry) model.BalanceResult {
	totalDebit, totalCredit := Totals(entries)
	diff := totalDebit.Sub(totalCredit).Abs()
	return model.BalanceResult{
		Balanced:   diff.LessThan(money.Tolerance),
		Difference: diff,
	}
}
