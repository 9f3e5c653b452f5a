// Package ledger converts canonical invoices into double-entry
// postings against the fixed chart of accounts, aggregates them into
// one ledger and verifies the debit/credit balance.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/accounts"
	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/money"
	"github.com/facturo-dev/facturo/internal/vat"
)

var chart = accounts.Default()

// ClientEntries converts a batch of client invoices into sales
// postings: gross debits Clients, net credits Prestations, tax credits
// TVA collectée. One aggregate line per account per call, never one
// posting per invoice. Draft invoices are excluded and zero totals
// emit no entry.
func ClientEntries(invoices []model.ClientInvoice, cfg vat.Config) []model.JournalEntry {
	totalGross := decimal.Zero
	totalNet := decimal.Zero
	totalTax := decimal.Zero
	posted := 0

	for _, inv := range invoices {
		if inv.Status == model.ClientDraft {
			continue
		}
		totalGross = totalGross.Add(inv.AmountTTC)
		totalNet = totalNet.Add(cfg.Net(inv.AmountTTC))
		totalTax = totalTax.Add(cfg.Tax(inv.AmountTTC))
		posted++
	}
	if posted == 0 {
		return nil
	}

	totalGross = money.Round2(totalGross)
	totalNet = money.Round2(totalNet)
	totalTax = money.Round2(totalTax)

	var entries []model.JournalEntry
	if totalGross.IsPositive() {
		entries = append(entries, debit(accounts.CodeClients, totalGross))
	}
	if totalNet.IsPositive() {
		entries = append(entries, credit(accounts.CodeServices, totalNet))
	}
	if totalTax.IsPositive() {
		entries = append(entries, credit(accounts.CodeVATCollected, totalTax))
	}
	return entries
}

// VendorEntries converts a batch of vendor invoices into purchase
// postings: net debits Achats, tax debits TVA déductible, gross
// credits Fournisseurs. Same batching and exclusion rules as
// ClientEntries.
func VendorEntries(invoices []model.VendorInvoice, cfg vat.Config) []model.JournalEntry {
	totalGross := decimal.Zero
	totalNet := decimal.Zero
	totalTax := decimal.Zero
	posted := 0

	for _, inv := range invoices {
		if inv.Status == model.VendorDraft {
			continue
		}
		totalGross = totalGross.Add(inv.AmountTTC)
		totalNet = totalNet.Add(cfg.Net(inv.AmountTTC))
		totalTax = totalTax.Add(cfg.Tax(inv.AmountTTC))
		posted++
	}
	if posted == 0 {
		return nil
	}

	totalGross = money.Round2(totalGross)
	totalNet = money.Round2(totalNet)
	totalTax = money.Round2(totalTax)

	var entries []model.JournalEntry
	if totalNet.IsPositive() {
		entries = append(entries, debit(accounts.CodePurchases, totalNet))
	}
	if totalTax.IsPositive() {
		entries = append(entries, debit(accounts.CodeVATDeductible, totalTax))
	}
	if totalGross.IsPositive() {
		entries = append(entries, credit(accounts.CodeVendors, totalGross))
	}
	return entries
}

func debit(code string, amount decimal.Decimal) model.JournalEntry {
	return model.JournalEntry{Account: code, Label: chart.Label(code), Debit: amount}
}

func credit(code string, amount decimal.Decimal) model.JournalEntry {
	return model.JournalEntry{Account: code, Label: chart.Label(code), Credit: amount}
}
