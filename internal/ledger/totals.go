package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/vat"
)

// Derived totals over the posting-eligible (non-Draft) subset of
// normalized invoices. Each sum uses the same per-item rounding as the
// generators, not a single rounding of the grand total.

// CollectedVAT sums the VAT portion of client invoices.
func CollectedVAT(invoices []model.ClientInvoice, cfg vat.Config) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == model.ClientDraft {
			continue
		}
		sum = sum.Add(cfg.Tax(inv.AmountTTC))
	}
	return sum
}

// DeductibleVAT sums the VAT portion of vendor invoices.
func DeductibleVAT(invoices []model.VendorInvoice, cfg vat.Config) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == model.VendorDraft {
			continue
		}
		sum = sum.Add(cfg.Tax(inv.AmountTTC))
	}
	return sum
}

// RevenueNet sums the tax-exclusive amounts of client invoices.
func RevenueNet(invoices []model.ClientInvoice, cfg vat.Config) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == model.ClientDraft {
			continue
		}
		sum = sum.Add(cfg.Net(inv.AmountTTC))
	}
	return sum
}

// ExpensesNet sums the tax-exclusive amounts of vendor invoices.
func ExpensesNet(invoices []model.VendorInvoice, cfg vat.Config) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == model.VendorDraft {
			continue
		}
		sum = sum.Add(cfg.Net(inv.AmountTTC))
	}
	return sum
}
