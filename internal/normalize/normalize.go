// Package normalize maps heterogeneous source records into the two
// canonical invoice shapes the ledger generator consumes. Records that
// cannot be mapped (unresolvable client, missing date) are dropped,
// never failed; callers log the counts.
package normalize

import (
	"time"

	"github.com/facturo-dev/facturo/internal/id"
	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/money"
	"github.com/facturo-dev/facturo/internal/vat"
)

// ClientLookup resolves a client id to a display name.
type ClientLookup interface {
	Name(id string) (string, bool)
}

// paymentTermDays is the standard payment term: due = issue + 30
// calendar days.
const paymentTermDays = 30

// ClientInvoices maps raw service records to canonical client
// invoices. Quotes and cancelled records never produce an invoice;
// the result is the largest valid subset of the input.
func ClientInvoices(records []model.ServiceRecord, clients ClientLookup, cfg vat.Config) []model.ClientInvoice {
	var invoices []model.ClientInvoice
	for _, rec := range records {
		if rec.Kind != model.KindInvoice {
			continue
		}
		if rec.Status == model.ServiceCancelled {
			continue
		}
		name, ok := clients.Name(rec.ClientID)
		if !ok {
			continue
		}
		if rec.ScheduledAt.IsZero() {
			continue
		}

		issue := dateOnly(rec.ScheduledAt)
		gross := money.Round2(rec.Price.Add(rec.Surcharge).Mul(cfg.Multiplier(rec.VATEnabled)))

		number := rec.InvoiceNumber
		if number == "" {
			number = id.ClientFallback(rec.ID)
		}

		invoices = append(invoices, model.ClientInvoice{
			ID:        rec.ID,
			Number:    number,
			Client:    name,
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 0, paymentTermDays),
			AmountTTC: gross,
			Status:    clientStatus(rec.Status),
		})
	}
	return invoices
}

// VendorInvoices maps raw purchase records to canonical vendor
// invoices. The purchase amount is already tax inclusive; it is only
// re-rounded.
func VendorInvoices(records []model.PurchaseRecord) []model.VendorInvoice {
	var invoices []model.VendorInvoice
	for _, rec := range records {
		if rec.Status == model.PurchaseCancelled {
			continue
		}
		if rec.Date.IsZero() {
			continue
		}

		issue := dateOnly(rec.Date)

		number := rec.Reference
		if number == "" {
			number = id.VendorFallback(rec.ID)
		}

		invoices = append(invoices, model.VendorInvoice{
			ID:        rec.ID,
			Number:    number,
			Vendor:    rec.Vendor,
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 0, paymentTermDays),
			AmountTTC: money.Round2(rec.AmountTTC),
			Status:    vendorStatus(rec.Status),
		})
	}
	return invoices
}

// clientStatus derives the invoice lifecycle status. Total over the
// non-cancelled input domain.
func clientStatus(s model.ServiceStatus) model.ClientInvoiceStatus {
	switch s {
	case model.ServiceCompleted:
		return model.ClientPaid
	case model.ServiceSent, model.ServiceScheduled:
		return model.ClientPending
	default:
		return model.ClientDraft
	}
}

func vendorStatus(s model.PurchaseStatus) model.VendorInvoiceStatus {
	switch s {
	case model.PurchasePaid:
		return model.VendorPaid
	case model.PurchaseValidated:
		return model.VendorToPay
	default:
		return model.VendorDraft
	}
}

// dateOnly strips the time component of a timestamp.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
