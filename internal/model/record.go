package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceKind discriminates quotes from invoices. Only invoices
// participate in the accounting export.
type ServiceKind string

const (
	KindQuote   ServiceKind = "quote"
	KindInvoice ServiceKind = "invoice"
)

// ServiceStatus is the workflow status of a client billing engagement.
type ServiceStatus string

const (
	ServiceDraft     ServiceStatus = "draft"
	ServiceSent      ServiceStatus = "sent"
	ServiceScheduled ServiceStatus = "scheduled"
	ServiceCompleted ServiceStatus = "completed"
	ServiceCancelled ServiceStatus = "cancelled"
)

// ServiceRecord is a raw client-side billing record as supplied by the
// source record provider. The engine reads it, never writes it.
type ServiceRecord struct {
	ID            string
	ClientID      string
	Kind          ServiceKind
	Status        ServiceStatus
	ScheduledAt   time.Time       // doubles as the invoice issue date
	Price         decimal.Decimal // net service price
	Surcharge     decimal.Decimal // net surcharge, zero if none
	InvoiceNumber string          // empty if not yet assigned
	VATEnabled    *bool           // per-record override; nil = use the global flag
}

// PurchaseStatus is the workflow status of a vendor purchase record.
type PurchaseStatus string

const (
	PurchaseDraft     PurchaseStatus = "draft"
	PurchaseValidated PurchaseStatus = "validated"
	PurchasePaid      PurchaseStatus = "paid"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// PurchaseRecord is a raw vendor invoice. AmountTTC is already tax
// inclusive; no further computation is needed to obtain the gross.
type PurchaseRecord struct {
	ID        string
	Vendor    string
	Reference string // vendor invoice number, empty if none
	Date      time.Time
	Status    PurchaseStatus
	AmountTTC decimal.Decimal
}
