package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientInvoiceStatus is the derived lifecycle status of a client invoice.
type ClientInvoiceStatus string

const (
	ClientPaid    ClientInvoiceStatus = "paid"
	ClientPending ClientInvoiceStatus = "pending"
	ClientDraft   ClientInvoiceStatus = "draft"
)

// VendorInvoiceStatus is the derived lifecycle status of a vendor invoice.
type VendorInvoiceStatus string

const (
	VendorPaid  VendorInvoiceStatus = "paid"
	VendorToPay VendorInvoiceStatus = "to-pay"
	VendorDraft VendorInvoiceStatus = "draft"
)

// ClientInvoice is the canonical sales-side invoice derived from a
// ServiceRecord. Immutable once produced; cancelled records never
// reach this shape.
type ClientInvoice struct {
	ID        string
	Number    string
	Client    string
	IssueDate time.Time // calendar date, no time component
	DueDate   time.Time // issue date + 30 days
	AmountTTC decimal.Decimal
	Status    ClientInvoiceStatus
}

// VendorInvoice is the canonical purchase-side invoice derived from a
// PurchaseRecord.
type VendorInvoice struct {
	ID        string
	Number    string
	Vendor    string
	IssueDate time.Time
	DueDate   time.Time
	AmountTTC decimal.Decimal
	Status    VendorInvoiceStatus
}
