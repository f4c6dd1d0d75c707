package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice payment statuses.
const (
	StatusUnpaid  = "Unpaid"
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusOverdue = "Overdue"
)

// Invoice is a receivable raised against a customer.
type Invoice struct {
	// Core identifiers
	InvoiceID    string // "INV" + zero-padded sequence
	CustomerID   string
	CustomerName string

	// Dates
	InvoiceDate time.Time
	DueDate     time.Time  // InvoiceDate + parsed payment-term days
	PaymentDate *time.Time // nil unless Paid or Partial

	// Amounts
	InvoiceAmount decimal.Decimal // Base amount before tax
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal // InvoiceAmount + TaxAmount
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal // TotalAmount - PaidAmount

	// Status
	PaymentStatus string // Unpaid, Paid, Partial, Overdue

	// Metadata
	PaymentTerms    string
	Currency        string
	SalesRepID      string
	SalesRepName    string
	ReferenceNumber string // Customer PO reference
	TaxType         string // GST5, GST12, GST18, GST28
}

// InvoiceLineItem is one billed line of an invoice. Line amounts sum exactly
// to the invoice base amount; the last line absorbs the rounding remainder.
type InvoiceLineItem struct {
	LineItemID         string // "ITEM" + zero-padded sequence
	InvoiceID          string
	ProductCode        string
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal // Amount / Quantity, rounded; not authoritative
	Amount             decimal.Decimal
	TaxRate            string // e.g. "18%"
	TaxAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
}
