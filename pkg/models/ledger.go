package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GL document types.
const (
	DocTypeInvoice = "Invoice"
	DocTypePayment = "Payment"
)

// GLEntry is one side of a balanced general-ledger posting. Exactly one of
// Debit and Credit is nonzero, and the entries of a document balance.
type GLEntry struct {
	GLEntryID          string // "GL" + zero-padded sequence + "-<line>"
	PostingDate        time.Time
	DocumentType       string // Invoice or Payment
	DocumentNumber     string
	AccountCode        string
	AccountDescription string
	Debit              decimal.Decimal
	Credit             decimal.Decimal
	Currency           string
	Reference          string
	CustomerID         string
}

// Order is the sales order behind an invoice, one-to-one. Order date precedes
// shipment date precedes invoice date by construction.
type Order struct {
	OrderID             string // "ORD" + invoice sequence number
	CustomerID          string
	InvoiceID           string
	OrderDate           time.Time
	ShipmentDate        time.Time
	OrderAmount         decimal.Decimal
	TaxAmount           decimal.Decimal
	TotalAmount         decimal.Decimal
	Status              string
	SalesRepID          string
	Currency            string
	ShippingAddress     string
	PurchaseOrderNumber string
}
