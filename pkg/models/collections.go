package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Interaction is a logged touchpoint with a customer, optionally tied to an
// invoice. Customers with overdue invoices accumulate more of them.
type Interaction struct {
	InteractionID   string // "INT" + zero-padded sequence
	CustomerID      string
	CustomerName    string
	InteractionDate time.Time
	InteractionType string // Call, Email, Meeting, ...
	Purpose         string
	Summary         string
	InitiatedBy     string // "Company" or "Customer"
	HandledBy       string
	RepID           string
	RelatedInvoice  string // Empty unless the purpose references an invoice
	Outcome         string
	Notes           string
}

// CollectionCase is opened for an invoice that is overdue by at least five
// days. Priority and strategy are deterministic functions of the balance and
// the days-overdue tier.
type CollectionCase struct {
	CaseID       string // "CASE" + zero-padded sequence
	CustomerID   string
	CustomerName string
	InvoiceID    string

	CaseOpenDate time.Time
	AmountDue    decimal.Decimal
	DaysOverdue  int

	Priority           string // Low, Medium, High, Critical
	Status             string
	AssignedTo         string
	CollectorID        string
	CollectionStrategy string

	LastActionDate time.Time
	NextActionDate *time.Time // Empty once resolved
	ResolutionDate *time.Time // Set iff Status is Resolved
	Notes          string
}

// Dispute is raised against roughly one in ten invoices old enough to have
// been reviewed by the customer.
type Dispute struct {
	DisputeID    string // "DISP" + zero-padded sequence
	InvoiceID    string
	CustomerID   string
	CustomerName string

	OpenDate      time.Time
	DisputeAmount decimal.Decimal // 10-100% of the invoice total
	DisputeType   string
	Status        string

	AssignedTo string
	HandlerID  string

	ResolutionDate  *time.Time // Set iff Status starts with "Resolved"
	ResolutionNotes string
	Description     string
}
