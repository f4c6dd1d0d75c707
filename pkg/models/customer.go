package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the root entity of the dataset. Every downstream record
// references a customer either directly or through one of its invoices.
type Customer struct {
	// Core identifiers
	CustomerID   string // "CUST" + zero-padded sequence
	CustomerName string // Company name, derived from the customer index

	// Contact
	PrimaryContact string // Contact person name, derived from the customer index
	Email          string
	Phone          string

	// Address
	AddressLine1 string
	City         string
	State        string
	PostalCode   string
	Country      string

	// Tax
	GSTNumber string // 15-char GST identification number

	// Commercial terms
	PaymentTerms     string          // "Net 30", "Net 45", ..., "COD"
	CreditLimit      decimal.Decimal // Whole-rupee credit limit by category
	AvailableCredit  decimal.Decimal // Always <= CreditLimit
	IndustrySector   string
	CustomerCategory string // Small, Medium, Large, Enterprise

	OnboardingDate time.Time
	Status         string // "Active" or "Inactive"
}

// SalesRep doubles as collector and dispute/plan handler across the dataset.
type SalesRep struct {
	RepID   string // "REP" + zero-padded sequence
	RepName string
}
