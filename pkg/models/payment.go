package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records the settlement of a paid or partially paid invoice.
// Its amount always equals the invoice's paid amount.
type Payment struct {
	PaymentID       string // "PAY" + invoice sequence number
	InvoiceID       string
	CustomerID      string
	PaymentDate     time.Time
	PaymentAmount   decimal.Decimal
	PaymentMethod   string
	ReferenceNumber string // "CHK-" for checks, "REF-" otherwise
	BankAccount     string // Only set for bank-routed methods
	Status          string
	Notes           string
}

// PaymentPlan is an installment schedule opened against an overdue invoice.
type PaymentPlan struct {
	PlanID       string // "PLAN" + zero-padded sequence
	InvoiceID    string
	CustomerID   string
	CustomerName string

	StartDate time.Time
	EndDate   time.Time // StartDate + one month per installment

	OriginalAmount    decimal.Decimal // The invoice balance at plan creation
	Installments      int
	InstallmentAmount decimal.Decimal // OriginalAmount / Installments
	InstallmentsPaid  int
	RemainingBalance  decimal.Decimal // OriginalAmount - InstallmentAmount*InstallmentsPaid

	Status    string // Active, Completed, Defaulted, Canceled
	CreatedBy string
	HandlerID string

	NextInstallmentDate *time.Time // Only while Active
	LastPaymentDate     *time.Time // Only when at least one installment is paid
}
