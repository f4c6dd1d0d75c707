package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskScore grades a customer's receivable risk on a 0-100 scale. Only
// customers with at least one invoice are scored.
type RiskScore struct {
	CustomerID   string
	CustomerName string

	RiskScore    int    // 0-100, higher is riskier
	RiskCategory string // Minimal/Low/Medium/High Risk at 25/50/75 thresholds

	CreditLimit       decimal.Decimal
	OutstandingAmount decimal.Decimal
	CreditUtilization decimal.Decimal // Percent
	OverdueRate       decimal.Decimal // Percent
	AvgDaysLate       float64

	TotalInvoices   int
	OverdueInvoices int

	HasDisputes          bool
	HasCollectionHistory bool

	RecommendedAction  string
	LastAssessmentDate time.Time
}

// DSORecord is the month-end receivables snapshot for one calendar month:
// days sales outstanding, aging buckets and the collection effectiveness index.
type DSORecord struct {
	Month string // "2006-01"

	TotalRevenue decimal.Decimal // Base amount of invoices dated in-month
	TotalAR      decimal.Decimal // Open receivables at month end
	DSO          int             // TotalAR / average daily sales, 0 when no sales

	// Aging buckets partition TotalAR by days past due at month end.
	CurrentAR    decimal.Decimal
	AR1To30Days  decimal.Decimal
	AR31To60Days decimal.Decimal
	AR61To90Days decimal.Decimal
	AROver90Days decimal.Decimal

	CEIPercentage decimal.Decimal

	InvoicesCount    int
	PaidInvoices     int
	DisputedInvoices int
}

// CollectorPerformance aggregates collection cases per collector.
type CollectorPerformance struct {
	CollectorID   string
	CollectorName string

	TotalCases     int
	ResolvedCases  int
	EscalatedCases int

	ResolutionRate decimal.Decimal // Percent
	EscalationRate decimal.Decimal // Percent

	AmountAssigned  decimal.Decimal
	AmountCollected decimal.Decimal

	AvgResolutionDays float64         // Running mean over resolved cases
	CEIPercentage     decimal.Decimal // AmountCollected / AmountAssigned * 100

	AssessmentDate time.Time
}

// StrategyEffectiveness aggregates collection cases per collection strategy.
type StrategyEffectiveness struct {
	StrategyName string

	TotalCases    int
	ResolvedCases int
	SuccessRate   decimal.Decimal // Percent

	TotalAmountAssigned  decimal.Decimal
	TotalAmountCollected decimal.Decimal
	RecoveryRate         decimal.Decimal // Percent

	AvgResolutionDays  float64
	AvgCaseAmount      decimal.Decimal
	BestForAmountRange string

	AssessmentDate time.Time
}
