// Package gen synthesizes the Collect.D accounts-receivable dataset: a
// customer master, invoices with line items, the downstream payment,
// ledger, order and collections records, and the derived analytics. The
// pipeline is strictly sequential and every probabilistic draw goes through
// one seeded Source, so a run is fully determined by seed, reference date and
// customer count.
package gen

import (
	"time"

	"github.com/rs/zerolog"
	"ardata/internal/logger"
	"ardata/pkg/models"
)

const (
	currencyINR = "INR"

	// DefaultCustomerCount is the size of the customer master.
	DefaultCustomerCount = 1000

	// DefaultSalesRepCount is the size of the shared rep/collector roster.
	DefaultSalesRepCount = 50

	// invoiceWindowDays bounds invoice dates to the period before the
	// reference date.
	invoiceWindowDays = 180

	// orderInProgressDays is how far back an invoice may be dated for its
	// order to still be in progress.
	orderInProgressDays = 34

	// nextActionWindowDays bounds collection next-action dates after the
	// reference date.
	nextActionWindowDays = 22

	// dsoWindowMonths is the span of the DSO analytics window.
	dsoWindowMonths = 7
)

// DefaultAsOf is the reference date all overdue and aging math is relative to
// when none is configured. It is a fixed constant rather than the wall clock
// so repeated runs describe the same point in time.
var DefaultAsOf = time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)

// Config carries the tunable inputs of a generation run. The zero value is
// normalized to the documented defaults.
type Config struct {
	Seed      int64
	AsOf      time.Time
	Customers int
	SalesReps int
}

// Generator runs the synthesis pipeline.
type Generator struct {
	src           *Source
	asOf          time.Time
	customerCount int
	salesRepCount int
	log           zerolog.Logger
}

// New creates a generator for the given configuration.
func New(cfg Config) *Generator {
	if cfg.AsOf.IsZero() {
		cfg.AsOf = DefaultAsOf
	}
	if cfg.Customers <= 0 {
		cfg.Customers = DefaultCustomerCount
	}
	if cfg.SalesReps <= 0 {
		cfg.SalesReps = DefaultSalesRepCount
	}

	return &Generator{
		src:           NewSource(cfg.Seed),
		asOf:          midnight(cfg.AsOf),
		customerCount: cfg.Customers,
		salesRepCount: cfg.SalesReps,
		log:           logger.WithComponent("generator"),
	}
}

// Dataset holds every record collection of one generation run. Collections
// are immutable once generated; a new run rebuilds everything.
type Dataset struct {
	Customers             []models.Customer
	SalesReps             []models.SalesRep
	Invoices              []models.Invoice
	LineItems             []models.InvoiceLineItem
	Payments              []models.Payment
	GLEntries             []models.GLEntry
	Orders                []models.Order
	Interactions          []models.Interaction
	CollectionCases       []models.CollectionCase
	Disputes              []models.Dispute
	PaymentPlans          []models.PaymentPlan
	RiskScores            []models.RiskScore
	DSOAnalytics          []models.DSORecord
	CollectionPerformance []models.CollectorPerformance
	StrategyEffectiveness []models.StrategyEffectiveness
}

// AsOf returns the reference date of the generator.
func (g *Generator) AsOf() time.Time {
	return g.asOf
}

// Generate runs every stage in dependency order and returns the full dataset.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{}

	ds.Customers = g.generateCustomers()
	g.log.Info().Int("count", len(ds.Customers)).Msg("Generated customer records")

	ds.SalesReps = g.generateSalesReps()
	ds.Invoices, ds.LineItems = g.generateInvoices(ds.Customers, ds.SalesReps)
	g.log.Info().
		Int("invoices", len(ds.Invoices)).
		Int("line_items", len(ds.LineItems)).
		Msg("Generated invoice records")

	customersByID := make(map[string]*models.Customer, len(ds.Customers))
	for i := range ds.Customers {
		customersByID[ds.Customers[i].CustomerID] = &ds.Customers[i]
	}
	invoicesByCustomer := make(map[string][]*models.Invoice, len(ds.Customers))
	for i := range ds.Invoices {
		inv := &ds.Invoices[i]
		invoicesByCustomer[inv.CustomerID] = append(invoicesByCustomer[inv.CustomerID], inv)
	}

	ds.Payments = g.generatePayments(ds.Invoices)
	g.log.Info().Int("count", len(ds.Payments)).Msg("Generated payment records")

	ds.GLEntries = g.generateGLEntries(ds.Invoices)
	g.log.Info().Int("count", len(ds.GLEntries)).Msg("Generated GL entry records")

	ds.Orders = g.generateOrders(ds.Invoices, customersByID)
	g.log.Info().Int("count", len(ds.Orders)).Msg("Generated order records")

	ds.Interactions = g.generateInteractions(ds.Customers, invoicesByCustomer, ds.SalesReps)
	g.log.Info().Int("count", len(ds.Interactions)).Msg("Generated interaction records")

	ds.CollectionCases = g.generateCollectionCases(ds.Invoices, ds.SalesReps)
	g.log.Info().Int("count", len(ds.CollectionCases)).Msg("Generated collection case records")

	ds.Disputes = g.generateDisputes(ds.Invoices, ds.SalesReps)
	g.log.Info().Int("count", len(ds.Disputes)).Msg("Generated dispute records")

	ds.PaymentPlans = g.generatePaymentPlans(ds.Invoices, ds.SalesReps)
	g.log.Info().Int("count", len(ds.PaymentPlans)).Msg("Generated payment plan records")

	ds.RiskScores = g.generateRiskScores(ds.Customers, invoicesByCustomer, ds.Disputes, ds.CollectionCases)
	g.log.Info().Int("count", len(ds.RiskScores)).Msg("Generated risk score records")

	ds.DSOAnalytics = g.generateDSOAnalytics(ds.Invoices)
	g.log.Info().Int("count", len(ds.DSOAnalytics)).Msg("Generated DSO analytics records")

	ds.CollectionPerformance = g.generateCollectionPerformance(ds.CollectionCases)
	g.log.Info().Int("count", len(ds.CollectionPerformance)).Msg("Generated collection performance records")

	ds.StrategyEffectiveness = g.generateStrategyEffectiveness(ds.CollectionCases)
	g.log.Info().Int("count", len(ds.StrategyEffectiveness)).Msg("Generated strategy effectiveness records")

	return ds
}

// interactionWindowStart is the first day of the month six months before the
// reference date: interactions fall between it and the reference date.
func (g *Generator) interactionWindowStart() time.Time {
	shifted := g.asOf.AddDate(0, -6, 0)
	return time.Date(shifted.Year(), shifted.Month(), 1, 0, 0, 0, 0, time.UTC)
}
