// Package verify re-reads a generated dataset directory and checks the
// structural invariants the generator promises: amount identities, balanced
// ledger postings, referential integrity and status/date consistency.
package verify

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"ardata/internal/logger"
)

const dateLayout = "2006-01-02"

// Violation is one failed invariant, tied to the file and record it was
// observed on.
type Violation struct {
	File   string
	Record string
	Rule   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%s]: %s", v.File, v.Record, v.Rule)
}

// Report summarizes one verification pass.
type Report struct {
	RecordsChecked int
	Violations     []Violation
}

// OK reports whether the dataset passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Checker walks the CSV artifacts of one dataset directory.
type Checker struct {
	dir string
	log zerolog.Logger
}

// New creates a checker for a dataset directory.
func New(dir string) *Checker {
	return &Checker{
		dir: dir,
		log: logger.WithComponent("verify"),
	}
}

// table is a parsed CSV artifact with named column access.
type table struct {
	file    string
	columns map[string]int
	rows    [][]string
}

func (t *table) field(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (c *Checker) readTable(name string) (*table, error) {
	const op = "readTable"
	file := name + ".csv"

	f, err := os.Open(filepath.Join(c.dir, file))
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", op, file, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, file, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %s is empty", op, file)
	}

	columns := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		columns[col] = i
	}

	c.log.Debug().Str("file", file).Int("rows", len(records)-1).Msg("Artifact read")
	return &table{file: file, columns: columns, rows: records[1:]}, nil
}

// Run executes every check and returns the collected report. Unreadable or
// missing artifacts are errors; invariant failures are violations.
func (c *Checker) Run() (*Report, error) {
	report := &Report{}

	customers, err := c.readTable("customer_master")
	if err != nil {
		return nil, err
	}
	invoices, err := c.readTable("invoices")
	if err != nil {
		return nil, err
	}

	customerCategory := c.checkCustomers(customers, report)
	invoiceIndex := c.checkInvoices(invoices, customerCategory, report)

	if lineItems, err := c.readTable("invoice_line_items"); err != nil {
		return nil, err
	} else {
		c.checkLineItems(lineItems, invoiceIndex, report)
	}
	if payments, err := c.readTable("payments"); err != nil {
		return nil, err
	} else {
		c.checkPayments(payments, invoiceIndex, report)
	}
	if glEntries, err := c.readTable("gl_entries"); err != nil {
		return nil, err
	} else {
		c.checkGLEntries(glEntries, report)
	}
	if orders, err := c.readTable("orders"); err != nil {
		return nil, err
	} else {
		c.checkOrders(orders, invoiceIndex, report)
	}
	if cases, err := c.readTable("collection_cases"); err != nil {
		return nil, err
	} else {
		c.checkCollectionCases(cases, report)
	}
	if disputes, err := c.readTable("disputes"); err != nil {
		return nil, err
	} else {
		c.checkDisputes(disputes, report)
	}
	if plans, err := c.readTable("payment_plans"); err != nil {
		return nil, err
	} else {
		c.checkPaymentPlans(plans, report)
	}

	c.log.Info().
		Int("records", report.RecordsChecked).
		Int("violations", len(report.Violations)).
		Msg("Verification finished")

	return report, nil
}

func (c *Checker) violation(report *Report, t *table, record, rule string) {
	report.Violations = append(report.Violations, Violation{File: t.file, Record: record, Rule: rule})
	c.log.Warn().Str("file", t.file).Str("record", record).Msg(rule)
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func date(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// checkCustomers validates credit bounds and returns customer id -> category.
func (c *Checker) checkCustomers(t *table, report *Report) map[string]string {
	categories := make(map[string]string, len(t.rows))

	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "customer_id")
		categories[id] = t.field(row, "customer_category")

		limit := money(t.field(row, "credit_limit"))
		available := money(t.field(row, "available_credit"))
		if available.GreaterThan(limit) {
			c.violation(report, t, id, "available_credit exceeds credit_limit")
		}
	}

	return categories
}

type invoiceRow struct {
	invoiceDate time.Time
	paidAmount  decimal.Decimal
	baseAmount  decimal.Decimal
}

var enterpriseMin = decimal.NewFromInt(500_000)
var enterpriseMax = decimal.NewFromInt(5_000_000)

// checkInvoices validates the amount identities, due-date arithmetic,
// customer references and category amount tiers. It returns an index keyed by
// invoice id for the downstream checks.
func (c *Checker) checkInvoices(t *table, customerCategory map[string]string, report *Report) map[string]invoiceRow {
	index := make(map[string]invoiceRow, len(t.rows))

	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "invoice_id")

		base := money(t.field(row, "invoice_amount"))
		tax := money(t.field(row, "tax_amount"))
		total := money(t.field(row, "total_amount"))
		paid := money(t.field(row, "paid_amount"))
		balance := money(t.field(row, "balance_amount"))

		if !base.Add(tax).Equal(total) {
			c.violation(report, t, id, "total_amount differs from invoice_amount + tax_amount")
		}
		if !total.Sub(paid).Equal(balance) {
			c.violation(report, t, id, "balance_amount differs from total_amount - paid_amount")
		}

		customerID := t.field(row, "customer_id")
		category, known := customerCategory[customerID]
		if !known {
			c.violation(report, t, id, "customer_id not present in customer_master")
		}
		if category == "Enterprise" && (base.LessThan(enterpriseMin) || !base.LessThan(enterpriseMax)) {
			c.violation(report, t, id, "Enterprise invoice_amount outside [500000, 5000000)")
		}

		invoiceDate, okInv := date(t.field(row, "invoice_date"))
		dueDate, okDue := date(t.field(row, "due_date"))
		if okInv && okDue {
			days := defaultTermDays(t.field(row, "payment_terms"))
			if !invoiceDate.AddDate(0, 0, days).Equal(dueDate) {
				c.violation(report, t, id, "due_date differs from invoice_date + payment terms")
			}
		}

		index[id] = invoiceRow{invoiceDate: invoiceDate, paidAmount: paid, baseAmount: base}
	}

	return index
}

func defaultTermDays(terms string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(terms, "Net "))
	if err != nil || n <= 0 {
		return 30
	}
	return n
}

// checkLineItems validates that each invoice's line amounts sum to its base
// amount within rounding tolerance of one paisa per line.
func (c *Checker) checkLineItems(t *table, invoices map[string]invoiceRow, report *Report) {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, row := range t.rows {
		report.RecordsChecked++
		invoiceID := t.field(row, "invoice_id")
		if _, ok := invoices[invoiceID]; !ok {
			c.violation(report, t, t.field(row, "line_item_id"), "invoice_id not present in invoices")
			continue
		}
		sums[invoiceID] = sums[invoiceID].Add(money(t.field(row, "amount")))
		counts[invoiceID]++
	}

	tolerance := decimal.NewFromFloat(0.01)
	for invoiceID, sum := range sums {
		allowed := tolerance.Mul(decimal.NewFromInt(int64(counts[invoiceID])))
		if sum.Sub(invoices[invoiceID].baseAmount).Abs().GreaterThan(allowed) {
			c.violation(report, t, invoiceID, "line item amounts do not sum to invoice_amount")
		}
	}
}

// checkPayments validates that every payment matches its invoice's paid
// amount.
func (c *Checker) checkPayments(t *table, invoices map[string]invoiceRow, report *Report) {
	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "payment_id")

		inv, ok := invoices[t.field(row, "invoice_id")]
		if !ok {
			c.violation(report, t, id, "invoice_id not present in invoices")
			continue
		}
		if !money(t.field(row, "payment_amount")).Equal(inv.paidAmount) {
			c.violation(report, t, id, "payment_amount differs from invoice paid_amount")
		}
	}
}

// checkGLEntries validates debit-XOR-credit per line and balance per document.
func (c *Checker) checkGLEntries(t *table, report *Report) {
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)

	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "gl_entry_id")
		document := t.field(row, "document_number")

		debit := money(t.field(row, "debit"))
		credit := money(t.field(row, "credit"))
		if debit.IsZero() == credit.IsZero() {
			c.violation(report, t, id, "exactly one of debit and credit must be nonzero")
		}

		debits[document] = debits[document].Add(debit)
		credits[document] = credits[document].Add(credit)
	}

	for document, debit := range debits {
		if !debit.Equal(credits[document]) {
			c.violation(report, t, document, "debit total differs from credit total")
		}
	}
}

// checkOrders validates the order < shipment < invoice date ordering.
func (c *Checker) checkOrders(t *table, invoices map[string]invoiceRow, report *Report) {
	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "order_id")

		orderDate, okOrder := date(t.field(row, "order_date"))
		shipmentDate, okShip := date(t.field(row, "shipment_date"))
		if !okOrder || !okShip {
			c.violation(report, t, id, "unparseable order or shipment date")
			continue
		}

		inv, ok := invoices[t.field(row, "invoice_id")]
		if !ok {
			c.violation(report, t, id, "invoice_id not present in invoices")
			continue
		}
		if !orderDate.Before(shipmentDate) || !shipmentDate.Before(inv.invoiceDate) {
			c.violation(report, t, id, "dates must satisfy order < shipment < invoice")
		}
	}
}

// checkCollectionCases validates resolution-date consistency and the overdue
// floor for case creation.
func (c *Checker) checkCollectionCases(t *table, report *Report) {
	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "case_id")

		resolved := t.field(row, "status") == "Resolved"
		resolution := t.field(row, "resolution_date")

		if resolved && resolution == "" {
			c.violation(report, t, id, "resolved case missing resolution_date")
		}
		if !resolved && resolution != "" {
			c.violation(report, t, id, "unresolved case carries resolution_date")
		}
		if resolved && resolution != "" {
			openDate, okOpen := date(t.field(row, "case_open_date"))
			resolvedDate, okRes := date(resolution)
			if okOpen && okRes && resolvedDate.Before(openDate) {
				c.violation(report, t, id, "resolution_date precedes case_open_date")
			}
		}

		if days, err := strconv.Atoi(t.field(row, "days_overdue")); err == nil && days < 5 {
			c.violation(report, t, id, "case opened below the 5-day overdue floor")
		}
	}
}

// checkDisputes validates that resolution dates appear exactly on resolved
// statuses.
func (c *Checker) checkDisputes(t *table, report *Report) {
	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "dispute_id")

		resolved := strings.HasPrefix(t.field(row, "status"), "Resolved")
		hasDate := t.field(row, "resolution_date") != ""
		if resolved != hasDate {
			c.violation(report, t, id, "resolution_date must be present iff status is resolved")
		}
	}
}

// checkPaymentPlans validates the installment arithmetic.
func (c *Checker) checkPaymentPlans(t *table, report *Report) {
	for _, row := range t.rows {
		report.RecordsChecked++
		id := t.field(row, "plan_id")

		installments, errA := strconv.Atoi(t.field(row, "installments"))
		paid, errB := strconv.Atoi(t.field(row, "installments_paid"))
		if errA != nil || errB != nil {
			c.violation(report, t, id, "unparseable installment counts")
			continue
		}
		if paid < 0 || paid > installments {
			c.violation(report, t, id, "installments_paid outside [0, installments]")
		}

		original := money(t.field(row, "original_amount"))
		installment := money(t.field(row, "installment_amount"))
		remaining := money(t.field(row, "remaining_balance"))
		expected := original.Sub(installment.Mul(decimal.NewFromInt(int64(paid))))
		if !remaining.Equal(expected) {
			c.violation(report, t, id, "remaining_balance differs from original - installment*paid")
		}
	}
}
