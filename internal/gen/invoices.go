package gen

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"ardata/pkg/models"
)

const defaultTermDays = 30

// taxRates maps tax type to its fractional GST rate.
var taxRates = map[string]float64{
	"GST5":  0.05,
	"GST12": 0.12,
	"GST18": 0.18,
	"GST28": 0.28,
}

var taxTypeWeights = []WeightedValue{
	{"GST5", 20},
	{"GST12", 30},
	{"GST18", 40},
	{"GST28", 10},
}

// invoiceAmountRanges gives the [min, max) base amount per customer category.
var invoiceAmountRanges = map[string][2]float64{
	"Small":      {10_000, 100_000},
	"Medium":     {50_000, 500_000},
	"Large":      {200_000, 2_000_000},
	"Enterprise": {500_000, 5_000_000},
}

var productNames = []string{
	"Software License", "Consulting Services", "Hardware Appliance",
	"Support Contract", "Implementation Services", "Training Package",
	"Cloud Subscription", "Maintenance Agreement", "Security Solution",
	"Network Equipment",
}

// generateSalesReps produces the shared rep roster. Name indexes are offset so
// reps never collide with customer contacts.
func (g *Generator) generateSalesReps() []models.SalesRep {
	reps := make([]models.SalesRep, 0, g.salesRepCount)
	for i := 0; i < g.salesRepCount; i++ {
		reps = append(reps, models.SalesRep{
			RepID:   FormatID("REP", i+1, 6),
			RepName: PersonName(i + 500),
		})
	}
	return reps
}

// termDaysFor parses a "Net N" payment term into its day count. Anything
// unparseable (e.g. "COD") degrades to the 30-day default.
func termDaysFor(terms string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(terms, "Net "))
	if err != nil || n <= 0 {
		return defaultTermDays
	}
	return n
}

// generateInvoices draws 3-8 invoices per customer together with their line
// items. Payment status follows sequential probability rolls: past-due
// invoices are 70% paid / 30% overdue; not-yet-due invoices are 20% paid
// early, else 10% partially paid, else unpaid. The rolls are deliberately
// sequential and independent, so effective status probabilities are not a
// single categorical distribution.
func (g *Generator) generateInvoices(customers []models.Customer, reps []models.SalesRep) ([]models.Invoice, []models.InvoiceLineItem) {
	var invoices []models.Invoice
	var lineItems []models.InvoiceLineItem

	for i := range customers {
		customer := &customers[i]
		invoiceCount := g.src.IntBetween(3, 8)

		for j := 0; j < invoiceCount; j++ {
			invoiceID := FormatID("INV", i*10+j+1, 7)

			daysAgo := g.src.IntN(invoiceWindowDays)
			invoiceDate := g.asOf.AddDate(0, 0, -daysAgo)
			termDays := termDaysFor(customer.PaymentTerms)
			dueDate := invoiceDate.AddDate(0, 0, termDays)

			rep := reps[g.src.IntN(len(reps))]

			amounts, ok := invoiceAmountRanges[customer.CustomerCategory]
			if !ok {
				amounts = invoiceAmountRanges["Medium"]
			}
			baseAmount := g.src.Amount(amounts[0], amounts[1], 2)

			taxType := g.src.WeightedChoice(taxTypeWeights)
			taxRate := taxRates[taxType]
			taxAmount := baseAmount.Mul(decimal.NewFromFloat(taxRate)).Round(2)
			totalAmount := baseAmount.Add(taxAmount)

			status := models.StatusUnpaid
			paidAmount := decimal.Zero
			var paymentDate *time.Time

			if dueDate.Before(g.asOf) {
				if g.src.Float64() < 0.7 {
					status = models.StatusPaid
					paidAmount = totalAmount

					span := daysAgo - 5
					if span < 1 {
						span = 1
					}
					paidOn := invoiceDate.AddDate(0, 0, g.src.IntN(span)+5)
					paymentDate = &paidOn
				} else {
					status = models.StatusOverdue
				}
			} else {
				if g.src.Float64() < 0.2 {
					status = models.StatusPaid
					paidAmount = totalAmount
					paidOn := dueDate.AddDate(0, 0, -g.earlyPaymentDays(termDays))
					paymentDate = &paidOn
				} else if g.src.Float64() < 0.1 {
					status = models.StatusPartial
					paidAmount = totalAmount.
						Mul(decimal.NewFromFloat(0.3 + g.src.Float64()*0.4)).
						Round(2)
					paidOn := dueDate.AddDate(0, 0, -g.earlyPaymentDays(termDays))
					paymentDate = &paidOn
				}
			}

			invoices = append(invoices, models.Invoice{
				InvoiceID:       invoiceID,
				CustomerID:      customer.CustomerID,
				CustomerName:    customer.CustomerName,
				InvoiceDate:     invoiceDate,
				DueDate:         dueDate,
				PaymentDate:     paymentDate,
				InvoiceAmount:   baseAmount,
				TaxAmount:       taxAmount,
				TotalAmount:     totalAmount,
				PaidAmount:      paidAmount,
				BalanceAmount:   totalAmount.Sub(paidAmount),
				PaymentStatus:   status,
				PaymentTerms:    customer.PaymentTerms,
				Currency:        currencyINR,
				SalesRepID:      rep.RepID,
				SalesRepName:    rep.RepName,
				ReferenceNumber: "PO-" + strconv.Itoa(100_000+g.src.IntN(900_000)),
				TaxType:         taxType,
			})

			lineItems = append(lineItems, g.generateLineItems(i, j, invoiceID, baseAmount, taxRate)...)
		}
	}

	return invoices, lineItems
}

// earlyPaymentDays returns how many days before the due date an early or
// partial payment lands: 2 up to termDays-1.
func (g *Generator) earlyPaymentDays(termDays int) int {
	span := termDays - 2
	if span < 1 {
		span = 1
	}
	return g.src.IntN(span) + 2
}

// generateLineItems splits an invoice's base amount across 1-5 lines. Each
// line peels a random 10-70% portion off the unallocated remainder and the
// last line absorbs the exact remainder, clamped non-negative, so the line
// amounts always sum to the base amount.
func (g *Generator) generateLineItems(customerIndex, invoiceIndex int, invoiceID string, baseAmount decimal.Decimal, taxRate float64) []models.InvoiceLineItem {
	count := g.src.IntBetween(1, 5)
	items := make([]models.InvoiceLineItem, 0, count)
	allocated := decimal.Zero
	rate := decimal.NewFromFloat(taxRate)

	for k := 0; k < count; k++ {
		var amount decimal.Decimal
		if k == count-1 {
			amount = baseAmount.Sub(allocated)
			if amount.IsNegative() {
				amount = decimal.Zero
			}
		} else {
			portion := decimal.NewFromFloat(0.1 + g.src.Float64()*0.6)
			amount = baseAmount.Sub(allocated).Mul(portion).Round(2)
			allocated = allocated.Add(amount)
		}

		quantity := g.src.IntBetween(1, 10)
		taxAmount := amount.Mul(rate).Round(2)

		items = append(items, models.InvoiceLineItem{
			LineItemID:         FormatID("ITEM", customerIndex*50+invoiceIndex*5+k+1, 8),
			InvoiceID:          invoiceID,
			ProductCode:        "PROD-" + strconv.Itoa(1000+g.src.IntN(9000)),
			ProductDescription: g.src.Pick(productNames),
			Quantity:           quantity,
			UnitPrice:          amount.Div(decimal.NewFromInt(int64(quantity))).Round(2),
			Amount:             amount,
			TaxRate:            strconv.Itoa(int(math.Round(taxRate*100))) + "%",
			TaxAmount:          taxAmount,
			TotalAmount:        amount.Add(taxAmount),
		})
	}

	return items
}
