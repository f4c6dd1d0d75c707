package gen

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"ardata/pkg/models"
)

var paymentMethods = []string{
	"Bank Transfer", "Check", "Credit Card", "UPI", "NEFT", "RTGS", "Cash",
	"Digital Wallet",
}

var glAccounts = map[string]struct{ Code, Description string }{
	"AR":      {"120000", "Accounts Receivable"},
	"Revenue": {"400000", "Sales Revenue"},
	"Tax":     {"220000", "Sales Tax Payable"},
	"Bank":    {"110000", "Bank Account"},
}

var orderStatuses = []string{"Delivered", "In Transit", "Processing", "Completed", "Canceled"}

// invoiceSeq extracts the numeric suffix of an invoice ID. Payment, order and
// GL identifiers reuse it so correlated records are traceable by number.
func invoiceSeq(invoiceID string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(invoiceID, "INV"))
	return n
}

// generatePayments emits one payment per paid or partially paid invoice, with
// the payment amount equal to the invoice's paid amount.
func (g *Generator) generatePayments(invoices []models.Invoice) []models.Payment {
	var payments []models.Payment

	for i := range invoices {
		inv := &invoices[i]
		if inv.PaymentStatus != models.StatusPaid && inv.PaymentStatus != models.StatusPartial {
			continue
		}

		method := g.src.Pick(paymentMethods)

		reference := "REF-" + strconv.Itoa(100_000+g.src.IntN(900_000))
		if method == "Check" {
			reference = "CHK-" + strconv.Itoa(10_000+g.src.IntN(90_000))
		}

		bankAccount := ""
		if strings.Contains(method, "Bank") || method == "NEFT" || method == "RTGS" {
			bankAccount = "BANK-" + strconv.Itoa(1000+g.src.IntN(9000))
		}

		payments = append(payments, models.Payment{
			PaymentID:       FormatID("PAY", invoiceSeq(inv.InvoiceID), 7),
			InvoiceID:       inv.InvoiceID,
			CustomerID:      inv.CustomerID,
			PaymentDate:     *inv.PaymentDate,
			PaymentAmount:   inv.PaidAmount,
			PaymentMethod:   method,
			ReferenceNumber: reference,
			BankAccount:     bankAccount,
			Status:          "Processed",
		})
	}

	return payments
}

// generateGLEntries posts a balanced three-line set (AR debit, revenue credit,
// tax credit) for every invoice and a balanced two-line set (bank debit, AR
// credit) for every payment. Debit and credit totals match per document.
func (g *Generator) generateGLEntries(invoices []models.Invoice) []models.GLEntry {
	entries := make([]models.GLEntry, 0, len(invoices)*3)

	for i := range invoices {
		inv := &invoices[i]
		seq := invoiceSeq(inv.InvoiceID)
		glID := FormatID("GL", seq, 8)

		entries = append(entries,
			models.GLEntry{
				GLEntryID:          glID + "-1",
				PostingDate:        inv.InvoiceDate,
				DocumentType:       models.DocTypeInvoice,
				DocumentNumber:     inv.InvoiceID,
				AccountCode:        glAccounts["AR"].Code,
				AccountDescription: glAccounts["AR"].Description,
				Debit:              inv.TotalAmount,
				Credit:             decimal.Zero,
				Currency:           currencyINR,
				Reference:          inv.ReferenceNumber,
				CustomerID:         inv.CustomerID,
			},
			models.GLEntry{
				GLEntryID:          glID + "-2",
				PostingDate:        inv.InvoiceDate,
				DocumentType:       models.DocTypeInvoice,
				DocumentNumber:     inv.InvoiceID,
				AccountCode:        glAccounts["Revenue"].Code,
				AccountDescription: glAccounts["Revenue"].Description,
				Debit:              decimal.Zero,
				Credit:             inv.InvoiceAmount,
				Currency:           currencyINR,
				Reference:          inv.ReferenceNumber,
				CustomerID:         inv.CustomerID,
			},
			models.GLEntry{
				GLEntryID:          glID + "-3",
				PostingDate:        inv.InvoiceDate,
				DocumentType:       models.DocTypeInvoice,
				DocumentNumber:     inv.InvoiceID,
				AccountCode:        glAccounts["Tax"].Code,
				AccountDescription: glAccounts["Tax"].Description,
				Debit:              decimal.Zero,
				Credit:             inv.TaxAmount,
				Currency:           currencyINR,
				Reference:          inv.ReferenceNumber,
				CustomerID:         inv.CustomerID,
			},
		)

		if inv.PaymentStatus != models.StatusPaid && inv.PaymentStatus != models.StatusPartial {
			continue
		}

		paymentGLID := FormatID("GL", seq+10_000, 8)
		paymentID := FormatID("PAY", seq, 7)
		reference := "Payment for " + inv.InvoiceID

		entries = append(entries,
			models.GLEntry{
				GLEntryID:          paymentGLID + "-1",
				PostingDate:        *inv.PaymentDate,
				DocumentType:       models.DocTypePayment,
				DocumentNumber:     paymentID,
				AccountCode:        glAccounts["Bank"].Code,
				AccountDescription: glAccounts["Bank"].Description,
				Debit:              inv.PaidAmount,
				Credit:             decimal.Zero,
				Currency:           currencyINR,
				Reference:          reference,
				CustomerID:         inv.CustomerID,
			},
			models.GLEntry{
				GLEntryID:          paymentGLID + "-2",
				PostingDate:        *inv.PaymentDate,
				DocumentType:       models.DocTypePayment,
				DocumentNumber:     paymentID,
				AccountCode:        glAccounts["AR"].Code,
				AccountDescription: glAccounts["AR"].Description,
				Debit:              decimal.Zero,
				Credit:             inv.PaidAmount,
				Currency:           currencyINR,
				Reference:          reference,
				CustomerID:         inv.CustomerID,
			},
		)
	}

	return entries
}

// generateOrders links one sales order to every invoice. Order date precedes
// shipment date precedes invoice date by construction; recent orders may still
// be in progress, older ones are completed.
func (g *Generator) generateOrders(invoices []models.Invoice, customersByID map[string]*models.Customer) []models.Order {
	orders := make([]models.Order, 0, len(invoices))
	cutoff := g.asOf.AddDate(0, 0, -orderInProgressDays)

	for i := range invoices {
		inv := &invoices[i]

		daysBeforeInvoice := g.src.IntBetween(3, 16)
		orderDate := inv.InvoiceDate.AddDate(0, 0, -daysBeforeInvoice)
		shipmentDate := orderDate.AddDate(0, 0, g.src.IntBetween(1, daysBeforeInvoice-1))

		status := "Completed"
		if inv.InvoiceDate.After(cutoff) {
			status = orderStatuses[g.src.IntN(3)]
		}

		shippingAddress := ""
		if customer, ok := customersByID[inv.CustomerID]; ok {
			shippingAddress = customer.AddressLine1 + ", " + customer.City
		}

		orders = append(orders, models.Order{
			OrderID:             FormatID("ORD", invoiceSeq(inv.InvoiceID), 7),
			CustomerID:          inv.CustomerID,
			InvoiceID:           inv.InvoiceID,
			OrderDate:           orderDate,
			ShipmentDate:        shipmentDate,
			OrderAmount:         inv.InvoiceAmount,
			TaxAmount:           inv.TaxAmount,
			TotalAmount:         inv.TotalAmount,
			Status:              status,
			SalesRepID:          inv.SalesRepID,
			Currency:            currencyINR,
			ShippingAddress:     shippingAddress,
			PurchaseOrderNumber: inv.ReferenceNumber,
		})
	}

	return orders
}
