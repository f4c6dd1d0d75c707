// Package export turns a generated dataset into its delimited artifacts: one
// CSV file per entity, an optional XLSX workbook, and a manifest describing
// the run.
package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"ardata/internal/gen"
)

const dateLayout = "2006-01-02"

// Table is one serializable record collection: the CSV base name, the header
// row and the data rows in declaration order.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// FileName returns the CSV artifact name for the table.
func (t Table) FileName() string {
	return t.Name + ".csv"
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func fmtMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func fmtPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func fmtBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Tables projects every record collection of the dataset into its table, in
// the order the files are written.
func Tables(ds *gen.Dataset) []Table {
	return []Table{
		customerTable(ds),
		invoiceTable(ds),
		lineItemTable(ds),
		paymentTable(ds),
		glEntryTable(ds),
		orderTable(ds),
		interactionTable(ds),
		collectionCaseTable(ds),
		disputeTable(ds),
		paymentPlanTable(ds),
		riskScoreTable(ds),
		dsoTable(ds),
		collectionPerformanceTable(ds),
		strategyEffectivenessTable(ds),
	}
}

func customerTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "customer_master",
		Header: []string{
			"customer_id", "customer_name", "primary_contact", "email", "phone",
			"address_line1", "city", "state", "postal_code", "country",
			"gst_number", "payment_terms", "credit_limit", "available_credit",
			"industry_sector", "customer_category", "onboarding_date", "status",
		},
	}
	for i := range ds.Customers {
		c := &ds.Customers[i]
		t.Rows = append(t.Rows, []string{
			c.CustomerID, c.CustomerName, c.PrimaryContact, c.Email, c.Phone,
			c.AddressLine1, c.City, c.State, c.PostalCode, c.Country,
			c.GSTNumber, c.PaymentTerms, c.CreditLimit.StringFixed(0),
			fmtMoney(c.AvailableCredit), c.IndustrySector, c.CustomerCategory,
			fmtDate(c.OnboardingDate), c.Status,
		})
	}
	return t
}

func invoiceTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "invoices",
		Header: []string{
			"invoice_id", "customer_id", "customer_name", "invoice_date",
			"due_date", "invoice_amount", "tax_amount", "total_amount",
			"paid_amount", "balance_amount", "payment_status", "payment_date",
			"payment_terms", "currency", "sales_rep_id", "sales_rep_name",
			"reference_number", "tax_type",
		},
	}
	for i := range ds.Invoices {
		inv := &ds.Invoices[i]
		t.Rows = append(t.Rows, []string{
			inv.InvoiceID, inv.CustomerID, inv.CustomerName,
			fmtDate(inv.InvoiceDate), fmtDate(inv.DueDate),
			fmtMoney(inv.InvoiceAmount), fmtMoney(inv.TaxAmount),
			fmtMoney(inv.TotalAmount), fmtMoney(inv.PaidAmount),
			fmtMoney(inv.BalanceAmount), inv.PaymentStatus,
			fmtDatePtr(inv.PaymentDate), inv.PaymentTerms, inv.Currency,
			inv.SalesRepID, inv.SalesRepName, inv.ReferenceNumber, inv.TaxType,
		})
	}
	return t
}

func lineItemTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "invoice_line_items",
		Header: []string{
			"line_item_id", "invoice_id", "product_code", "product_description",
			"quantity", "unit_price", "amount", "tax_rate", "tax_amount",
			"total_amount",
		},
	}
	for i := range ds.LineItems {
		li := &ds.LineItems[i]
		t.Rows = append(t.Rows, []string{
			li.LineItemID, li.InvoiceID, li.ProductCode, li.ProductDescription,
			strconv.Itoa(li.Quantity), fmtMoney(li.UnitPrice), fmtMoney(li.Amount),
			li.TaxRate, fmtMoney(li.TaxAmount), fmtMoney(li.TotalAmount),
		})
	}
	return t
}

func paymentTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "payments",
		Header: []string{
			"payment_id", "invoice_id", "customer_id", "payment_date",
			"payment_amount", "payment_method", "reference_number",
			"bank_account", "status", "notes",
		},
	}
	for i := range ds.Payments {
		p := &ds.Payments[i]
		t.Rows = append(t.Rows, []string{
			p.PaymentID, p.InvoiceID, p.CustomerID, fmtDate(p.PaymentDate),
			fmtMoney(p.PaymentAmount), p.PaymentMethod, p.ReferenceNumber,
			p.BankAccount, p.Status, p.Notes,
		})
	}
	return t
}

func glEntryTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "gl_entries",
		Header: []string{
			"gl_entry_id", "posting_date", "document_type", "document_number",
			"account_code", "account_description", "debit", "credit", "currency",
			"reference", "customer_id",
		},
	}
	for i := range ds.GLEntries {
		e := &ds.GLEntries[i]
		t.Rows = append(t.Rows, []string{
			e.GLEntryID, fmtDate(e.PostingDate), e.DocumentType,
			e.DocumentNumber, e.AccountCode, e.AccountDescription,
			fmtMoney(e.Debit), fmtMoney(e.Credit), e.Currency, e.Reference,
			e.CustomerID,
		})
	}
	return t
}

func orderTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "orders",
		Header: []string{
			"order_id", "customer_id", "invoice_id", "order_date",
			"shipment_date", "order_amount", "tax_amount", "total_amount",
			"status", "sales_rep_id", "currency", "shipping_address",
			"purchase_order_number",
		},
	}
	for i := range ds.Orders {
		o := &ds.Orders[i]
		t.Rows = append(t.Rows, []string{
			o.OrderID, o.CustomerID, o.InvoiceID, fmtDate(o.OrderDate),
			fmtDate(o.ShipmentDate), fmtMoney(o.OrderAmount),
			fmtMoney(o.TaxAmount), fmtMoney(o.TotalAmount), o.Status,
			o.SalesRepID, o.Currency, o.ShippingAddress, o.PurchaseOrderNumber,
		})
	}
	return t
}

func interactionTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "customer_interactions",
		Header: []string{
			"interaction_id", "customer_id", "customer_name", "interaction_date",
			"interaction_type", "purpose", "summary", "initiated_by",
			"handled_by", "rep_id", "related_invoice", "outcome", "notes",
		},
	}
	for i := range ds.Interactions {
		in := &ds.Interactions[i]
		t.Rows = append(t.Rows, []string{
			in.InteractionID, in.CustomerID, in.CustomerName,
			fmtDate(in.InteractionDate), in.InteractionType, in.Purpose,
			in.Summary, in.InitiatedBy, in.HandledBy, in.RepID,
			in.RelatedInvoice, in.Outcome, in.Notes,
		})
	}
	return t
}

func collectionCaseTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "collection_cases",
		Header: []string{
			"case_id", "customer_id", "customer_name", "invoice_id",
			"case_open_date", "amount_due", "days_overdue", "priority", "status",
			"assigned_to", "collector_id", "collection_strategy",
			"last_action_date", "next_action_date", "resolution_date", "notes",
		},
	}
	for i := range ds.CollectionCases {
		c := &ds.CollectionCases[i]
		t.Rows = append(t.Rows, []string{
			c.CaseID, c.CustomerID, c.CustomerName, c.InvoiceID,
			fmtDate(c.CaseOpenDate), fmtMoney(c.AmountDue),
			strconv.Itoa(c.DaysOverdue), c.Priority, c.Status, c.AssignedTo,
			c.CollectorID, c.CollectionStrategy, fmtDate(c.LastActionDate),
			fmtDatePtr(c.NextActionDate), fmtDatePtr(c.ResolutionDate), c.Notes,
		})
	}
	return t
}

func disputeTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "disputes",
		Header: []string{
			"dispute_id", "invoice_id", "customer_id", "customer_name",
			"open_date", "dispute_amount", "dispute_type", "status",
			"assigned_to", "handler_id", "resolution_date", "resolution_notes",
			"description",
		},
	}
	for i := range ds.Disputes {
		d := &ds.Disputes[i]
		t.Rows = append(t.Rows, []string{
			d.DisputeID, d.InvoiceID, d.CustomerID, d.CustomerName,
			fmtDate(d.OpenDate), fmtMoney(d.DisputeAmount), d.DisputeType,
			d.Status, d.AssignedTo, d.HandlerID, fmtDatePtr(d.ResolutionDate),
			d.ResolutionNotes, d.Description,
		})
	}
	return t
}

func paymentPlanTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "payment_plans",
		Header: []string{
			"plan_id", "invoice_id", "customer_id", "customer_name",
			"start_date", "end_date", "original_amount", "installments",
			"installment_amount", "installments_paid", "remaining_balance",
			"status", "created_by", "handler_id", "next_installment_date",
			"last_payment_date",
		},
	}
	for i := range ds.PaymentPlans {
		p := &ds.PaymentPlans[i]
		t.Rows = append(t.Rows, []string{
			p.PlanID, p.InvoiceID, p.CustomerID, p.CustomerName,
			fmtDate(p.StartDate), fmtDate(p.EndDate),
			fmtMoney(p.OriginalAmount), strconv.Itoa(p.Installments),
			fmtMoney(p.InstallmentAmount), strconv.Itoa(p.InstallmentsPaid),
			fmtMoney(p.RemainingBalance), p.Status, p.CreatedBy, p.HandlerID,
			fmtDatePtr(p.NextInstallmentDate), fmtDatePtr(p.LastPaymentDate),
		})
	}
	return t
}

func riskScoreTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "risk_scores",
		Header: []string{
			"customer_id", "customer_name", "risk_score", "risk_category",
			"credit_limit", "outstanding_amount", "credit_utilization",
			"overdue_rate", "avg_days_late", "total_invoices",
			"overdue_invoices", "has_disputes", "has_collection_history",
			"recommended_action", "last_assessment_date",
		},
	}
	for i := range ds.RiskScores {
		r := &ds.RiskScores[i]
		t.Rows = append(t.Rows, []string{
			r.CustomerID, r.CustomerName, strconv.Itoa(r.RiskScore),
			r.RiskCategory, r.CreditLimit.StringFixed(0),
			fmtMoney(r.OutstandingAmount), fmtPercent(r.CreditUtilization),
			fmtPercent(r.OverdueRate),
			strconv.FormatFloat(r.AvgDaysLate, 'f', 1, 64),
			strconv.Itoa(r.TotalInvoices), strconv.Itoa(r.OverdueInvoices),
			fmtBool(r.HasDisputes), fmtBool(r.HasCollectionHistory),
			r.RecommendedAction, fmtDate(r.LastAssessmentDate),
		})
	}
	return t
}

func dsoTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "dso_analytics",
		Header: []string{
			"month", "total_revenue", "total_ar", "dso", "current_ar",
			"ar_1_30_days", "ar_31_60_days", "ar_61_90_days", "ar_over_90_days",
			"cei_percentage", "invoices_count", "paid_invoices",
			"disputed_invoices",
		},
	}
	for i := range ds.DSOAnalytics {
		r := &ds.DSOAnalytics[i]
		t.Rows = append(t.Rows, []string{
			r.Month, fmtMoney(r.TotalRevenue), fmtMoney(r.TotalAR),
			strconv.Itoa(r.DSO), fmtMoney(r.CurrentAR), fmtMoney(r.AR1To30Days),
			fmtMoney(r.AR31To60Days), fmtMoney(r.AR61To90Days),
			fmtMoney(r.AROver90Days), r.CEIPercentage.StringFixed(2),
			strconv.Itoa(r.InvoicesCount), strconv.Itoa(r.PaidInvoices),
			strconv.Itoa(r.DisputedInvoices),
		})
	}
	return t
}

func collectionPerformanceTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "collection_performance",
		Header: []string{
			"collector_id", "collector_name", "total_cases", "resolved_cases",
			"escalated_cases", "resolution_rate", "escalation_rate",
			"amount_assigned", "amount_collected", "avg_resolution_days",
			"cei_percentage", "assessment_date",
		},
	}
	for i := range ds.CollectionPerformance {
		p := &ds.CollectionPerformance[i]
		t.Rows = append(t.Rows, []string{
			p.CollectorID, p.CollectorName, strconv.Itoa(p.TotalCases),
			strconv.Itoa(p.ResolvedCases), strconv.Itoa(p.EscalatedCases),
			fmtPercent(p.ResolutionRate), fmtPercent(p.EscalationRate),
			fmtMoney(p.AmountAssigned), fmtMoney(p.AmountCollected),
			strconv.FormatFloat(p.AvgResolutionDays, 'f', 1, 64),
			fmtPercent(p.CEIPercentage), fmtDate(p.AssessmentDate),
		})
	}
	return t
}

func strategyEffectivenessTable(ds *gen.Dataset) Table {
	t := Table{
		Name: "strategy_effectiveness",
		Header: []string{
			"strategy_name", "total_cases", "resolved_cases", "success_rate",
			"total_amount_assigned", "total_amount_collected", "recovery_rate",
			"avg_resolution_days", "avg_case_amount", "best_for_amount_range",
			"assessment_date",
		},
	}
	for i := range ds.StrategyEffectiveness {
		s := &ds.StrategyEffectiveness[i]
		t.Rows = append(t.Rows, []string{
			s.StrategyName, strconv.Itoa(s.TotalCases),
			strconv.Itoa(s.ResolvedCases), fmtPercent(s.SuccessRate),
			fmtMoney(s.TotalAmountAssigned), fmtMoney(s.TotalAmountCollected),
			fmtPercent(s.RecoveryRate),
			strconv.FormatFloat(s.AvgResolutionDays, 'f', 1, 64),
			fmtMoney(s.AvgCaseAmount), s.BestForAmountRange,
			fmtDate(s.AssessmentDate),
		})
	}
	return t
}
