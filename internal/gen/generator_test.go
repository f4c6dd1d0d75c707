package gen

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ardata/pkg/models"
)

func testDataset(t *testing.T, customers int) *Dataset {
	t.Helper()
	return New(Config{Seed: 42, Customers: customers}).Generate()
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := New(Config{Seed: 42, Customers: 50}).Generate()
	b := New(Config{Seed: 42, Customers: 50}).Generate()

	assert.Equal(t, a, b)

	c := New(Config{Seed: 43, Customers: 50}).Generate()
	assert.NotEqual(t, a.Invoices, c.Invoices)
}

func TestGenerateCounts(t *testing.T) {
	ds := testDataset(t, 80)

	assert.Len(t, ds.Customers, 80)
	assert.Len(t, ds.SalesReps, DefaultSalesRepCount)
	assert.GreaterOrEqual(t, len(ds.Invoices), 80*3)
	assert.LessOrEqual(t, len(ds.Invoices), 80*8)

	perInvoice := make(map[string]int)
	for _, li := range ds.LineItems {
		perInvoice[li.InvoiceID]++
	}
	require.Len(t, perInvoice, len(ds.Invoices))
	for id, n := range perInvoice {
		assert.GreaterOrEqual(t, n, 1, id)
		assert.LessOrEqual(t, n, 5, id)
	}
}

func TestGenerateCustomers(t *testing.T) {
	ds := testDataset(t, 100)

	categories := map[string]bool{"Small": true, "Medium": true, "Large": true, "Enterprise": true}
	for _, c := range ds.Customers {
		assert.False(t, c.AvailableCredit.GreaterThan(c.CreditLimit), c.CustomerID)
		assert.True(t, categories[c.CustomerCategory], c.CustomerCategory)
		assert.Contains(t, []string{"Active", "Inactive"}, c.Status)
		assert.Contains(t, c.Email, "@")
		assert.Equal(t, strings.ToLower(c.Email), c.Email)
		assert.True(t, strings.HasSuffix(c.GSTNumber, "1ZZ"), c.GSTNumber)
		assert.False(t, c.OnboardingDate.Before(onboardingWindowStart))
		assert.False(t, c.OnboardingDate.After(onboardingWindowEnd))
	}
}

func TestGenerateInvoiceAmountIdentities(t *testing.T) {
	ds := testDataset(t, 100)
	asOf := New(Config{Seed: 42}).AsOf()

	categoryByID := make(map[string]string)
	for _, c := range ds.Customers {
		categoryByID[c.CustomerID] = c.CustomerCategory
	}

	for _, inv := range ds.Invoices {
		assert.True(t, inv.InvoiceAmount.Add(inv.TaxAmount).Equal(inv.TotalAmount), inv.InvoiceID)
		assert.True(t, inv.TotalAmount.Sub(inv.PaidAmount).Equal(inv.BalanceAmount), inv.InvoiceID)
		assert.Equal(t, inv.InvoiceDate.AddDate(0, 0, termDaysFor(inv.PaymentTerms)), inv.DueDate, inv.InvoiceID)

		switch inv.PaymentStatus {
		case models.StatusPaid:
			assert.True(t, inv.PaidAmount.Equal(inv.TotalAmount), inv.InvoiceID)
			require.NotNil(t, inv.PaymentDate, inv.InvoiceID)
		case models.StatusPartial:
			assert.True(t, inv.PaidAmount.IsPositive(), inv.InvoiceID)
			assert.True(t, inv.PaidAmount.LessThan(inv.TotalAmount), inv.InvoiceID)
			require.NotNil(t, inv.PaymentDate, inv.InvoiceID)
		case models.StatusUnpaid, models.StatusOverdue:
			assert.True(t, inv.PaidAmount.IsZero(), inv.InvoiceID)
			assert.Nil(t, inv.PaymentDate, inv.InvoiceID)
		default:
			t.Fatalf("unexpected payment status %q", inv.PaymentStatus)
		}

		if inv.PaymentStatus == models.StatusOverdue {
			assert.True(t, inv.DueDate.Before(asOf), inv.InvoiceID)
		}

		if categoryByID[inv.CustomerID] == "Enterprise" {
			f, _ := inv.InvoiceAmount.Float64()
			assert.GreaterOrEqual(t, f, 500_000.0, inv.InvoiceID)
			assert.Less(t, f, 5_000_000.0, inv.InvoiceID)
		}
	}
}

func TestGenerateLineItemsSumToInvoiceAmount(t *testing.T) {
	ds := testDataset(t, 100)

	baseByInvoice := make(map[string]decimal.Decimal)
	for _, inv := range ds.Invoices {
		baseByInvoice[inv.InvoiceID] = inv.InvoiceAmount
	}

	sums := make(map[string]decimal.Decimal)
	for _, li := range ds.LineItems {
		sums[li.InvoiceID] = sums[li.InvoiceID].Add(li.Amount)
		assert.True(t, li.Amount.Add(li.TaxAmount).Equal(li.TotalAmount), li.LineItemID)
		assert.True(t, strings.HasSuffix(li.TaxRate, "%"), li.TaxRate)
		assert.GreaterOrEqual(t, li.Quantity, 1)
	}
	for id, sum := range sums {
		assert.True(t, sum.Equal(baseByInvoice[id]), "line items of %s sum to %s, want %s", id, sum, baseByInvoice[id])
	}
}

func TestGeneratePayments(t *testing.T) {
	ds := testDataset(t, 100)

	paidByInvoice := make(map[string]decimal.Decimal)
	settled := 0
	for _, inv := range ds.Invoices {
		paidByInvoice[inv.InvoiceID] = inv.PaidAmount
		if inv.PaymentStatus == models.StatusPaid || inv.PaymentStatus == models.StatusPartial {
			settled++
		}
	}

	require.Len(t, ds.Payments, settled)
	for _, p := range ds.Payments {
		want, ok := paidByInvoice[p.InvoiceID]
		require.True(t, ok, p.PaymentID)
		assert.True(t, p.PaymentAmount.Equal(want), p.PaymentID)
		assert.Equal(t, "Processed", p.Status)
		if p.PaymentMethod == "Bank Transfer" || p.PaymentMethod == "NEFT" || p.PaymentMethod == "RTGS" {
			assert.NotEmpty(t, p.BankAccount, p.PaymentID)
		} else {
			assert.Empty(t, p.BankAccount, p.PaymentID)
		}
	}
}

func TestGenerateGLEntriesBalance(t *testing.T) {
	ds := testDataset(t, 100)

	type side struct{ debit, credit decimal.Decimal }
	byDocument := make(map[string]side)
	for _, e := range ds.GLEntries {
		assert.NotEqual(t, e.Debit.IsZero(), e.Credit.IsZero(), e.GLEntryID)
		s := byDocument[e.DocumentNumber]
		s.debit = s.debit.Add(e.Debit)
		s.credit = s.credit.Add(e.Credit)
		byDocument[e.DocumentNumber] = s
	}
	for document, s := range byDocument {
		assert.True(t, s.debit.Equal(s.credit), "document %s: debit %s, credit %s", document, s.debit, s.credit)
	}

	// Every invoice posts three lines, settled invoices two more.
	settled := 0
	for _, inv := range ds.Invoices {
		if inv.PaymentStatus == models.StatusPaid || inv.PaymentStatus == models.StatusPartial {
			settled++
		}
	}
	assert.Len(t, ds.GLEntries, len(ds.Invoices)*3+settled*2)
}

func TestGenerateOrdersPrecedeInvoices(t *testing.T) {
	ds := testDataset(t, 100)
	require.Len(t, ds.Orders, len(ds.Invoices))

	invoiceDates := make(map[string]models.Invoice)
	for _, inv := range ds.Invoices {
		invoiceDates[inv.InvoiceID] = inv
	}
	for _, o := range ds.Orders {
		inv := invoiceDates[o.InvoiceID]
		assert.True(t, o.OrderDate.Before(o.ShipmentDate), o.OrderID)
		assert.True(t, o.ShipmentDate.Before(inv.InvoiceDate), o.OrderID)
		assert.True(t, o.TotalAmount.Equal(inv.TotalAmount), o.OrderID)
	}
}

func TestGenerateCollectionCases(t *testing.T) {
	ds := testDataset(t, 200)
	require.NotEmpty(t, ds.CollectionCases)

	statusByInvoice := make(map[string]string)
	for _, inv := range ds.Invoices {
		statusByInvoice[inv.InvoiceID] = inv.PaymentStatus
	}

	for _, c := range ds.CollectionCases {
		assert.Equal(t, models.StatusOverdue, statusByInvoice[c.InvoiceID], c.CaseID)
		assert.GreaterOrEqual(t, c.DaysOverdue, 5, c.CaseID)
		assert.Equal(t, casePriority(c.AmountDue, c.DaysOverdue), c.Priority, c.CaseID)

		if c.Status == caseStatusResolved {
			require.NotNil(t, c.ResolutionDate, c.CaseID)
			assert.False(t, c.ResolutionDate.Before(c.CaseOpenDate), c.CaseID)
			assert.Nil(t, c.NextActionDate, c.CaseID)
		} else {
			assert.Nil(t, c.ResolutionDate, c.CaseID)
			require.NotNil(t, c.NextActionDate, c.CaseID)
		}
		assert.False(t, c.LastActionDate.Before(c.CaseOpenDate), c.CaseID)
	}
}

func TestGenerateDisputes(t *testing.T) {
	ds := testDataset(t, 200)
	require.NotEmpty(t, ds.Disputes)

	totalByInvoice := make(map[string]decimal.Decimal)
	for _, inv := range ds.Invoices {
		totalByInvoice[inv.InvoiceID] = inv.TotalAmount
	}

	for _, d := range ds.Disputes {
		resolved := strings.HasPrefix(d.Status, "Resolved")
		if resolved {
			require.NotNil(t, d.ResolutionDate, d.DisputeID)
			assert.False(t, d.ResolutionDate.Before(d.OpenDate), d.DisputeID)
			assert.NotEmpty(t, d.ResolutionNotes, d.DisputeID)
		} else {
			assert.Nil(t, d.ResolutionDate, d.DisputeID)
			assert.Empty(t, d.ResolutionNotes, d.DisputeID)
		}
		assert.False(t, d.DisputeAmount.GreaterThan(totalByInvoice[d.InvoiceID]), d.DisputeID)
		assert.Contains(t, d.Description, d.InvoiceID)
	}
}

func TestGeneratePaymentPlans(t *testing.T) {
	ds := testDataset(t, 200)
	require.NotEmpty(t, ds.PaymentPlans)

	for _, p := range ds.PaymentPlans {
		assert.GreaterOrEqual(t, p.InstallmentsPaid, 0, p.PlanID)
		assert.LessOrEqual(t, p.InstallmentsPaid, p.Installments, p.PlanID)
		assert.Equal(t, p.StartDate.AddDate(0, p.Installments, 0), p.EndDate, p.PlanID)

		wantRemaining := p.OriginalAmount.Sub(p.InstallmentAmount.Mul(decimal.NewFromInt(int64(p.InstallmentsPaid))))
		assert.True(t, p.RemainingBalance.Equal(wantRemaining), p.PlanID)

		switch p.Status {
		case "Active":
			assert.NotNil(t, p.NextInstallmentDate, p.PlanID)
			assert.Less(t, p.InstallmentsPaid, p.Installments, p.PlanID)
		case "Completed":
			assert.Equal(t, p.Installments, p.InstallmentsPaid, p.PlanID)
		case "Defaulted", "Canceled":
		default:
			t.Fatalf("unexpected plan status %q", p.Status)
		}
		if p.InstallmentsPaid > 0 {
			assert.NotNil(t, p.LastPaymentDate, p.PlanID)
		} else {
			assert.Nil(t, p.LastPaymentDate, p.PlanID)
		}
	}
}

func TestGenerateRiskScores(t *testing.T) {
	ds := testDataset(t, 100)
	require.Len(t, ds.RiskScores, 100)

	for _, r := range ds.RiskScores {
		assert.GreaterOrEqual(t, r.RiskScore, 0, r.CustomerID)
		assert.LessOrEqual(t, r.RiskScore, 100, r.CustomerID)

		switch {
		case r.RiskScore >= 75:
			assert.Equal(t, "High Risk", r.RiskCategory, r.CustomerID)
		case r.RiskScore >= 50:
			assert.Equal(t, "Medium Risk", r.RiskCategory, r.CustomerID)
		case r.RiskScore >= 25:
			assert.Equal(t, "Low Risk", r.RiskCategory, r.CustomerID)
		default:
			assert.Equal(t, "Minimal Risk", r.RiskCategory, r.CustomerID)
		}

		assert.GreaterOrEqual(t, r.TotalInvoices, r.OverdueInvoices, r.CustomerID)
		assert.NotEmpty(t, r.RecommendedAction, r.CustomerID)
	}
}

func TestGenerateDSOAnalytics(t *testing.T) {
	ds := testDataset(t, 100)
	require.Len(t, ds.DSOAnalytics, dsoWindowMonths)

	asOf := New(Config{Seed: 42}).AsOf()
	assert.Equal(t, asOf.Format("2006-01"), ds.DSOAnalytics[len(ds.DSOAnalytics)-1].Month)

	for i, r := range ds.DSOAnalytics {
		if i > 0 {
			assert.Greater(t, r.Month, ds.DSOAnalytics[i-1].Month, "months ascend")
		}
		bucketSum := r.CurrentAR.
			Add(r.AR1To30Days).
			Add(r.AR31To60Days).
			Add(r.AR61To90Days).
			Add(r.AROver90Days)
		assert.True(t, bucketSum.Equal(r.TotalAR), "month %s: buckets %s, total %s", r.Month, bucketSum, r.TotalAR)
		assert.GreaterOrEqual(t, r.InvoicesCount, r.PaidInvoices, r.Month)
	}
}

func TestGenerateCollectionPerformance(t *testing.T) {
	ds := testDataset(t, 200)
	require.NotEmpty(t, ds.CollectionPerformance)

	totalCases := 0
	for _, p := range ds.CollectionPerformance {
		totalCases += p.TotalCases
		assert.GreaterOrEqual(t, p.TotalCases, p.ResolvedCases, p.CollectorID)
		assert.False(t, p.ResolutionRate.LessThan(decimal.Zero), p.CollectorID)
		assert.False(t, p.ResolutionRate.GreaterThan(decimal.NewFromInt(100)), p.CollectorID)
		assert.False(t, p.AmountCollected.GreaterThan(p.AmountAssigned), p.CollectorID)
	}
	assert.Equal(t, len(ds.CollectionCases), totalCases)
}

func TestGenerateStrategyEffectiveness(t *testing.T) {
	ds := testDataset(t, 200)
	require.NotEmpty(t, ds.StrategyEffectiveness)
	assert.LessOrEqual(t, len(ds.StrategyEffectiveness), len(strategyNames))

	totalCases := 0
	for _, s := range ds.StrategyEffectiveness {
		totalCases += s.TotalCases
		assert.False(t, s.SuccessRate.LessThan(decimal.Zero), s.StrategyName)
		assert.False(t, s.SuccessRate.GreaterThan(decimal.NewFromInt(100)), s.StrategyName)
		assert.NotEmpty(t, s.BestForAmountRange, s.StrategyName)
	}
	assert.Equal(t, len(ds.CollectionCases), totalCases)
}
