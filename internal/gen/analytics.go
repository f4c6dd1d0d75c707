package gen

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"ardata/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// generateRiskScores grades every customer with at least one invoice: a base
// of 20 plus weighted overdue rate, credit utilization, average lateness and
// dispute/collection-history flags, clamped to [0, 100].
func (g *Generator) generateRiskScores(customers []models.Customer, invoicesByCustomer map[string][]*models.Invoice, disputes []models.Dispute, cases []models.CollectionCase) []models.RiskScore {
	disputedCustomers := make(map[string]bool)
	for i := range disputes {
		disputedCustomers[disputes[i].CustomerID] = true
	}
	resolvedCaseCustomers := make(map[string]bool)
	for i := range cases {
		if cases[i].Status == caseStatusResolved {
			resolvedCaseCustomers[cases[i].CustomerID] = true
		}
	}

	var scores []models.RiskScore
	assessmentDate := g.asOf.AddDate(0, 0, -3)

	for i := range customers {
		customer := &customers[i]
		customerInvoices := invoicesByCustomer[customer.CustomerID]
		totalInvoices := len(customerInvoices)
		if totalInvoices == 0 {
			continue
		}

		overdueCount := 0
		outstanding := decimal.Zero
		totalDaysLate := 0
		paidCount := 0
		for _, inv := range customerInvoices {
			outstanding = outstanding.Add(inv.BalanceAmount)
			if inv.PaymentStatus == models.StatusOverdue {
				overdueCount++
			}
			if inv.PaymentStatus == models.StatusPaid {
				paidCount++
				if inv.PaymentDate != nil {
					if late := daysBetween(inv.DueDate, *inv.PaymentDate); late > 0 {
						totalDaysLate += late
					}
				}
			}
		}

		overdueRate := float64(overdueCount) / float64(totalInvoices)
		utilization := outstanding.Div(customer.CreditLimit).InexactFloat64()
		avgDaysLate := 0.0
		if paidCount > 0 {
			avgDaysLate = float64(totalDaysLate) / float64(paidCount)
		}

		hasDisputes := disputedCustomers[customer.CustomerID]
		hasHistory := resolvedCaseCustomers[customer.CustomerID]

		score := 20.0
		score += overdueRate * 25
		score += math.Min(utilization*20, 20)
		score += math.Min(avgDaysLate*0.5, 15)
		if hasDisputes {
			score += 10
		}
		if hasHistory {
			score += 10
		}

		riskScore := int(math.Round(score))
		if riskScore > 100 {
			riskScore = 100
		}

		var category, action string
		switch {
		case riskScore >= 75:
			category, action = "High Risk", "Credit Hold / Advance Payment"
		case riskScore >= 50:
			category, action = "Medium Risk", "Reduce Credit Limit / Weekly Monitoring"
		case riskScore >= 25:
			category, action = "Low Risk", "Monthly Review / Standard Terms"
		default:
			category, action = "Minimal Risk", "Standard Terms / Potential Credit Increase"
		}

		scores = append(scores, models.RiskScore{
			CustomerID:           customer.CustomerID,
			CustomerName:         customer.CustomerName,
			RiskScore:            riskScore,
			RiskCategory:         category,
			CreditLimit:          customer.CreditLimit,
			OutstandingAmount:    outstanding,
			CreditUtilization:    decimal.NewFromFloat(utilization * 100).Round(2),
			OverdueRate:          decimal.NewFromFloat(overdueRate * 100).Round(2),
			AvgDaysLate:          avgDaysLate,
			TotalInvoices:        totalInvoices,
			OverdueInvoices:      overdueCount,
			HasDisputes:          hasDisputes,
			HasCollectionHistory: hasHistory,
			RecommendedAction:    action,
			LastAssessmentDate:   assessmentDate,
		})
	}

	return scores
}

// generateDSOAnalytics computes the month-end receivables snapshot for each of
// the seven calendar months ending with the reference month: revenue, open AR,
// DSO, aging buckets and the collection effectiveness index.
func (g *Generator) generateDSOAnalytics(invoices []models.Invoice) []models.DSORecord {
	records := make([]models.DSORecord, 0, dsoWindowMonths)
	refMonthStart := time.Date(g.asOf.Year(), g.asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	for k := dsoWindowMonths - 1; k >= 0; k-- {
		monthStart := refMonthStart.AddDate(0, -k, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		totalRevenue := decimal.Zero
		monthlyCredit := decimal.Zero
		invoicesCount := 0
		paidCount := 0

		totalAR := decimal.Zero
		startAR := decimal.Zero
		var aging [5]decimal.Decimal

		for i := range invoices {
			inv := &invoices[i]

			inMonth := !inv.InvoiceDate.Before(monthStart) && !inv.InvoiceDate.After(monthEnd)
			if inMonth {
				totalRevenue = totalRevenue.Add(inv.InvoiceAmount)
				monthlyCredit = monthlyCredit.Add(inv.TotalAmount)
				invoicesCount++
				if inv.PaymentStatus == models.StatusPaid {
					paidCount++
				}
			}

			paid := inv.PaymentStatus == models.StatusPaid

			// Open at month end: created by then and not fully settled by then.
			if !inv.InvoiceDate.After(monthEnd) &&
				(!paid || (inv.PaymentDate != nil && inv.PaymentDate.After(monthEnd))) {
				totalAR = totalAR.Add(inv.BalanceAmount)

				daysOverdue := daysBetween(inv.DueDate, monthEnd)
				switch {
				case daysOverdue <= 0:
					aging[0] = aging[0].Add(inv.BalanceAmount)
				case daysOverdue <= 30:
					aging[1] = aging[1].Add(inv.BalanceAmount)
				case daysOverdue <= 60:
					aging[2] = aging[2].Add(inv.BalanceAmount)
				case daysOverdue <= 90:
					aging[3] = aging[3].Add(inv.BalanceAmount)
				default:
					aging[4] = aging[4].Add(inv.BalanceAmount)
				}
			}

			// Open at month start, for the CEI baseline.
			if inv.InvoiceDate.Before(monthStart) &&
				(!paid || (inv.PaymentDate != nil && !inv.PaymentDate.Before(monthStart))) {
				startAR = startAR.Add(inv.BalanceAmount)
			}
		}

		dso := 0
		if avgDailySales := totalRevenue.InexactFloat64() / float64(monthEnd.Day()); avgDailySales > 0 {
			dso = int(math.Round(totalAR.InexactFloat64() / avgDailySales))
		}

		cei := decimal.Zero
		if denom := startAR.Add(monthlyCredit); denom.IsPositive() {
			cei = denom.Sub(totalAR).Div(denom).Mul(hundred).Round(2)
		}

		records = append(records, models.DSORecord{
			Month:         monthStart.Format("2006-01"),
			TotalRevenue:  totalRevenue,
			TotalAR:       totalAR,
			DSO:           dso,
			CurrentAR:     aging[0],
			AR1To30Days:   aging[1],
			AR31To60Days:  aging[2],
			AR61To90Days:  aging[3],
			AROver90Days:  aging[4],
			CEIPercentage: cei,
			InvoicesCount: invoicesCount,
			PaidInvoices:  paidCount,
		})
	}

	return records
}

type collectorAgg struct {
	name              string
	totalCases        int
	resolvedCases     int
	escalatedCases    int
	amountAssigned    decimal.Decimal
	amountCollected   decimal.Decimal
	avgResolutionDays float64
}

// generateCollectionPerformance groups cases per collector. The resolution-day
// average is a running mean updated per resolved case, matching the per-record
// accumulation of the aggregates.
func (g *Generator) generateCollectionPerformance(cases []models.CollectionCase) []models.CollectorPerformance {
	groups := make(map[string]*collectorAgg)
	var order []string

	for i := range cases {
		c := &cases[i]
		agg, ok := groups[c.CollectorID]
		if !ok {
			agg = &collectorAgg{
				name:            c.AssignedTo,
				amountAssigned:  decimal.Zero,
				amountCollected: decimal.Zero,
			}
			groups[c.CollectorID] = agg
			order = append(order, c.CollectorID)
		}

		agg.totalCases++
		agg.amountAssigned = agg.amountAssigned.Add(c.AmountDue)

		if c.Status == caseStatusResolved {
			agg.resolvedCases++
			agg.amountCollected = agg.amountCollected.Add(c.AmountDue)
			if c.ResolutionDate != nil {
				days := float64(daysBetween(c.CaseOpenDate, *c.ResolutionDate))
				agg.avgResolutionDays = (agg.avgResolutionDays*float64(agg.resolvedCases-1) + days) / float64(agg.resolvedCases)
			}
		}
		if c.Status == "Escalated" {
			agg.escalatedCases++
		}
	}

	assessmentDate := g.asOf.AddDate(0, 0, -1)
	performance := make([]models.CollectorPerformance, 0, len(order))

	for _, collectorID := range order {
		agg := groups[collectorID]

		cei := decimal.Zero
		if agg.amountAssigned.IsPositive() {
			cei = agg.amountCollected.Div(agg.amountAssigned).Mul(hundred).Round(2)
		}

		performance = append(performance, models.CollectorPerformance{
			CollectorID:       collectorID,
			CollectorName:     agg.name,
			TotalCases:        agg.totalCases,
			ResolvedCases:     agg.resolvedCases,
			EscalatedCases:    agg.escalatedCases,
			ResolutionRate:    ratePercent(agg.resolvedCases, agg.totalCases),
			EscalationRate:    ratePercent(agg.escalatedCases, agg.totalCases),
			AmountAssigned:    agg.amountAssigned,
			AmountCollected:   agg.amountCollected,
			AvgResolutionDays: agg.avgResolutionDays,
			CEIPercentage:     cei,
			AssessmentDate:    assessmentDate,
		})
	}

	return performance
}

var strategyNames = []string{
	"Standard Follow-up", "Intensive Collection", "Legal Action Warning",
	"Payment Plan", "Settlement Offer",
}

// generateStrategyEffectiveness aggregates cases per collection strategy and
// reports success, recovery and resolution-time ratios.
func (g *Generator) generateStrategyEffectiveness(cases []models.CollectionCase) []models.StrategyEffectiveness {
	assessmentDate := g.asOf.AddDate(0, 0, -1)
	var results []models.StrategyEffectiveness

	for _, strategy := range strategyNames {
		totalCases := 0
		resolvedCases := 0
		assigned := decimal.Zero
		collected := decimal.Zero
		totalResolutionDays := 0
		resolvedWithDates := 0
		priorityCounts := make(map[string]int)

		for i := range cases {
			c := &cases[i]
			if c.CollectionStrategy != strategy {
				continue
			}
			totalCases++
			assigned = assigned.Add(c.AmountDue)
			priorityCounts[c.Priority]++

			if c.Status == caseStatusResolved {
				resolvedCases++
				collected = collected.Add(c.AmountDue)
				if c.ResolutionDate != nil {
					totalResolutionDays += daysBetween(c.CaseOpenDate, *c.ResolutionDate)
					resolvedWithDates++
				}
			}
		}

		if totalCases == 0 {
			continue
		}

		avgResolutionDays := 0.0
		if resolvedWithDates > 0 {
			avgResolutionDays = float64(totalResolutionDays) / float64(resolvedWithDates)
		}

		recoveryRate := decimal.Zero
		if assigned.IsPositive() {
			recoveryRate = collected.Div(assigned).Mul(hundred).Round(2)
		}

		results = append(results, models.StrategyEffectiveness{
			StrategyName:         strategy,
			TotalCases:           totalCases,
			ResolvedCases:        resolvedCases,
			SuccessRate:          ratePercent(resolvedCases, totalCases),
			TotalAmountAssigned:  assigned,
			TotalAmountCollected: collected,
			RecoveryRate:         recoveryRate,
			AvgResolutionDays:    avgResolutionDays,
			AvgCaseAmount:        assigned.Div(decimal.NewFromInt(int64(totalCases))).Round(2),
			BestForAmountRange:   bestAmountRange(strategy, priorityCounts, totalCases),
			AssessmentDate:       assessmentDate,
		})
	}

	return results
}

// bestAmountRange labels the balance band a strategy works best for, based on
// the priority mix of its cases.
func bestAmountRange(strategy string, priorityCounts map[string]int, totalCases int) string {
	share := func(priorities ...string) float64 {
		n := 0
		for _, p := range priorities {
			n += priorityCounts[p]
		}
		return float64(n) / float64(totalCases)
	}

	switch strategy {
	case "Standard Follow-up":
		if share("Low") > 0.5 {
			return "Low"
		}
		return "Medium"
	case "Intensive Collection":
		if share("Medium") > 0.5 {
			return "Medium"
		}
		return "High"
	case "Legal Action Warning":
		if share("High", "Critical") > 0.7 {
			return "High"
		}
		return "Critical"
	case "Payment Plan":
		return "Medium-High"
	case "Settlement Offer":
		return "High"
	default:
		return "Medium"
	}
}

func ratePercent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(float64(part) / float64(whole) * 100).Round(2)
}
