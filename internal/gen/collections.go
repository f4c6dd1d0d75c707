package gen

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"ardata/pkg/models"
)

const caseStatusResolved = "Resolved"

var (
	amountTierCritical = decimal.NewFromInt(1_000_000)
	amountTierHigh     = decimal.NewFromInt(500_000)
	amountTierMedium   = decimal.NewFromInt(100_000)
)

var disputeTypes = []string{
	"Price Discrepancy", "Quantity Discrepancy", "Quality Issue",
	"Service Not Rendered", "Duplicate Billing", "Wrong Item", "Delivery Delay",
	"Contract Terms",
}

// casePriority tiers by balance amount OR days overdue, whichever lands the
// higher tier.
func casePriority(amount decimal.Decimal, daysOverdue int) string {
	switch {
	case amount.GreaterThan(amountTierCritical) || daysOverdue > 90:
		return "Critical"
	case amount.GreaterThan(amountTierHigh) || daysOverdue > 60:
		return "High"
	case amount.GreaterThan(amountTierMedium) || daysOverdue > 30:
		return "Medium"
	default:
		return "Low"
	}
}

// generateCollectionCases opens a case for every invoice overdue by at least
// five days. Strategy and status are drawn independently, each conditional on
// the days-overdue tier.
func (g *Generator) generateCollectionCases(invoices []models.Invoice, reps []models.SalesRep) []models.CollectionCase {
	var cases []models.CollectionCase
	index := 0

	for i := range invoices {
		inv := &invoices[i]
		if inv.PaymentStatus != models.StatusOverdue {
			continue
		}
		index++

		daysOverdue := daysBetween(inv.DueDate, g.asOf)
		if daysOverdue < 5 {
			continue
		}

		var strategy string
		switch {
		case daysOverdue > 90:
			strategy = "Settlement Offer"
			if g.src.Float64() < 0.7 {
				strategy = "Legal Action Warning"
			}
		case daysOverdue > 60:
			strategy = "Payment Plan"
			if g.src.Float64() < 0.6 {
				strategy = "Intensive Collection"
			}
		default:
			strategy = "Standard Follow-up"
		}

		var status string
		switch {
		case daysOverdue > 90:
			if g.src.Float64() < 0.4 {
				status = "Escalated"
			} else if g.src.Float64() < 0.5 {
				status = "In Progress"
			} else {
				status = "Pending Customer"
			}
		case daysOverdue > 60:
			if g.src.Float64() < 0.6 {
				status = "In Progress"
			} else if g.src.Float64() < 0.5 {
				status = "Open"
			} else {
				status = "Pending Customer"
			}
		default:
			status = "In Progress"
			if g.src.Float64() < 0.7 {
				status = "Open"
			}
		}

		openAfterDue := g.src.IntBetween(5, 14)
		if openAfterDue > daysOverdue-1 {
			openAfterDue = daysOverdue - 1
		}
		openDate := inv.DueDate.AddDate(0, 0, openAfterDue)

		var nextAction, resolution *time.Time
		if status == caseStatusResolved {
			resolved := g.src.DateBetween(openDate, g.asOf)
			resolution = &resolved
		} else {
			next := g.src.DateBetween(g.asOf.AddDate(0, 0, 1), g.asOf.AddDate(0, 0, nextActionWindowDays))
			nextAction = &next
		}

		collector := reps[g.src.IntN(len(reps))]

		cases = append(cases, models.CollectionCase{
			CaseID:             FormatID("CASE", index, 6),
			CustomerID:         inv.CustomerID,
			CustomerName:       inv.CustomerName,
			InvoiceID:          inv.InvoiceID,
			CaseOpenDate:       openDate,
			AmountDue:          inv.BalanceAmount,
			DaysOverdue:        daysOverdue,
			Priority:           casePriority(inv.BalanceAmount, daysOverdue),
			Status:             status,
			AssignedTo:         collector.RepName,
			CollectorID:        collector.RepID,
			CollectionStrategy: strategy,
			LastActionDate:     g.src.DateBetween(openDate, g.asOf),
			NextActionDate:     nextAction,
			ResolutionDate:     resolution,
		})
	}

	return cases
}

// generateDisputes samples roughly one in ten invoices, drops those younger
// than five days, and drifts the status distribution toward resolution as the
// dispute ages past the 15- and 30-day marks.
func (g *Generator) generateDisputes(invoices []models.Invoice, reps []models.SalesRep) []models.Dispute {
	var disputes []models.Dispute
	index := 0

	for i := range invoices {
		inv := &invoices[i]
		if g.src.Float64() >= 0.1 {
			continue
		}
		index++

		invoiceAge := daysBetween(inv.InvoiceDate, g.asOf)
		if invoiceAge < 5 {
			continue
		}

		openAfterInvoice := g.src.IntBetween(3, 17)
		if openAfterInvoice > invoiceAge-1 {
			openAfterInvoice = invoiceAge - 1
		}
		openDate := inv.InvoiceDate.AddDate(0, 0, openAfterInvoice)
		disputeAge := daysBetween(openDate, g.asOf)

		amount := inv.TotalAmount.
			Mul(decimal.NewFromFloat(0.1 + g.src.Float64()*0.9)).
			Round(2)

		var status string
		switch {
		case disputeAge > 30:
			if g.src.Float64() < 0.8 {
				status = "Resolved - Rejected"
				if g.src.Float64() < 0.7 {
					status = "Resolved - Accepted"
				}
			} else {
				status = "Under Investigation"
			}
		case disputeAge > 15:
			if g.src.Float64() < 0.5 {
				status = "Under Investigation"
			} else if g.src.Float64() < 0.5 {
				status = "Awaiting Customer"
			} else {
				status = "Awaiting Internal Response"
			}
		default:
			status = "Under Investigation"
			if g.src.Float64() < 0.7 {
				status = "Open"
			}
		}

		var resolution *time.Time
		resolutionNotes := ""
		if strings.HasPrefix(status, "Resolved") {
			resolveAfterOpen := g.src.IntBetween(5, 34)
			if resolveAfterOpen > disputeAge-1 {
				resolveAfterOpen = disputeAge - 1
			}
			resolved := openDate.AddDate(0, 0, resolveAfterOpen)
			resolution = &resolved

			resolutionNotes = "Dispute evidence insufficient"
			if status == "Resolved - Accepted" {
				resolutionNotes = "Credit memo issued for " + amount.StringFixed(2)
			}
		}

		disputeType := g.src.Pick(disputeTypes)
		handler := reps[g.src.IntN(len(reps))]

		disputes = append(disputes, models.Dispute{
			DisputeID:       FormatID("DISP", index, 6),
			InvoiceID:       inv.InvoiceID,
			CustomerID:      inv.CustomerID,
			CustomerName:    inv.CustomerName,
			OpenDate:        openDate,
			DisputeAmount:   amount,
			DisputeType:     disputeType,
			Status:          status,
			AssignedTo:      handler.RepName,
			HandlerID:       handler.RepID,
			ResolutionDate:  resolution,
			ResolutionNotes: resolutionNotes,
			Description:     "Customer disputes " + strings.ToLower(disputeType) + " on invoice " + inv.InvoiceID,
		})
	}

	return disputes
}

// generatePaymentPlans samples roughly 30% of invoices overdue by at least ten
// days into installment plans. Installment counts tier by balance size and the
// installments-paid estimate depends on the plan status.
func (g *Generator) generatePaymentPlans(invoices []models.Invoice, reps []models.SalesRep) []models.PaymentPlan {
	var plans []models.PaymentPlan
	index := 0

	for i := range invoices {
		inv := &invoices[i]
		if inv.PaymentStatus != models.StatusOverdue || g.src.Float64() >= 0.3 {
			continue
		}
		index++

		daysOverdue := daysBetween(inv.DueDate, g.asOf)
		if daysOverdue < 10 {
			continue
		}

		startAfterDue := g.src.IntBetween(5, 19)
		if startAfterDue > daysOverdue-1 {
			startAfterDue = daysOverdue - 1
		}
		startDate := inv.DueDate.AddDate(0, 0, startAfterDue)

		balance := inv.BalanceAmount
		var installments int
		switch {
		case balance.GreaterThan(amountTierCritical):
			installments = g.src.IntBetween(4, 7)
		case balance.GreaterThan(amountTierHigh):
			installments = g.src.IntBetween(3, 5)
		default:
			installments = g.src.IntBetween(2, 3)
		}

		endDate := startDate.AddDate(0, installments, 0)
		planAge := daysBetween(startDate, g.asOf)
		planDuration := daysBetween(startDate, endDate)

		var status string
		if planAge > planDuration {
			status = "Defaulted"
			if g.src.Float64() < 0.8 {
				status = "Completed"
			}
		} else {
			status = "Canceled"
			if g.src.Float64() < 0.9 {
				status = "Active"
			}
		}

		installmentAmount := balance.Div(decimal.NewFromInt(int64(installments))).Round(2)

		var installmentsPaid int
		switch status {
		case "Completed":
			installmentsPaid = installments
		case "Active":
			perInstallmentDays := float64(planDuration) / float64(installments)
			installmentsPaid = int(float64(planAge) / perInstallmentDays)
			if installmentsPaid > installments-1 {
				installmentsPaid = installments - 1
			}
		default: // Defaulted, Canceled
			installmentsPaid = int(float64(installments) * g.src.Float64() * 0.3)
		}

		remaining := balance.Sub(installmentAmount.Mul(decimal.NewFromInt(int64(installmentsPaid))))

		var nextInstallment *time.Time
		if status == "Active" {
			perInstallmentDays := float64(planDuration) / float64(installments)
			elapsed := math.Ceil(float64(planAge)/float64(planDuration)*float64(installments)) * perInstallmentDays
			next := startDate.AddDate(0, 0, int(elapsed))
			nextInstallment = &next
		}

		var lastPayment *time.Time
		if installmentsPaid > 0 {
			paid := g.src.DateBetween(startDate, g.asOf)
			lastPayment = &paid
		}

		handler := reps[g.src.IntN(len(reps))]

		plans = append(plans, models.PaymentPlan{
			PlanID:              FormatID("PLAN", index, 6),
			InvoiceID:           inv.InvoiceID,
			CustomerID:          inv.CustomerID,
			CustomerName:        inv.CustomerName,
			StartDate:           startDate,
			EndDate:             endDate,
			OriginalAmount:      balance,
			Installments:        installments,
			InstallmentAmount:   installmentAmount,
			InstallmentsPaid:    installmentsPaid,
			RemainingBalance:    remaining,
			Status:              status,
			CreatedBy:           handler.RepName,
			HandlerID:           handler.RepID,
			NextInstallmentDate: nextInstallment,
			LastPaymentDate:     lastPayment,
		})
	}

	return plans
}
