package gen

import (
	"ardata/pkg/models"
)

var interactionTypes = []string{
	"Call", "Email", "Meeting", "Site Visit", "Video Call", "Web Portal", "Chat",
}

var nonCollectionPurposes = []string{
	"Account Review", "Dispute Resolution", "Payment Confirmation", "General Inquiry",
}

var interactionSummaries = map[string][]string{
	"Collection Call": {
		"Discussed payment of overdue invoices",
		"Customer promised payment by next week",
		"Left voicemail regarding overdue payment",
		"Customer disputed invoice amount",
		"Arranged payment schedule for overdue amounts",
		"Customer confirmed payment has been initiated",
		"Explained late payment fees and implications",
		"Escalated to manager due to payment delays",
	},
	"Account Review": {
		"Quarterly account review meeting",
		"Discussed upcoming orders and payment terms",
		"Reviewed credit limit and payment history",
		"Updated customer contact information",
		"Addressed concerns about recent shipments",
		"Negotiated new payment terms",
	},
	"Dispute Resolution": {
		"Customer reported incorrect billing",
		"Resolved shipping discrepancy",
		"Discussed quality issues with recent shipment",
		"Processing refund for returned items",
		"Clarified invoice line items",
		"Created credit note for billing error",
	},
	"Payment Confirmation": {
		"Received confirmation of payment transfer",
		"Verified payment receipt for invoice",
		"Confirmed check has been processed",
		"Reconciled payment with outstanding invoices",
		"Updated records with new payment details",
		"Resolved payment allocation discrepancy",
	},
	"General Inquiry": {
		"Responded to statement request",
		"Provided account balance information",
		"Answered questions about payment methods",
		"Explained invoice details",
		"Shared payment history report",
		"Addressed questions about online portal access",
	},
}

// generateInteractions logs 1-3 baseline touchpoints per customer, plus up to
// ten extra for customers carrying overdue invoices. Collection calls dominate
// for those customers and reference one of their overdue invoices.
func (g *Generator) generateInteractions(customers []models.Customer, invoicesByCustomer map[string][]*models.Invoice, reps []models.SalesRep) []models.Interaction {
	var interactions []models.Interaction
	windowStart := g.interactionWindowStart()

	for i := range customers {
		customer := &customers[i]
		customerInvoices := invoicesByCustomer[customer.CustomerID]

		var overdue []*models.Invoice
		for _, inv := range customerInvoices {
			if inv.PaymentStatus == models.StatusOverdue {
				overdue = append(overdue, inv)
			}
		}

		count := g.src.IntBetween(1, 3)
		if len(overdue) > 0 {
			extra := len(overdue) * 2
			if extra > 10 {
				extra = 10
			}
			count += extra
		}

		for j := 0; j < count; j++ {
			purpose := ""
			if len(overdue) > 0 && g.src.Float64() < 0.7 {
				purpose = "Collection Call"
			} else {
				purpose = g.src.Pick(nonCollectionPurposes)
			}

			relatedInvoice := ""
			switch purpose {
			case "Collection Call":
				if len(overdue) > 0 {
					relatedInvoice = overdue[g.src.IntN(len(overdue))].InvoiceID
				}
			case "Payment Confirmation", "Dispute Resolution":
				if len(customerInvoices) > 0 {
					relatedInvoice = customerInvoices[g.src.IntN(len(customerInvoices))].InvoiceID
				}
			}

			initiatedBy := "Company"
			if purpose != "Collection Call" && purpose != "Account Review" && g.src.Float64() >= 0.7 {
				initiatedBy = "Customer"
			}

			outcome := "Pending"
			switch j % 3 {
			case 0:
				outcome = "Follow-up Required"
			case 1:
				outcome = "Resolved"
			}

			rep := reps[g.src.IntN(len(reps))]

			interactions = append(interactions, models.Interaction{
				InteractionID:   FormatID("INT", i*10+j+1, 7),
				CustomerID:      customer.CustomerID,
				CustomerName:    customer.CustomerName,
				InteractionDate: g.src.DateBetween(windowStart, g.asOf),
				InteractionType: g.src.Pick(interactionTypes),
				Purpose:         purpose,
				Summary:         g.src.Pick(interactionSummaries[purpose]),
				InitiatedBy:     initiatedBy,
				HandledBy:       rep.RepName,
				RepID:           rep.RepID,
				RelatedInvoice:  relatedInvoice,
				Outcome:         outcome,
			})
		}
	}

	return interactions
}
