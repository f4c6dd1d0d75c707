package gen

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"ardata/pkg/models"
)

// Customer onboarding dates fall in a fixed historical window, independent of
// the reference date.
var (
	onboardingWindowStart = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	onboardingWindowEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

var paymentTermsWeights = []WeightedValue{
	{"Net 30", 40},
	{"Net 45", 20},
	{"Net 60", 15},
	{"Net 15", 15},
	{"Net 7", 5},
	{"COD", 5},
}

var companySizeWeights = []WeightedValue{
	{"Small", 35},
	{"Medium", 40},
	{"Large", 20},
	{"Enterprise", 5},
}

// creditLimitRanges gives the whole-rupee [min, max) credit limit per category.
var creditLimitRanges = map[string][2]float64{
	"Small":      {100_000, 1_000_000},
	"Medium":     {1_000_000, 10_000_000},
	"Large":      {10_000_000, 50_000_000},
	"Enterprise": {50_000_000, 200_000_000},
}

// generateCustomers produces the customer master list. Name, contact, address
// and industry are index-derived (reproducible per index); category, terms,
// credit limit and status are random draws.
func (g *Generator) generateCustomers() []models.Customer {
	customers := make([]models.Customer, 0, g.customerCount)

	for i := 0; i < g.customerCount; i++ {
		companyName := CompanyName(i)
		addr := newAddress(i, g.src)
		size := g.src.WeightedChoice(companySizeWeights)
		terms := g.src.WeightedChoice(paymentTermsWeights)

		limits := creditLimitRanges[size]
		creditLimit := g.src.Amount(limits[0], limits[1], 0)
		availableCredit := creditLimit.
			Mul(decimal.NewFromFloat(0.3 + g.src.Float64()*0.7)).
			Round(2)

		contact := PersonName(i)
		email := strings.Replace(strings.ToLower(contact), " ", ".", 1) +
			"@" + strings.ReplaceAll(strings.ToLower(companyName), " ", "") + ".com"
		phone := "+91" + strconv.FormatInt(7_000_000_000+int64(g.src.Float64()*3_000_000_000), 10)

		status := "Active"
		if g.src.Float64() <= 0.05 {
			status = "Inactive"
		}

		customers = append(customers, models.Customer{
			CustomerID:       FormatID("CUST", i+1, 6),
			CustomerName:     companyName,
			PrimaryContact:   contact,
			Email:            email,
			Phone:            phone,
			AddressLine1:     addr.Street,
			City:             addr.City,
			State:            addr.State,
			PostalCode:       addr.PINCode,
			Country:          "India",
			GSTNumber:        gstNumber(addr.State, i),
			PaymentTerms:     terms,
			CreditLimit:      creditLimit,
			AvailableCredit:  availableCredit,
			IndustrySector:   IndustrySector(i),
			CustomerCategory: size,
			OnboardingDate:   g.src.DateBetween(onboardingWindowStart, onboardingWindowEnd),
			Status:           status,
		})
	}

	return customers
}
