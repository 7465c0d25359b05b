package services

import (
	"fmt"
	"math/rand"
	"time"

	"budget-planner/internal/models"
	"budget-planner/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

type spendingGenerator struct {
	spendingRepo repositories.SpendingRepositoryInterface
	rng          *rand.Rand
}

const (
	minTransactionsPerCategory = 2
	maxTransactionsPerCategory = 8
	spendingHourStart          = 7
	spendingHourEnd            = 23
)

// NewSpendingGenerator creates a generator that seeds realistic expense
// transactions for development environments.
func NewSpendingGenerator(spendingRepo repositories.SpendingRepositoryInterface) SpendingGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &spendingGenerator{
		spendingRepo: spendingRepo,
		rng:          rand.New(source),
	}
}

var merchantsByCategory = map[string][]string{
	models.CategoryHousing:       {"Greystar Property Management", "AvalonBay Communities", "Equity Residential"},
	models.CategoryUtilities:     {"PG&E", "Duke Energy", "Comcast Xfinity", "AT&T", "Water Department"},
	models.CategoryFood:          {"Whole Foods Market", "Trader Joe's", "Kroger", "Chipotle Mexican Grill", "Starbucks", "Safeway"},
	models.CategoryTransport:     {"Shell", "Uber", "Lyft", "Chevron", "Metro Transit"},
	models.CategoryHealthcare:    {"CVS Pharmacy", "Walgreens", "Kaiser Permanente", "Quest Diagnostics"},
	models.CategoryEntertainment: {"Netflix", "AMC Theaters", "Spotify", "PlayStation Network"},
	models.CategoryShopping:      {"Amazon.com", "Target", "Best Buy", "IKEA"},
	models.CategoryClothing:      {"Nordstrom", "Gap", "Nike", "Macy's"},
	models.CategorySubscriptions: {"Disney+", "Apple", "YouTube Premium", "The New York Times"},
	models.CategoryTravel:        {"Delta Air Lines", "Marriott Hotels", "United Airlines", "Hilton Hotels"},
}

var amountRangesByCategory = map[string][2]float64{
	models.CategoryHousing:       {800.00, 2500.00},
	models.CategoryUtilities:     {40.00, 250.00},
	models.CategoryFood:          {8.00, 180.00},
	models.CategoryTransport:     {10.00, 90.00},
	models.CategoryHealthcare:    {15.00, 300.00},
	models.CategoryEntertainment: {8.00, 60.00},
	models.CategoryShopping:      {20.00, 400.00},
	models.CategoryClothing:      {25.00, 250.00},
	models.CategorySubscriptions: {5.00, 30.00},
	models.CategoryTravel:        {90.00, 900.00},
}

// GenerateMonthlySpending seeds expense transactions across all spending
// categories for the given month and returns how many were created.
func (g *spendingGenerator) GenerateMonthlySpending(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d", month)
	}

	var transactions []models.Transaction
	for _, category := range models.AllSpendingCategories() {
		count := minTransactionsPerCategory + g.rng.Intn(maxTransactionsPerCategory-minTransactionsPerCategory+1)
		for i := 0; i < count; i++ {
			transactions = append(transactions, g.generateTransaction(category, year, month))
		}
	}

	if err := g.spendingRepo.CreateBatch(transactions); err != nil {
		return 0, fmt.Errorf("failed to seed spending transactions: %w", err)
	}
	return len(transactions), nil
}

func (g *spendingGenerator) generateTransaction(category string, year, month int) models.Transaction {
	return models.Transaction{
		Category:     category,
		Type:         models.BudgetTypeExpense,
		Amount:       g.generateAmount(category),
		Description:  gofakeit.ProductName(),
		MerchantName: g.selectMerchant(category),
		OccurredAt:   g.generateTimestamp(year, month),
	}
}

func (g *spendingGenerator) selectMerchant(category string) string {
	merchants, ok := merchantsByCategory[category]
	if !ok || len(merchants) == 0 {
		return gofakeit.Company()
	}
	return merchants[g.rng.Intn(len(merchants))]
}

func (g *spendingGenerator) generateAmount(category string) decimal.Decimal {
	r, ok := amountRangesByCategory[category]
	if !ok {
		r = [2]float64{10.00, 100.00}
	}
	amount := r[0] + g.rng.Float64()*(r[1]-r[0])
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *spendingGenerator) generateTimestamp(year, month int) time.Time {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := int(start.AddDate(0, 1, 0).Sub(start).Hours() / 24)

	day := 1 + g.rng.Intn(days)
	hour := spendingHourStart + g.rng.Intn(spendingHourEnd-spendingHourStart)
	minute := g.rng.Intn(60)

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}
