package services

import (
	"budget-planner/internal/models"

	"github.com/shopspring/decimal"
)

var (
	essentialTierShare = decimal.NewFromFloat(0.50)
	lifestyleTierShare = decimal.NewFromFloat(0.30)
	oneHundred         = decimal.NewFromInt(100)
)

// allocationCalculator implements AllocationCalculatorInterface. All methods
// are pure and deterministic: the same inputs always produce the same output.
type allocationCalculator struct{}

// NewAllocationCalculator creates a new AllocationCalculatorInterface instance
func NewAllocationCalculator() AllocationCalculatorInterface {
	return &allocationCalculator{}
}

// ComputeSavings returns income * ratePercent / 100, floored at zero
func (c *allocationCalculator) ComputeSavings(income, ratePercent decimal.Decimal) decimal.Decimal {
	savings := income.Mul(ratePercent).Div(oneHundred)
	if savings.IsNegative() {
		return decimal.Zero
	}
	return savings
}

// ComputeAvailablePool returns income - savings, floored at zero
func (c *allocationCalculator) ComputeAvailablePool(income, savings decimal.Decimal) decimal.Decimal {
	pool := income.Sub(savings)
	if pool.IsNegative() {
		return decimal.Zero
	}
	return pool
}

// GenerateSuggestions partitions the pool across the template tiers: 50% to
// the essential categories and 30% to the lifestyle categories. The remaining
// 20% is the savings already removed upstream and is not allocated.
//
// A category's equal share within its tier is overridden by its current-month
// spending total when an insight exists, so suggestions track actual
// behavior. Categories already budgeted for the period are excluded at
// source. Every amount is rounded to 2 decimal places; the sum is not
// rebalanced to match the sub-pool exactly, so rounding drift surfaces in
// the ledger's remaining pool.
func (c *allocationCalculator) GenerateSuggestions(pool decimal.Decimal, existingBudgets []models.Budget, insights []models.CategoryInsight) []models.Allocation {
	budgeted := make(map[string]bool, len(existingBudgets))
	for _, b := range existingBudgets {
		if b.Type == models.BudgetTypeExpense {
			budgeted[b.Category] = true
		}
	}

	insightByCategory := make(map[string]models.CategoryInsight, len(insights))
	for _, ci := range insights {
		insightByCategory[ci.CategoryKey] = ci
	}

	essentialPool := pool.Mul(essentialTierShare)
	lifestylePool := pool.Mul(lifestyleTierShare)

	allocations := make([]models.Allocation, 0, 10)
	allocations = append(allocations, c.suggestTier(essentialPool, models.EssentialCategories(), budgeted, insightByCategory)...)
	allocations = append(allocations, c.suggestTier(lifestylePool, models.LifestyleCategories(), budgeted, insightByCategory)...)

	return allocations
}

// suggestTier splits a sub-pool equally across the tier's categories that are
// not already budgeted
func (c *allocationCalculator) suggestTier(subPool decimal.Decimal, categories []string, budgeted map[string]bool, insights map[string]models.CategoryInsight) []models.Allocation {
	open := make([]string, 0, len(categories))
	for _, category := range categories {
		if !budgeted[category] {
			open = append(open, category)
		}
	}

	if len(open) == 0 {
		return nil
	}

	equalShare := subPool.Div(decimal.NewFromInt(int64(len(open)))).Round(2)

	allocations := make([]models.Allocation, 0, len(open))
	for _, category := range open {
		amount := equalShare

		var insight *models.SpendingInsight
		if ci, ok := insights[category]; ok && ci.CurrentMonth.Total.GreaterThan(decimal.Zero) {
			amount = ci.CurrentMonth.Total.Round(2)
			insight = &models.SpendingInsight{
				AvgSpent:       ci.AverageSpent(),
				LastMonthSpent: ci.PreviousMonth.Total,
			}
		}

		key := models.CanonicalCategoryKey(category)
		allocations = append(allocations, models.Allocation{
			// Stable IDs keep ledger references valid across recomputes
			ID:       "suggested-" + category,
			Label:    key.Label,
			Category: key,
			Amount:   amount,
			Type:     models.BudgetTypeExpense,
			Included: true,
			Origin:   models.OriginSuggested,
			Insight:  insight,
		})
	}

	return allocations
}
