package models

import "github.com/shopspring/decimal"

// MonthTotals aggregates spending for one category in one month
type MonthTotals struct {
	Total            decimal.Decimal `json:"total"`
	TransactionCount int64           `json:"transaction_count"`
}

// CategoryInsight is the per-category view returned by the insight provider:
// spending totals for the requested month and the month before it
type CategoryInsight struct {
	CategoryKey   string      `json:"category_key"`
	Name          string      `json:"name"`
	CurrentMonth  MonthTotals `json:"current_month"`
	PreviousMonth MonthTotals `json:"previous_month"`
}

// AverageSpent returns the mean of the current and previous month totals.
// With only two observed months this is the best available estimate of
// typical spend.
func (ci *CategoryInsight) AverageSpent() decimal.Decimal {
	return ci.CurrentMonth.Total.Add(ci.PreviousMonth.Total).Div(decimal.NewFromInt(2)).Round(2)
}
