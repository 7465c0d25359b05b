package models

import (
	"github.com/shopspring/decimal"
)

const (
	OriginSuggested = "suggested"
	OriginCustom    = "custom"
)

// SpendingInsight carries historical spend data for a category. It is used
// only for suggestion generation and display, never for persistence.
type SpendingInsight struct {
	AvgSpent       decimal.Decimal `json:"avg_spent"`
	LastMonthSpent decimal.Decimal `json:"last_month_spent"`
}

// Allocation is a single proposed or custom budget line item tracked in the
// planning ledger before persistence. Allocations live in memory for the
// lifetime of a planning session.
type Allocation struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Category CategoryKey      `json:"category"`
	Amount   decimal.Decimal  `json:"amount"`
	Type     string           `json:"type"`
	Included bool             `json:"included"`
	Origin   string           `json:"origin"`
	Insight  *SpendingInsight `json:"insight,omitempty"`
}

// IsSuggested reports whether the allocation was produced by the calculator.
// Suggested items are replaced wholesale on recompute; custom items survive.
func (a *Allocation) IsSuggested() bool {
	return a.Origin == OriginSuggested
}

// CountsTowardTotals reports whether the allocation contributes to the
// ledger's derived totals
func (a *Allocation) CountsTowardTotals() bool {
	return a.Included
}

// ToBudget maps the allocation to a monthly budget record for the given period
func (a *Allocation) ToBudget(year, month int) *Budget {
	m := month
	return &Budget{
		Name:     a.Label,
		Type:     a.Type,
		Category: a.Category.Key,
		Amount:   a.Amount,
		Period:   BudgetPeriodMonthly,
		Year:     year,
		Month:    &m,
	}
}
