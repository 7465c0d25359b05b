package services

import (
	"errors"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAllocationNotFound    = errors.New("allocation not found")
	ErrEmptyLabelAndCategory = errors.New("allocation label and category cannot both be empty")
	ErrNonPositiveAmount     = errors.New("allocation amount must be positive")
	ErrDuplicateAllocation   = errors.New("an allocation for this category and type already exists")
)

// AllocationLedger holds the allocation line items of one planning session:
// the calculator's suggestions plus any custom entries the user added.
// Totals are derived on every read; there is no cached state to invalidate.
type AllocationLedger struct {
	availablePool decimal.Decimal
	items         []models.Allocation
}

// LedgerTotals is the derived view of the ledger against the available pool
type LedgerTotals struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	// RemainingPool may go negative; over-allocation is surfaced to the
	// user, never clamped
	RemainingPool        decimal.Decimal `json:"remaining_pool"`
	AllocationPercentage decimal.Decimal `json:"allocation_percentage"`
}

// NewAllocationLedger creates a ledger over the given pool, seeded with the
// given suggested allocations
func NewAllocationLedger(availablePool decimal.Decimal, suggestions []models.Allocation) *AllocationLedger {
	items := make([]models.Allocation, len(suggestions))
	copy(items, suggestions)
	return &AllocationLedger{
		availablePool: availablePool,
		items:         items,
	}
}

// Items returns a copy of the current allocation line items
func (l *AllocationLedger) Items() []models.Allocation {
	items := make([]models.Allocation, len(l.items))
	copy(items, l.items)
	return items
}

// IncludedItems returns the allocations that count toward totals and commit
func (l *AllocationLedger) IncludedItems() []models.Allocation {
	included := make([]models.Allocation, 0, len(l.items))
	for _, item := range l.items {
		if item.Included {
			included = append(included, item)
		}
	}
	return included
}

// AvailablePool returns the pool the ledger allocates against
func (l *AllocationLedger) AvailablePool() decimal.Decimal {
	return l.availablePool
}

// ToggleInclusion flips whether the allocation counts toward totals and commit
func (l *AllocationLedger) ToggleInclusion(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Included = !l.items[i].Included
			return nil
		}
	}
	return ErrAllocationNotFound
}

// SetAmount updates an allocation's amount, clamped at zero
func (l *AllocationLedger) SetAmount(id string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Amount = amount.Round(2)
			return nil
		}
	}
	return ErrAllocationNotFound
}

// AddCustom appends a user-defined allocation. Custom entries survive
// recomputation, unlike suggested ones.
func (l *AllocationLedger) AddCustom(label string, category models.CategoryKey, budgetType string, amount decimal.Decimal) (*models.Allocation, error) {
	if label == "" && category.Key == "" {
		return nil, ErrEmptyLabelAndCategory
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositiveAmount
	}

	// Pre-empt an obvious in-session duplicate before the conflict detector
	// ever runs against persisted state
	for _, item := range l.items {
		if item.Category.Key == category.Key && item.Type == budgetType {
			return nil, ErrDuplicateAllocation
		}
	}

	if label == "" {
		label = category.Label
	}

	allocation := models.Allocation{
		ID:       uuid.NewString(),
		Label:    label,
		Category: category,
		Amount:   amount.Round(2),
		Type:     budgetType,
		Included: true,
		Origin:   models.OriginCustom,
	}

	l.items = append(l.items, allocation)
	return &allocation, nil
}

// Remove deletes an allocation from the ledger
func (l *AllocationLedger) Remove(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrAllocationNotFound
}

// RemoveAll deletes every allocation whose ID is in the given set. Used by
// the explicit "remove duplicates" conflict resolution path.
func (l *AllocationLedger) RemoveAll(ids []string) {
	if len(ids) == 0 {
		return
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := l.items[:0]
	for _, item := range l.items {
		if !drop[item.ID] {
			kept = append(kept, item)
		}
	}
	l.items = kept
}

// ReplaceSuggestions discards all suggested items and installs a fresh set,
// leaving custom items untouched. Destructive for suggested items: the
// ledger always reflects the latest income and rate inputs.
func (l *AllocationLedger) ReplaceSuggestions(availablePool decimal.Decimal, suggestions []models.Allocation) {
	custom := make([]models.Allocation, 0, len(l.items))
	for _, item := range l.items {
		if !item.IsSuggested() {
			custom = append(custom, item)
		}
	}

	l.availablePool = availablePool
	l.items = append(suggestions, custom...)
}

// Totals derives the ledger totals from the currently included items
func (l *AllocationLedger) Totals() LedgerTotals {
	total := decimal.Zero
	for _, item := range l.items {
		if item.CountsTowardTotals() {
			total = total.Add(item.Amount)
		}
	}

	percentage := decimal.Zero
	if l.availablePool.GreaterThan(decimal.Zero) {
		percentage = total.Div(l.availablePool).Mul(oneHundred).Round(2)
	}

	return LedgerTotals{
		TotalAllocated:       total,
		RemainingPool:        l.availablePool.Sub(total),
		AllocationPercentage: percentage,
	}
}
