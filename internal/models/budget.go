package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetTypeIncome     = "INCOME"
	BudgetTypeExpense    = "EXPENSE"
	BudgetTypeInvestment = "INVESTMENT"

	BudgetPeriodMonthly = "MONTHLY"
	BudgetPeriodYearly  = "YEARLY"
)

var (
	ErrInvalidBudgetType   = errors.New("invalid budget type")
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
	ErrInvalidBudgetMonth  = errors.New("month must be between 1 and 12")
)

// Budget represents a persisted budget for a category and period
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Type      string          `gorm:"type:varchar(20);not null;index:idx_budget_period" json:"type"`
	Category  string          `gorm:"type:varchar(100);not null;index:idx_budget_period" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period    string          `gorm:"type:varchar(20);not null;default:'MONTHLY'" json:"period"`
	Year      int             `gorm:"not null;index:idx_budget_period" json:"year"`
	Month     *int            `gorm:"index:idx_budget_period" json:"month,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()

	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}

	// Set timestamps if not already set (for tests)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Name == "" {
		return errors.New("budget name is required")
	}

	if !IsValidBudgetType(b.Type) {
		return ErrInvalidBudgetType
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	if b.Category == "" {
		return errors.New("budget category is required")
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	if b.Year < 2000 || b.Year > 2200 {
		return errors.New("budget year is out of range")
	}

	if b.Period == BudgetPeriodMonthly {
		if b.Month == nil {
			return errors.New("month is required for monthly budgets")
		}
		if *b.Month < 1 || *b.Month > 12 {
			return ErrInvalidBudgetMonth
		}
	}

	return nil
}

// MatchesPeriod reports whether the budget covers the given category, type,
// year and month tuple
func (b *Budget) MatchesPeriod(category, budgetType string, year, month int) bool {
	if b.Category != category || b.Type != budgetType || b.Year != year {
		return false
	}
	return b.Month != nil && *b.Month == month
}

// IsValidBudgetType checks if a budget type string is valid
func IsValidBudgetType(budgetType string) bool {
	switch budgetType {
	case BudgetTypeIncome, BudgetTypeExpense, BudgetTypeInvestment:
		return true
	}
	return false
}

// IsValidBudgetPeriod checks if a budget period string is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}
