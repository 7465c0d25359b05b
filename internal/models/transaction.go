package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

// Transaction represents a recorded spending or income movement. The planner
// only reads transactions in aggregate, to derive per-category insights.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category     string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Type         string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description  string          `gorm:"type:text" json:"description"`
	MerchantName string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	OccurredAt   time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Category == "" {
		return errors.New("transaction category is required")
	}

	if !IsValidBudgetType(t.Type) {
		return ErrInvalidBudgetType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}

	return nil
}

// CategoryTotal is an aggregated per-category spending total for one month
type CategoryTotal struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	Total            decimal.Decimal `json:"total"`
}
