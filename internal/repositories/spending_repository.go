package repositories

import (
	"fmt"
	"time"

	"budget-planner/internal/models"

	"gorm.io/gorm"
)

// spendingRepository implements SpendingRepositoryInterface
type spendingRepository struct {
	db *gorm.DB
}

// NewSpendingRepository creates a new spending repository
func NewSpendingRepository(db *gorm.DB) SpendingRepositoryInterface {
	return &spendingRepository{
		db: db,
	}
}

// Create records a single transaction
func (r *spendingRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch records multiple transactions in one insert
func (r *spendingRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := r.db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

// GetCategoryTotals aggregates expense transactions per category for the
// given calendar month
func (r *spendingRepository) GetCategoryTotals(year, month int) ([]models.CategoryTotal, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var totals []models.CategoryTotal
	if err := r.db.Model(&models.Transaction{}).
		Select("category, COUNT(*) as transaction_count, COALESCE(SUM(amount), 0) as total").
		Where("type = ? AND occurred_at >= ? AND occurred_at < ?", models.BudgetTypeExpense, start, end).
		Group("category").
		Order("category ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	return totals, nil
}
