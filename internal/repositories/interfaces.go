package repositories

import (
	"budget-planner/internal/models"

	"github.com/google/uuid"
)

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetByPeriod(year, month int) ([]models.Budget, error)
	GetAll(offset, limit int) ([]models.Budget, int64, error)
	ExistsForPeriod(category, budgetType string, year, month int) (bool, error)
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Delete(id uuid.UUID) error
}

// SpendingRepositoryInterface defines the contract for spending-history queries.
// The planner reads transactions only in aggregate, per category and month.
type SpendingRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetCategoryTotals(year, month int) ([]models.CategoryTotal, error)
}
