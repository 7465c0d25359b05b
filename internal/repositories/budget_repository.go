package repositories

import (
	"errors"
	"fmt"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{ID: id}
	if err := r.db.First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetByPeriod retrieves all monthly budgets for the given year and month
func (r *budgetRepository) GetByPeriod(year, month int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("year = ? AND month = ?", year, month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets for period: %w", err)
	}
	return budgets, nil
}

// GetAll retrieves budgets with pagination
func (r *budgetRepository) GetAll(offset, limit int) ([]models.Budget, int64, error) {
	var budgets []models.Budget
	var total int64

	if err := r.db.Model(&models.Budget{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count budgets: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("year DESC, month DESC, category ASC").
		Find(&budgets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get budgets: %w", err)
	}

	return budgets, total, nil
}

// ExistsForPeriod checks whether a budget already exists for the given
// category, type, year and month tuple
func (r *budgetRepository) ExistsForPeriod(category, budgetType string, year, month int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Budget{}).
		Where("category = ? AND type = ? AND year = ? AND month = ?", category, budgetType, year, month).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check budget existence: %w", err)
	}
	return count > 0, nil
}

// Delete removes a budget by ID
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
