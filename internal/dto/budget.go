package dto

import (
	"budget-planner/internal/models"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a budget directly
type CreateBudgetRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Type     string `json:"type" validate:"required,budget_type"`
	Category string `json:"category" validate:"required,min=1,max=100"`
	Amount   string `json:"amount" validate:"required,positive_amount"`
	Period   string `json:"period" validate:"required,budget_period"`
	Year     int    `json:"year" validate:"required,min=2000,max=2100"`
	Month    *int   `json:"month" validate:"omitempty,budget_month"`
}

// Budget Response DTOs

// CreateBudgetResponse represents the response after creating a budget
type CreateBudgetResponse struct {
	Budget  *models.Budget `json:"budget"`
	Message string         `json:"message"`
}

// BudgetListResponse represents a paginated list of budgets
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// GenerateSpendingResponse represents the outcome of seeding demo spending data
type GenerateSpendingResponse struct {
	Message          string `json:"message"`
	TransactionCount int    `json:"transaction_count"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
}

// CategoryListResponse represents the user-defined categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type" validate:"required,budget_type"`
	Color string `json:"color" validate:"max=20"`
	Icon  string `json:"icon" validate:"max=50"`
}
