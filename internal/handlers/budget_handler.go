package handlers

import (
	"net/http"

	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/models"
	"budget-planner/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultBudgetPageLimit = 50
	maxBudgetPageLimit     = 200
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

// CreateBudget creates a single budget directly, outside a planning session
// @Summary Create a budget
// @Description Create one budget record. The category, type and period combination must not already exist.
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.CreateBudgetResponse "Budget created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_005 - Budget already exists for this category and period"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.BudgetInvalidAmount)
	}

	if req.Period == models.BudgetPeriodMonthly && req.Month == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Month is required for monthly budgets"))
	}

	if req.Month != nil {
		exists, err := h.budgetRepo.ExistsForPeriod(req.Category, req.Type, req.Year, *req.Month)
		if err != nil {
			return SendSystemError(c, err)
		}
		if exists {
			return SendError(c, errors.BudgetDuplicate)
		}
	}

	budget := &models.Budget{
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
		Amount:   amount,
		Period:   req.Period,
		Year:     req.Year,
		Month:    req.Month,
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateBudgetResponse{
		Budget:  budget,
		Message: "Budget created successfully",
	})
}

// ListBudgets returns budgets, optionally filtered to one period
// @Summary List budgets
// @Description List budgets with pagination, or every budget of a period when year and month are given
// @Tags Budgets
// @Produce json
// @Param year query int false "Filter by year"
// @Param month query int false "Filter by month (1-12, requires year)"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} dto.BudgetListResponse "Budgets"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	year := getIntParam(c, "year", 0)
	month := getIntParam(c, "month", 0)

	if year > 0 && month > 0 {
		budgets, err := h.budgetRepo.GetByPeriod(year, month)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, dto.BudgetListResponse{
			Budgets: budgets,
			Total:   len(budgets),
			Limit:   len(budgets),
		})
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultBudgetPageLimit)
	if limit > maxBudgetPageLimit {
		limit = maxBudgetPageLimit
	}

	budgets, total, err := h.budgetRepo.GetAll(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: budgets,
		Total:   int(total),
		Offset:  offset,
		Limit:   limit,
	})
}

// GetBudget retrieves a budget by ID
// @Summary Get budget by ID
// @Tags Budgets
// @Produce json
// @Param budgetId path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget "Budget details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid budget ID format"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{budgetId} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	budgetID, err := uuid.Parse(c.Param("budgetId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	budget, err := h.budgetRepo.GetByID(budgetID)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
// @Summary Delete a budget
// @Tags Budgets
// @Produce json
// @Param budgetId path string true "Budget ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Budget deleted"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{budgetId} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	budgetID, err := uuid.Parse(c.Param("budgetId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetRepo.Delete(budgetID); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}
