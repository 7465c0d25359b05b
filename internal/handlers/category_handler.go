package handlers

import (
	"net/http"

	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/models"
	"budget-planner/internal/repositories"
	"budget-planner/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category and spending insight HTTP requests
type CategoryHandler struct {
	categoryRepo   repositories.CategoryRepositoryInterface
	insightService services.InsightServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface, insightService services.InsightServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo:   categoryRepo,
		insightService: insightService,
	}
}

// ListCategories returns all user-defined categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Categories"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// CreateCategory creates a user-defined category
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} models.Category "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_002 - Category name already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if existing, err := h.categoryRepo.GetByName(req.Name); err == nil && existing != nil {
		return SendError(c, errors.CategoryAlreadyExists)
	}

	category := &models.Category{
		Name:  req.Name,
		Type:  req.Type,
		Color: req.Color,
		Icon:  req.Icon,
	}

	if err := h.categoryRepo.Create(category); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a user-defined category
// @Summary Delete a category
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_003 - Invalid category ID format"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	if err := h.categoryRepo.Delete(categoryID); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

// GetInsights returns per-category spending insights for a period
// @Summary Get spending insights
// @Description Aggregate spending for the requested month and the month before it, per category
// @Tags Categories
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {array} models.CategoryInsight "Per-category insights"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights [get]
func (h *CategoryHandler) GetInsights(c echo.Context) error {
	year, month := getPeriodParams(c)
	if month < 1 || month > 12 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Month must be between 1 and 12"))
	}

	insights, err := h.insightService.GetCategoryInsights(year, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, insights)
}
