package handlers

import (
	"net/http"

	"budget-planner/internal/config"
	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	cfg       *config.Config
	generator services.SpendingGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(cfg *config.Config, generator services.SpendingGeneratorInterface) *DevHandler {
	return &DevHandler{
		cfg:       cfg,
		generator: generator,
	}
}

// GenerateSpendingData seeds realistic expense transactions for one month
//
// Method: POST /api/v1/dev/spending/generate
// Environment: Development only
//
// Query parameters:
//   - year: Target year (defaults to current)
//   - month: Target month 1-12 (defaults to current)
//
// The seeded transactions feed the spending insights that drive allocation
// suggestions, so a freshly started instance has data to plan against.
func (h *DevHandler) GenerateSpendingData(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Endpoint is only available in development"))
	}

	year, month := getPeriodParams(c)
	if month < 1 || month > 12 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Month must be between 1 and 12"))
	}

	count, err := h.generator.GenerateMonthlySpending(year, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateSpendingResponse{
		Message:          "Spending data generated successfully",
		TransactionCount: count,
		Year:             year,
		Month:            month,
	})
}
