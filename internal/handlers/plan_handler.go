package handlers

import (
	stderrors "errors"
	"net/http"

	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PlanHandler handles planning session HTTP requests
type PlanHandler struct {
	plannerService services.PlannerServiceInterface
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plannerService services.PlannerServiceInterface) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// StartPlan starts a new planning session
// @Summary Start a planning session
// @Description Derive savings and the available pool from income and savings rate, and seed suggested allocations for the period
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.StartPlanRequest true "Planning inputs"
// @Success 201 {object} dto.PlanResponse "Session created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /plans [post]
func (h *PlanHandler) StartPlan(c echo.Context) error {
	var req dto.StartPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid monthly income"))
	}

	rate, err := decimal.NewFromString(req.SavingsRate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid savings rate"))
	}

	session, err := h.plannerService.StartSession(income, rate, req.Year, req.Month)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewPlanResponse(session))
}

// GetPlan retrieves the current state of a planning session
// @Summary Get a planning session
// @Description Retrieve the session's inputs, allocation items and derived totals
// @Tags Plans
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} dto.PlanResponse "Session state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid session ID format"
// @Failure 404 {object} errors.ErrorResponse "PLAN_001 - Session not found"
// @Router /plans/{sessionId} [get]
func (h *PlanHandler) GetPlan(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.plannerService.GetSession(sessionID)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// UpdateInputs changes the income or savings rate of a session
// @Summary Update planning inputs
// @Description Recompute savings, the pool and all suggested items for new inputs. Custom items are kept; edits to suggested items are discarded.
// @Tags Plans
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param request body dto.UpdatePlanInputsRequest true "New planning inputs"
// @Success 200 {object} dto.PlanResponse "Recomputed session state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "PLAN_001 - Session not found"
// @Router /plans/{sessionId}/inputs [put]
func (h *PlanHandler) UpdateInputs(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.UpdatePlanInputsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid monthly income"))
	}

	rate, err := decimal.NewFromString(req.SavingsRate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid savings rate"))
	}

	session, err := h.plannerService.UpdateInputs(sessionID, income, rate)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// ToggleItem flips whether an allocation counts toward totals and commit
// @Summary Toggle an allocation item
// @Description Include or exclude the allocation from totals and the eventual commit
// @Tags Plans
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param itemId path string true "Allocation item ID"
// @Success 200 {object} dto.PlanResponse "Updated session state"
// @Failure 404 {object} errors.ErrorResponse "PLAN_002 - Item not found"
// @Router /plans/{sessionId}/items/{itemId}/toggle [patch]
func (h *PlanHandler) ToggleItem(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.plannerService.ToggleItem(sessionID, c.Param("itemId"))
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// SetItemAmount edits an allocation's amount
// @Summary Edit an allocation amount
// @Description Set a new amount for the allocation. Negative values clamp to zero; over-allocation of the pool is allowed.
// @Tags Plans
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param itemId path string true "Allocation item ID"
// @Param request body dto.SetItemAmountRequest true "New amount"
// @Success 200 {object} dto.PlanResponse "Updated session state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid amount format"
// @Failure 404 {object} errors.ErrorResponse "PLAN_002 - Item not found"
// @Router /plans/{sessionId}/items/{itemId}/amount [put]
func (h *PlanHandler) SetItemAmount(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.SetItemAmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid amount"))
	}

	session, err := h.plannerService.SetItemAmount(sessionID, c.Param("itemId"), amount)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// AddItem appends a custom allocation to the session
// @Summary Add a custom allocation
// @Description Add a user-defined allocation. The category may be a canonical key or a user-defined category ID.
// @Tags Plans
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param request body dto.AddCustomItemRequest true "Custom allocation"
// @Success 200 {object} dto.PlanResponse "Updated session state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "PLAN_001 - Session not found"
// @Failure 409 {object} errors.ErrorResponse "PLAN_003 - Duplicate category and type in this plan"
// @Router /plans/{sessionId}/items [post]
func (h *PlanHandler) AddItem(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.AddCustomItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid amount"))
	}

	session, err := h.plannerService.AddCustomItem(sessionID, req.Label, req.Category, req.Type, amount)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// RemoveItem deletes an allocation from the session
// @Summary Remove an allocation item
// @Tags Plans
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param itemId path string true "Allocation item ID"
// @Success 200 {object} dto.PlanResponse "Updated session state"
// @Failure 404 {object} errors.ErrorResponse "PLAN_002 - Item not found"
// @Router /plans/{sessionId}/items/{itemId} [delete]
func (h *PlanHandler) RemoveItem(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.plannerService.RemoveItem(sessionID, c.Param("itemId"))
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPlanResponse(session))
}

// ScreenConflicts screens the plan against budgets already persisted for the period
// @Summary Screen for duplicate budget conflicts
// @Description Return every included allocation whose category, type and period collide with an existing budget
// @Tags Plans
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} dto.ConflictListResponse "Detected conflicts"
// @Failure 404 {object} errors.ErrorResponse "PLAN_001 - Session not found"
// @Router /plans/{sessionId}/conflicts [get]
func (h *PlanHandler) ScreenConflicts(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	conflicts, err := h.plannerService.ScreenConflicts(sessionID)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewConflictListResponse(conflicts))
}

// CommitPlan persists the included allocations as budgets
// @Summary Commit the plan
// @Description Create one budget per included allocation. Creations are best-effort; failed allocations stay in the session for retry, with no rollback of the successes.
// @Tags Plans
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param request body dto.CommitPlanRequest true "Commit options"
// @Success 200 {object} dto.CommitPlanResponse "Partial outcome; failed allocations are retryable"
// @Success 201 {object} dto.CommitPlanResponse "All budgets created"
// @Failure 404 {object} errors.ErrorResponse "PLAN_001 - Session not found"
// @Failure 409 {object} errors.ErrorResponse "PLAN_004 - Unresolved duplicate conflicts"
// @Router /plans/{sessionId}/commit [post]
func (h *PlanHandler) CommitPlan(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.CommitPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	opts := services.CommitOptions{
		IncludeIncomeBudget: req.IncludeIncomeBudget,
		RemoveConflicting:   req.RemoveConflicting,
	}

	result, err := h.plannerService.Commit(c.Request().Context(), sessionID, opts)
	if err != nil {
		return h.mapPlanError(c, err)
	}

	status := http.StatusCreated
	if len(result.FailedAllocations) > 0 {
		status = http.StatusOK
	}
	return c.JSON(status, dto.NewCommitPlanResponse(result))
}

// DiscardPlan drops a session without committing
// @Summary Discard a planning session
// @Tags Plans
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Session discarded"
// @Router /plans/{sessionId} [delete]
func (h *PlanHandler) DiscardPlan(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	h.plannerService.DiscardSession(sessionID)

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Planning session discarded"})
}

// mapPlanError translates service errors to standardized API error responses
func (h *PlanHandler) mapPlanError(c echo.Context, err error) error {
	switch {
	case err == services.ErrSessionNotFound:
		return SendError(c, errors.PlanSessionNotFound)
	case err == services.ErrAllocationNotFound:
		return SendError(c, errors.PlanItemNotFound)
	case err == services.ErrDuplicateAllocation:
		return SendError(c, errors.PlanDuplicateItem)
	case err == services.ErrEmptyLabelAndCategory:
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case err == services.ErrNonPositiveAmount:
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case err == services.ErrInvalidSavingsRate:
		return SendError(c, errors.PlanInvalidSavingsRate)
	case err == services.ErrNegativeIncome:
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case err == services.ErrInvalidItemType:
		return SendError(c, errors.BudgetInvalidType)
	}

	var conflictsErr *services.ConflictsError
	if stderrors.As(err, &conflictsErr) {
		return SendError(c, errors.PlanConflictsDetected, errors.WithDetails(conflictsErr.Error()))
	}

	return SendSystemError(c, err)
}
