package dto

import (
	"budget-planner/internal/models"
	"budget-planner/internal/services"

	"github.com/shopspring/decimal"
)

// Plan Request DTOs

// StartPlanRequest represents the request payload for starting a planning session
type StartPlanRequest struct {
	MonthlyIncome string `json:"monthly_income" validate:"required"`
	SavingsRate   string `json:"savings_rate" validate:"required,savings_rate"`
	Year          int    `json:"year" validate:"required,min=2000,max=2100"`
	Month         int    `json:"month" validate:"required,budget_month"`
}

// UpdatePlanInputsRequest represents the request payload for changing the
// income or savings rate of a session. All suggested items are recomputed.
type UpdatePlanInputsRequest struct {
	MonthlyIncome string `json:"monthly_income" validate:"required"`
	SavingsRate   string `json:"savings_rate" validate:"required,savings_rate"`
}

// SetItemAmountRequest represents the request payload for editing an allocation amount
type SetItemAmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// AddCustomItemRequest represents the request payload for adding a custom allocation
type AddCustomItemRequest struct {
	Label    string `json:"label" validate:"max=100"`
	Category string `json:"category" validate:"max=100"`
	Type     string `json:"type" validate:"omitempty,budget_type"`
	Amount   string `json:"amount" validate:"required,positive_amount"`
}

// CommitPlanRequest represents the request payload for committing a plan
type CommitPlanRequest struct {
	IncludeIncomeBudget bool `json:"include_income_budget"`
	RemoveConflicting   bool `json:"remove_conflicting"`
}

// Plan Response DTOs

// PlanItemResponse represents a single allocation line item
type PlanItemResponse struct {
	ID       string                  `json:"id"`
	Label    string                  `json:"label"`
	Category models.CategoryKey      `json:"category"`
	Amount   decimal.Decimal         `json:"amount"`
	Type     string                  `json:"type"`
	Included bool                    `json:"included"`
	Origin   string                  `json:"origin"`
	Insight  *models.SpendingInsight `json:"insight,omitempty"`
}

// PlanResponse represents the full state of a planning session
type PlanResponse struct {
	SessionID            string             `json:"session_id"`
	Year                 int                `json:"year"`
	Month                int                `json:"month"`
	MonthlyIncome        decimal.Decimal    `json:"monthly_income"`
	SavingsRate          decimal.Decimal    `json:"savings_rate"`
	Savings              decimal.Decimal    `json:"savings"`
	AvailablePool        decimal.Decimal    `json:"available_pool"`
	Items                []PlanItemResponse `json:"items"`
	TotalAllocated       decimal.Decimal    `json:"total_allocated"`
	RemainingPool        decimal.Decimal    `json:"remaining_pool"`
	AllocationPercentage decimal.Decimal    `json:"allocation_percentage"`
}

// NewPlanResponse maps a planning session to its API representation
func NewPlanResponse(session *services.PlanSession) *PlanResponse {
	items := session.Ledger.Items()
	totals := session.Ledger.Totals()

	itemResponses := make([]PlanItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, PlanItemResponse{
			ID:       item.ID,
			Label:    item.Label,
			Category: item.Category,
			Amount:   item.Amount,
			Type:     item.Type,
			Included: item.Included,
			Origin:   item.Origin,
			Insight:  item.Insight,
		})
	}

	return &PlanResponse{
		SessionID:            session.ID.String(),
		Year:                 session.Year,
		Month:                session.Month,
		MonthlyIncome:        session.Income,
		SavingsRate:          session.SavingsRate,
		Savings:              session.Savings,
		AvailablePool:        session.AvailablePool,
		Items:                itemResponses,
		TotalAllocated:       totals.TotalAllocated,
		RemainingPool:        totals.RemainingPool,
		AllocationPercentage: totals.AllocationPercentage,
	}
}

// ConflictResponse represents one duplicate budget collision
type ConflictResponse struct {
	Allocation PlanItemResponse `json:"allocation"`
	Existing   models.Budget    `json:"existing_budget"`
}

// ConflictListResponse represents the result of screening a plan for conflicts
type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
	Count     int                `json:"count"`
}

// NewConflictListResponse maps detected conflicts to their API representation
func NewConflictListResponse(conflicts []services.Conflict) *ConflictListResponse {
	responses := make([]ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		responses = append(responses, ConflictResponse{
			Allocation: PlanItemResponse{
				ID:       c.Allocation.ID,
				Label:    c.Allocation.Label,
				Category: c.Allocation.Category,
				Amount:   c.Allocation.Amount,
				Type:     c.Allocation.Type,
				Included: c.Allocation.Included,
				Origin:   c.Allocation.Origin,
			},
			Existing: c.Existing,
		})
	}
	return &ConflictListResponse{
		Conflicts: responses,
		Count:     len(responses),
	}
}

// CommitPlanResponse represents the aggregate outcome of a commit
type CommitPlanResponse struct {
	CreatedCount      int                `json:"created_count"`
	CreatedBudgets    []models.Budget    `json:"created_budgets"`
	FailedAllocations []PlanItemResponse `json:"failed_allocations"`
}

// NewCommitPlanResponse maps a commit result to its API representation
func NewCommitPlanResponse(result *services.CommitResult) *CommitPlanResponse {
	failed := make([]PlanItemResponse, 0, len(result.FailedAllocations))
	for _, a := range result.FailedAllocations {
		failed = append(failed, PlanItemResponse{
			ID:       a.ID,
			Label:    a.Label,
			Category: a.Category,
			Amount:   a.Amount,
			Type:     a.Type,
			Included: a.Included,
			Origin:   a.Origin,
		})
	}
	return &CommitPlanResponse{
		CreatedCount:      result.CreatedCount,
		CreatedBudgets:    result.CreatedBudgets,
		FailedAllocations: failed,
	}
}
