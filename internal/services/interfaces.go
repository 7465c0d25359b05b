package services

import (
	"context"
	"time"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationCalculatorInterface derives savings, the available spending pool
// and suggested allocations from income, a savings rate and spending insights
type AllocationCalculatorInterface interface {
	// ComputeSavings returns income * ratePercent / 100, floored at zero
	ComputeSavings(income, ratePercent decimal.Decimal) decimal.Decimal

	// ComputeAvailablePool returns income - savings, floored at zero
	ComputeAvailablePool(income, savings decimal.Decimal) decimal.Decimal

	// GenerateSuggestions proposes allocations for the available pool.
	// Categories already budgeted in existingBudgets (same type and period)
	// are excluded at source; a current-month insight total overrides the
	// tier's equal share.
	GenerateSuggestions(pool decimal.Decimal, existingBudgets []models.Budget, insights []models.CategoryInsight) []models.Allocation
}

// ConflictDetectorInterface screens candidate allocations against budgets
// already persisted for the same period
type ConflictDetectorInterface interface {
	// Detect returns one conflict per included allocation whose
	// (category, type, year, month) matches an existing budget. It never
	// mutates the inputs; resolution is an explicit caller action.
	Detect(allocations []models.Allocation, existingBudgets []models.Budget, year, month int) []Conflict
}

// CommitPlannerInterface turns a conflict-free allocation set into persisted
// budgets and reports the per-item outcome
type CommitPlannerInterface interface {
	// Commit creates one budget per included, positive-amount allocation.
	// Creations run concurrently with no atomicity across the batch; failed
	// allocations are reported back so the caller can retry them.
	Commit(ctx context.Context, allocations []models.Allocation, year, month int, opts CommitOptions) *CommitResult
}

// InsightServiceInterface provides category definitions and historical
// spending insights used to seed suggestions
type InsightServiceInterface interface {
	GetCategories() ([]models.Category, error)
	GetCategoryInsights(year, month int) ([]models.CategoryInsight, error)
}

// PlannerServiceInterface orchestrates planning sessions end to end: seeding
// the ledger, applying edits, screening conflicts and committing
type PlannerServiceInterface interface {
	StartSession(income, savingsRate decimal.Decimal, year, month int) (*PlanSession, error)
	GetSession(id uuid.UUID) (*PlanSession, error)
	UpdateInputs(id uuid.UUID, income, savingsRate decimal.Decimal) (*PlanSession, error)
	ToggleItem(sessionID uuid.UUID, itemID string) (*PlanSession, error)
	SetItemAmount(sessionID uuid.UUID, itemID string, amount decimal.Decimal) (*PlanSession, error)
	AddCustomItem(sessionID uuid.UUID, label, category, budgetType string, amount decimal.Decimal) (*PlanSession, error)
	RemoveItem(sessionID uuid.UUID, itemID string) (*PlanSession, error)
	ScreenConflicts(sessionID uuid.UUID) ([]Conflict, error)
	Commit(ctx context.Context, sessionID uuid.UUID, opts CommitOptions) (*CommitResult, error)
	DiscardSession(id uuid.UUID)
}

// SpendingGeneratorInterface seeds realistic spending data for development
// and demo environments
type SpendingGeneratorInterface interface {
	// GenerateMonthlySpending creates expense transactions for the given
	// month and returns how many were persisted
	GenerateMonthlySpending(year, month int) (int, error)
}

// MetricsRecorderInterface records planner metrics
type MetricsRecorderInterface interface {
	RecordBudgetCreated(budgetType string)
	RecordCommitFailure()
	RecordCommitDuration(duration time.Duration)
	RecordConflictsDetected(count int)
}
