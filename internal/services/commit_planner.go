package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"budget-planner/internal/models"
	"budget-planner/internal/repositories"

	"github.com/shopspring/decimal"
)

const defaultMaxCommitWorkers = 8

// CommitOptions configures a single commit
type CommitOptions struct {
	// IncludeIncomeBudget synthesizes an INCOME budget for the full monthly
	// income so planned income can later be compared against actuals
	IncludeIncomeBudget bool
	MonthlyIncome       decimal.Decimal
	// RemoveConflicting resolves duplicate conflicts by dropping the
	// conflicting allocations from the ledger before committing the rest.
	// Without it, any detected conflict blocks the commit.
	RemoveConflicting bool
}

// CommitResult is the aggregate outcome of a commit. Creations are
// best-effort: a partial failure leaves some budgets persisted and others
// not, with no rollback of the successes.
type CommitResult struct {
	CreatedCount int `json:"created_count"`
	// CreatedBudgets holds the persisted records, in dispatch order
	CreatedBudgets []models.Budget `json:"created_budgets"`
	// FailedAllocations must stay in the caller's ledger so the user can
	// retry them instead of losing the line items
	FailedAllocations []models.Allocation `json:"failed_allocations"`
}

// commitPlanner implements CommitPlannerInterface
type commitPlanner struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
	maxWorkers int
}

// NewCommitPlanner creates a new CommitPlannerInterface instance
func NewCommitPlanner(budgetRepo repositories.BudgetRepositoryInterface, metrics MetricsRecorderInterface, maxWorkers int) CommitPlannerInterface {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxCommitWorkers
	}
	return &commitPlanner{
		budgetRepo: budgetRepo,
		metrics:    metrics,
		maxWorkers: maxWorkers,
	}
}

// Commit persists one budget per included, positive-amount allocation. The
// creation calls run concurrently; each outcome is tracked individually and
// a failure never aborts sibling requests.
func (p *commitPlanner) Commit(ctx context.Context, allocations []models.Allocation, year, month int, opts CommitOptions) *CommitResult {
	startTime := time.Now()

	batch := make([]models.Allocation, 0, len(allocations)+1)
	for _, allocation := range allocations {
		if allocation.Included && allocation.Amount.GreaterThan(decimal.Zero) {
			batch = append(batch, allocation)
		}
	}

	if opts.IncludeIncomeBudget && opts.MonthlyIncome.GreaterThan(decimal.Zero) {
		batch = append(batch, p.incomeAllocation(opts.MonthlyIncome))
	}

	outcomes := make([]error, len(batch))
	created := make([]*models.Budget, len(batch))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.maxWorkers)

	for i := range batch {
		if ctx.Err() != nil {
			outcomes[i] = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			budget := batch[i].ToBudget(year, month)
			if err := p.budgetRepo.Create(budget); err != nil {
				outcomes[i] = err
				return
			}
			created[i] = budget
		}(i)
	}

	wg.Wait()

	result := &CommitResult{
		CreatedBudgets:    make([]models.Budget, 0, len(batch)),
		FailedAllocations: make([]models.Allocation, 0),
	}

	for i, err := range outcomes {
		if err != nil {
			slog.Error("budget creation failed",
				"allocation_id", batch[i].ID,
				"category", batch[i].Category.Key,
				"error", err.Error())
			p.metrics.RecordCommitFailure()
			result.FailedAllocations = append(result.FailedAllocations, batch[i])
			continue
		}

		p.metrics.RecordBudgetCreated(batch[i].Type)
		result.CreatedCount++
		result.CreatedBudgets = append(result.CreatedBudgets, *created[i])
	}

	p.metrics.RecordCommitDuration(time.Since(startTime))

	slog.Info("budget commit completed",
		"year", year,
		"month", month,
		"created", result.CreatedCount,
		"failed", len(result.FailedAllocations))

	return result
}

func (p *commitPlanner) incomeAllocation(income decimal.Decimal) models.Allocation {
	return models.Allocation{
		ID:       "income-" + models.CategoryIncome,
		Label:    "Monthly Income",
		Category: models.CanonicalCategoryKey(models.CategoryIncome),
		Amount:   income.Round(2),
		Type:     models.BudgetTypeIncome,
		Included: true,
		Origin:   models.OriginSuggested,
	}
}
