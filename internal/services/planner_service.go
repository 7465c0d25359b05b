package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-planner/internal/models"
	"budget-planner/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSavingsRate = errors.New("savings rate must be between 0 and 100")
	ErrNegativeIncome     = errors.New("income cannot be negative")
	ErrInvalidItemType    = errors.New("invalid allocation type")
)

// ConflictsError blocks a commit while duplicate conflicts remain unresolved
type ConflictsError struct {
	Conflicts []Conflict
}

func (e *ConflictsError) Error() string {
	return fmt.Sprintf("plan conflicts with %d existing budget(s)", len(e.Conflicts))
}

// plannerService implements PlannerServiceInterface. It owns the session
// store and wires the calculator, detector and commit planner together.
type plannerService struct {
	calculator AllocationCalculatorInterface
	detector   ConflictDetectorInterface
	committer  CommitPlannerInterface
	insights   InsightServiceInterface
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
	store      *LedgerStore
}

// NewPlannerService creates a new PlannerServiceInterface instance
func NewPlannerService(
	calculator AllocationCalculatorInterface,
	detector ConflictDetectorInterface,
	committer CommitPlannerInterface,
	insights InsightServiceInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	store *LedgerStore,
) PlannerServiceInterface {
	return &plannerService{
		calculator: calculator,
		detector:   detector,
		committer:  committer,
		insights:   insights,
		budgetRepo: budgetRepo,
		metrics:    metrics,
		store:      store,
	}
}

// StartSession derives savings and the available pool from the stated income
// and rate, seeds the ledger with suggestions and registers the session
func (s *plannerService) StartSession(income, savingsRate decimal.Decimal, year, month int) (*PlanSession, error) {
	if err := validateInputs(income, savingsRate); err != nil {
		return nil, err
	}

	savings := s.calculator.ComputeSavings(income, savingsRate)
	pool := s.calculator.ComputeAvailablePool(income, savings)

	suggestions, err := s.generateSuggestions(pool, year, month)
	if err != nil {
		return nil, err
	}

	session := &PlanSession{
		ID:            uuid.New(),
		Year:          year,
		Month:         month,
		Income:        income,
		SavingsRate:   savingsRate,
		Savings:       savings,
		AvailablePool: pool,
		Ledger:        NewAllocationLedger(pool, suggestions),
	}
	s.store.Put(session)

	slog.Info("planning session started",
		"session_id", session.ID,
		"year", year,
		"month", month,
		"available_pool", pool.String(),
		"suggestions", len(suggestions))

	return session, nil
}

// GetSession returns a live session by ID
func (s *plannerService) GetSession(id uuid.UUID) (*PlanSession, error) {
	return s.store.Get(id)
}

// UpdateInputs recomputes the session for changed income or rate. All
// suggested items are replaced with a fresh set; custom items are kept.
// Back-to-back updates are idempotent with respect to final state.
func (s *plannerService) UpdateInputs(id uuid.UUID, income, savingsRate decimal.Decimal) (*PlanSession, error) {
	if err := validateInputs(income, savingsRate); err != nil {
		return nil, err
	}

	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	savings := s.calculator.ComputeSavings(income, savingsRate)
	pool := s.calculator.ComputeAvailablePool(income, savings)

	suggestions, err := s.generateSuggestions(pool, session.Year, session.Month)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Income = income
	session.SavingsRate = savingsRate
	session.Savings = savings
	session.AvailablePool = pool
	session.Ledger.ReplaceSuggestions(pool, suggestions)

	return session, nil
}

// ToggleItem flips an allocation's inclusion in totals and commit
func (s *plannerService) ToggleItem(sessionID uuid.UUID, itemID string) (*PlanSession, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if err := session.Ledger.ToggleInclusion(itemID); err != nil {
		return nil, err
	}
	return session, nil
}

// SetItemAmount updates an allocation's amount
func (s *plannerService) SetItemAmount(sessionID uuid.UUID, itemID string, amount decimal.Decimal) (*PlanSession, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if err := session.Ledger.SetAmount(itemID, amount); err != nil {
		return nil, err
	}
	return session, nil
}

// AddCustomItem appends a user-defined allocation to the ledger. The raw
// category reference is resolved once, against the loaded categories.
func (s *plannerService) AddCustomItem(sessionID uuid.UUID, label, category, budgetType string, amount decimal.Decimal) (*PlanSession, error) {
	if budgetType != "" && !models.IsValidBudgetType(budgetType) {
		return nil, ErrInvalidItemType
	}
	if budgetType == "" {
		budgetType = models.BudgetTypeExpense
	}

	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	categories, err := s.insights.GetCategories()
	if err != nil {
		return nil, err
	}
	key := models.NewCategoryResolver(categories).Resolve(category)
	if category == "" {
		key = models.CategoryKey{}
	}

	session.Lock()
	defer session.Unlock()

	if _, err := session.Ledger.AddCustom(label, key, budgetType, amount); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveItem deletes an allocation from the ledger
func (s *plannerService) RemoveItem(sessionID uuid.UUID, itemID string) (*PlanSession, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if err := session.Ledger.Remove(itemID); err != nil {
		return nil, err
	}
	return session, nil
}

// ScreenConflicts compares the included allocations against the budgets
// already persisted for the session's period
func (s *plannerService) ScreenConflicts(sessionID uuid.UUID) ([]Conflict, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.GetByPeriod(session.Year, session.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for period: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	conflicts := s.detector.Detect(session.Ledger.IncludedItems(), existing, session.Year, session.Month)
	s.metrics.RecordConflictsDetected(len(conflicts))

	return conflicts, nil
}

// Commit screens for conflicts one last time and, if the plan is clean,
// persists the included allocations. Successes leave the ledger; failed
// allocations stay in it for retry. A session with nothing left is
// discarded.
func (s *plannerService) Commit(ctx context.Context, sessionID uuid.UUID, opts CommitOptions) (*CommitResult, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.GetByPeriod(session.Year, session.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for period: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	conflicts := s.detector.Detect(session.Ledger.IncludedItems(), existing, session.Year, session.Month)
	if len(conflicts) > 0 {
		s.metrics.RecordConflictsDetected(len(conflicts))
		if !opts.RemoveConflicting {
			return nil, &ConflictsError{Conflicts: conflicts}
		}

		ids := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			ids = append(ids, c.Allocation.ID)
		}
		session.Ledger.RemoveAll(ids)
	}

	opts.MonthlyIncome = session.Income

	batch := session.Ledger.IncludedItems()
	result := s.committer.Commit(ctx, batch, session.Year, session.Month, opts)

	s.clearCommitted(session, batch, result)

	if len(result.FailedAllocations) == 0 {
		s.store.Delete(session.ID)
	}

	return result, nil
}

// DiscardSession drops a session without committing
func (s *plannerService) DiscardSession(id uuid.UUID) {
	s.store.Delete(id)
}

// clearCommitted removes successfully persisted allocations from the ledger
// so a retry never re-submits them, while failed ones remain selectable
func (s *plannerService) clearCommitted(session *PlanSession, batch []models.Allocation, result *CommitResult) {
	failed := make(map[string]bool, len(result.FailedAllocations))
	for _, allocation := range result.FailedAllocations {
		failed[allocation.ID] = true
	}

	committed := make([]string, 0, len(batch))
	for _, allocation := range batch {
		if !failed[allocation.ID] {
			committed = append(committed, allocation.ID)
		}
	}
	session.Ledger.RemoveAll(committed)
}

func (s *plannerService) generateSuggestions(pool decimal.Decimal, year, month int) ([]models.Allocation, error) {
	existing, err := s.budgetRepo.GetByPeriod(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for period: %w", err)
	}

	insights, err := s.insights.GetCategoryInsights(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load category insights: %w", err)
	}

	return s.calculator.GenerateSuggestions(pool, existing, insights), nil
}

func validateInputs(income, savingsRate decimal.Decimal) error {
	if income.IsNegative() {
		return ErrNegativeIncome
	}
	if savingsRate.IsNegative() || savingsRate.GreaterThan(oneHundred) {
		return ErrInvalidSavingsRate
	}
	return nil
}
