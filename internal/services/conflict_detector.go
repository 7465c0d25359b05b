package services

import (
	"budget-planner/internal/models"
)

// Conflict pairs a candidate allocation with the persisted budget it collides
// with. A non-empty conflict set blocks commit; the detector itself never
// mutates the ledger or drops items.
type Conflict struct {
	Allocation models.Allocation `json:"allocation"`
	Existing   models.Budget     `json:"existing_budget"`
}

// conflictDetector implements ConflictDetectorInterface
type conflictDetector struct{}

// NewConflictDetector creates a new ConflictDetectorInterface instance
func NewConflictDetector() ConflictDetectorInterface {
	return &conflictDetector{}
}

// Detect returns exactly the included allocations whose
// (category, type, year, month) matches a persisted budget
func (d *conflictDetector) Detect(allocations []models.Allocation, existingBudgets []models.Budget, year, month int) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, allocation := range allocations {
		if !allocation.Included {
			continue
		}

		for _, budget := range existingBudgets {
			if budget.MatchesPeriod(allocation.Category.Key, allocation.Type, year, month) {
				conflicts = append(conflicts, Conflict{
					Allocation: allocation,
					Existing:   budget,
				})
				break
			}
		}
	}

	return conflicts
}
