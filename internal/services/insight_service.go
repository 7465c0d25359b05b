package services

import (
	"fmt"
	"log/slog"
	"sort"

	"budget-planner/internal/models"
	"budget-planner/internal/repositories"
)

// insightService implements InsightServiceInterface by aggregating recorded
// spending per category for the requested month and the month before it
type insightService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	spendingRepo repositories.SpendingRepositoryInterface
}

// NewInsightService creates a new InsightServiceInterface instance
func NewInsightService(
	categoryRepo repositories.CategoryRepositoryInterface,
	spendingRepo repositories.SpendingRepositoryInterface,
) InsightServiceInterface {
	return &insightService{
		categoryRepo: categoryRepo,
		spendingRepo: spendingRepo,
	}
}

// GetCategories returns all user-defined categories
func (s *insightService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// GetCategoryInsights aggregates spending for the given month and the month
// before it into per-category insights
func (s *insightService) GetCategoryInsights(year, month int) ([]models.CategoryInsight, error) {
	current, err := s.spendingRepo.GetCategoryTotals(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate current month totals: %w", err)
	}

	prevYear, prevMonth := previousMonth(year, month)
	previous, err := s.spendingRepo.GetCategoryTotals(prevYear, prevMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate previous month totals: %w", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	resolver := models.NewCategoryResolver(categories)

	byCategory := make(map[string]*models.CategoryInsight)
	for _, total := range current {
		insight := s.insightFor(byCategory, resolver, total.Category)
		insight.CurrentMonth = models.MonthTotals{
			Total:            total.Total,
			TransactionCount: total.TransactionCount,
		}
	}
	for _, total := range previous {
		insight := s.insightFor(byCategory, resolver, total.Category)
		insight.PreviousMonth = models.MonthTotals{
			Total:            total.Total,
			TransactionCount: total.TransactionCount,
		}
	}

	insights := make([]models.CategoryInsight, 0, len(byCategory))
	for _, insight := range byCategory {
		insights = append(insights, *insight)
	}
	sort.Slice(insights, func(i, j int) bool {
		return insights[i].CategoryKey < insights[j].CategoryKey
	})

	slog.Debug("category insights computed",
		"year", year,
		"month", month,
		"categories", len(insights))

	return insights, nil
}

func (s *insightService) insightFor(byCategory map[string]*models.CategoryInsight, resolver *models.CategoryResolver, rawCategory string) *models.CategoryInsight {
	key := resolver.Resolve(rawCategory)
	if insight, ok := byCategory[key.Key]; ok {
		return insight
	}

	insight := &models.CategoryInsight{
		CategoryKey: key.Key,
		Name:        key.Label,
	}
	byCategory[key.Key] = insight
	return insight
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
