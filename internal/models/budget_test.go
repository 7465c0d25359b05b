package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestBudget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid monthly expense budget",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromFloat(480.00),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: false,
		},
		{
			name: "valid yearly investment budget",
			budget: Budget{
				Name:     "Index Fund",
				Type:     BudgetTypeInvestment,
				Category: CategorySavings,
				Amount:   decimal.NewFromInt(12000),
				Period:   BudgetPeriodYearly,
				Year:     2026,
			},
			wantErr: false,
		},
		{
			name: "valid income budget",
			budget: Budget{
				Name:     "Monthly Salary",
				Type:     BudgetTypeIncome,
				Category: CategoryIncome,
				Amount:   decimal.NewFromInt(6000),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: false,
		},
		{
			name: "missing name",
			budget: Budget{
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  "budget name is required",
		},
		{
			name: "invalid type",
			budget: Budget{
				Name:     "Food Budget",
				Type:     "SPENDING",
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  ErrInvalidBudgetType.Error(),
		},
		{
			name: "invalid period",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   "WEEKLY",
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  ErrInvalidBudgetPeriod.Error(),
		},
		{
			name: "missing category",
			budget: Budget{
				Name:   "Food Budget",
				Type:   BudgetTypeExpense,
				Amount: decimal.NewFromInt(100),
				Period: BudgetPeriodMonthly,
				Year:   2026,
				Month:  intPtr(9),
			},
			wantErr: true,
			errMsg:  "budget category is required",
		},
		{
			name: "zero amount",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.Zero,
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  ErrInvalidBudgetAmount.Error(),
		},
		{
			name: "negative amount",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(-50),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  ErrInvalidBudgetAmount.Error(),
		},
		{
			name: "year out of range",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   BudgetPeriodMonthly,
				Year:     1999,
				Month:    intPtr(9),
			},
			wantErr: true,
			errMsg:  "budget year is out of range",
		},
		{
			name: "monthly without month",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
			},
			wantErr: true,
			errMsg:  "month is required for monthly budgets",
		},
		{
			name: "month out of range",
			budget: Budget{
				Name:     "Food Budget",
				Type:     BudgetTypeExpense,
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Period:   BudgetPeriodMonthly,
				Year:     2026,
				Month:    intPtr(13),
			},
			wantErr: true,
			errMsg:  ErrInvalidBudgetMonth.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_MatchesPeriod(t *testing.T) {
	budget := Budget{
		Name:     "Food Budget",
		Type:     BudgetTypeExpense,
		Category: CategoryFood,
		Amount:   decimal.NewFromInt(480),
		Period:   BudgetPeriodMonthly,
		Year:     2026,
		Month:    intPtr(9),
	}

	assert.True(t, budget.MatchesPeriod(CategoryFood, BudgetTypeExpense, 2026, 9))
	assert.False(t, budget.MatchesPeriod(CategoryFood, BudgetTypeExpense, 2026, 10))
	assert.False(t, budget.MatchesPeriod(CategoryFood, BudgetTypeExpense, 2025, 9))
	assert.False(t, budget.MatchesPeriod(CategoryFood, BudgetTypeIncome, 2026, 9))
	assert.False(t, budget.MatchesPeriod(CategoryHousing, BudgetTypeExpense, 2026, 9))

	yearly := Budget{
		Name:     "Index Fund",
		Type:     BudgetTypeInvestment,
		Category: CategorySavings,
		Amount:   decimal.NewFromInt(12000),
		Period:   BudgetPeriodYearly,
		Year:     2026,
	}
	assert.False(t, yearly.MatchesPeriod(CategorySavings, BudgetTypeInvestment, 2026, 9))
}

func TestIsValidBudgetType(t *testing.T) {
	assert.True(t, IsValidBudgetType(BudgetTypeIncome))
	assert.True(t, IsValidBudgetType(BudgetTypeExpense))
	assert.True(t, IsValidBudgetType(BudgetTypeInvestment))
	assert.False(t, IsValidBudgetType("expense"))
	assert.False(t, IsValidBudgetType(""))
	assert.False(t, IsValidBudgetType("SPENDING"))
}

func TestIsValidBudgetPeriod(t *testing.T) {
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodMonthly))
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodYearly))
	assert.False(t, IsValidBudgetPeriod("WEEKLY"))
	assert.False(t, IsValidBudgetPeriod(""))
}
