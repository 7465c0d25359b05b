package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryTiers(t *testing.T) {
	essentials := EssentialCategories()
	lifestyle := LifestyleCategories()

	assert.Len(t, essentials, 5)
	assert.Len(t, lifestyle, 5)

	// The two tiers must not overlap
	for _, e := range essentials {
		assert.NotContains(t, lifestyle, e)
	}

	spending := AllSpendingCategories()
	assert.Len(t, spending, 10)
	assert.Equal(t, CategoryHousing, spending[0])
	assert.Equal(t, CategoryTravel, spending[len(spending)-1])
}

func TestIsCanonicalCategory(t *testing.T) {
	for _, key := range AllCanonicalCategories() {
		assert.True(t, IsCanonicalCategory(key), key)
	}

	assert.False(t, IsCanonicalCategory("Housing"))
	assert.False(t, IsCanonicalCategory("groceries"))
	assert.False(t, IsCanonicalCategory(""))
}

func TestCanonicalCategoryKey(t *testing.T) {
	key := CanonicalCategoryKey(CategoryFood)
	assert.Equal(t, "food", key.Key)
	assert.Equal(t, "Food", key.Label)
}

func TestCategoryResolver_Resolve(t *testing.T) {
	customID := uuid.New()
	resolver := NewCategoryResolver([]Category{
		{ID: customID, Name: "Pet Supplies", Type: BudgetTypeExpense},
	})

	tests := []struct {
		name      string
		raw       string
		wantKey   string
		wantLabel string
	}{
		{
			name:      "user-defined category ID",
			raw:       customID.String(),
			wantKey:   customID.String(),
			wantLabel: "Pet Supplies",
		},
		{
			name:      "canonical key",
			raw:       "housing",
			wantKey:   "housing",
			wantLabel: "Housing",
		},
		{
			name:      "canonical key with whitespace and case",
			raw:       "  Housing ",
			wantKey:   "housing",
			wantLabel: "Housing",
		},
		{
			name:      "unknown reference passes through",
			raw:       "gifts",
			wantKey:   "gifts",
			wantLabel: "gifts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.raw)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestCategory_BeforeCreate(t *testing.T) {
	category := Category{Name: "Pet Supplies", Type: BudgetTypeExpense}

	err := category.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.False(t, category.CreatedAt.IsZero())
	assert.False(t, category.UpdatedAt.IsZero())
}

func TestCategory_BeforeCreate_InvalidFields(t *testing.T) {
	missingName := Category{Type: BudgetTypeExpense}
	assert.ErrorIs(t, missingName.BeforeCreate(nil), ErrCategoryNameRequired)

	badType := Category{Name: "Pet Supplies", Type: "SPENDING"}
	assert.ErrorIs(t, badType.BeforeCreate(nil), ErrInvalidBudgetType)
}
