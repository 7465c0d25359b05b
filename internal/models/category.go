package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical global categories used by the suggestion templates
const (
	CategoryHousing       = "housing"
	CategoryUtilities     = "utilities"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryHealthcare    = "healthcare"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryClothing      = "clothing"
	CategorySubscriptions = "subscriptions"
	CategoryTravel        = "travel"
	CategorySavings       = "savings"
	CategoryIncome        = "income"
)

var ErrCategoryNameRequired = errors.New("category name is required")

// EssentialCategories returns the fixed essential category set in template order.
// The essential tier receives 50% of the available pool.
func EssentialCategories() []string {
	return []string{
		CategoryHousing,
		CategoryUtilities,
		CategoryFood,
		CategoryTransport,
		CategoryHealthcare,
	}
}

// LifestyleCategories returns the fixed lifestyle category set in template order.
// The lifestyle tier receives 30% of the available pool.
func LifestyleCategories() []string {
	return []string{
		CategoryEntertainment,
		CategoryShopping,
		CategoryClothing,
		CategorySubscriptions,
		CategoryTravel,
	}
}

// AllCanonicalCategories returns every canonical category key
func AllCanonicalCategories() []string {
	return []string{
		CategoryHousing,
		CategoryUtilities,
		CategoryFood,
		CategoryTransport,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryShopping,
		CategoryClothing,
		CategorySubscriptions,
		CategoryTravel,
		CategorySavings,
		CategoryIncome,
	}
}

// AllSpendingCategories returns the essential and lifestyle categories, the
// set that spending transactions are recorded against.
func AllSpendingCategories() []string {
	return append(EssentialCategories(), LifestyleCategories()...)
}

// IsCanonicalCategory checks if a category key is one of the canonical set
func IsCanonicalCategory(key string) bool {
	for _, c := range AllCanonicalCategories() {
		if key == c {
			return true
		}
	}
	return false
}

// Category represents a user-defined spending category
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Color     string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidBudgetType(c.Type) {
		return ErrInvalidBudgetType
	}

	return nil
}

// CategoryKey is the canonical identity of a category after resolution.
// A raw category reference may be either a canonical key or a user-defined
// category ID; resolution happens exactly once when categories are loaded,
// and everything downstream works with the resolved pair.
type CategoryKey struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CanonicalCategoryKey builds the CategoryKey for a canonical category
func CanonicalCategoryKey(key string) CategoryKey {
	return CategoryKey{Key: key, Label: titleCase(key)}
}

// CategoryResolver resolves raw category references against the loaded
// user-defined categories and the canonical set
type CategoryResolver struct {
	byID map[string]Category
}

// NewCategoryResolver builds a resolver over the given user-defined categories
func NewCategoryResolver(categories []Category) *CategoryResolver {
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID.String()] = c
	}
	return &CategoryResolver{byID: byID}
}

// Resolve maps a raw category reference to its canonical CategoryKey.
// User-defined category IDs resolve to {id, name}; canonical keys resolve to
// {key, title-cased label}; anything else passes through unchanged so the
// ledger can still display it.
func (r *CategoryResolver) Resolve(raw string) CategoryKey {
	if c, ok := r.byID[raw]; ok {
		return CategoryKey{Key: c.ID.String(), Label: c.Name}
	}

	key := strings.ToLower(strings.TrimSpace(raw))
	if IsCanonicalCategory(key) {
		return CategoryKey{Key: key, Label: titleCase(key)}
	}

	return CategoryKey{Key: raw, Label: raw}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
