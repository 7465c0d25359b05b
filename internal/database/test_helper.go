package database

import (
	"testing"
	"time"

	"budget-planner/internal/config"
	"budget-planner/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if db == nil {
		return
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Logf("failed to get underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestBudget(t *testing.T, db *DB, category, budgetType string, amount float64, year, month int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Name:     category,
		Type:     budgetType,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Period:   models.BudgetPeriodMonthly,
		Year:     year,
		Month:    &month,
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestTransaction(t *testing.T, db *DB, category string, amount float64, occurredAt time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Category:    category,
		Type:        models.BudgetTypeExpense,
		Amount:      decimal.NewFromFloat(amount),
		Description: "test spending",
		OccurredAt:  occurredAt,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}
