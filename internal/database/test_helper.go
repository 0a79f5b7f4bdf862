package database

import (
	"fmt"
	"testing"
	"time"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/google/uuid"
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

func CreateTestLedgerEntry(t *testing.T, db *DB, userID uuid.UUID, entryType string, amount float64, occurredAt time.Time) *models.LedgerEntry {
	t.Helper()

	category := models.CategoryOther
	if entryType == models.EntryTypeIncome {
		category = models.CategorySalary
	}

	entry := &models.LedgerEntry{
		UserID:     userID,
		EntryType:  entryType,
		Amount:     decimal.NewFromFloat(amount),
		Category:   category,
		OccurredAt: occurredAt,
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test ledger entry: %v", err)
	}

	return entry
}

func CreateTestGoal(t *testing.T, db *DB, userID uuid.UUID, target, current float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          "Test goal",
		TargetAmount:  decimal.NewFromFloat(target),
		CurrentAmount: decimal.NewFromFloat(current),
		IsActive:      true,
	}

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"forecasts",
		"goals",
		"ledger_entries",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
