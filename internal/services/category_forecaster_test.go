package services

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CategoryForecasterTestSuite defines the test suite for category projections
type CategoryForecasterTestSuite struct {
	suite.Suite
}

// TestCategoryForecasterSuite runs the test suite
func TestCategoryForecasterSuite(t *testing.T) {
	suite.Run(t, new(CategoryForecasterTestSuite))
}

func (s *CategoryForecasterTestSuite) TestMonthVariationStaysInBand() {
	for offset := 1; offset <= 24; offset++ {
		for month := 1; month <= 12; month++ {
			expense := monthVariation(offset, month, models.EntryTypeExpense)
			income := monthVariation(offset, month, models.EntryTypeIncome)
			s.GreaterOrEqual(expense, 0.9)
			s.Less(expense, 1.1)
			s.GreaterOrEqual(income, 0.9)
			s.Less(income, 1.1)
		}
	}
}

func (s *CategoryForecasterTestSuite) TestMonthVariationIsDeterministic() {
	s.Equal(
		monthVariation(3, 7, models.EntryTypeExpense),
		monthVariation(3, 7, models.EntryTypeExpense),
	)
	s.NotEqual(
		monthVariation(3, 7, models.EntryTypeExpense),
		monthVariation(4, 8, models.EntryTypeExpense),
	)
}

func (s *CategoryForecasterTestSuite) TestForecastCoversCategoriesWithHistory() {
	userID := uuid.New()
	now := time.Now()
	var entries []models.LedgerEntry
	for back := 11; back >= 0; back-- {
		occurredAt := now.AddDate(0, -back, 0)
		entries = append(entries,
			ledgerEntry(userID, models.EntryTypeExpense, models.CategoryGroceries, 300, occurredAt),
			ledgerEntry(userID, models.EntryTypeExpense, models.CategoryHousing, 1200, occurredAt),
			ledgerEntry(userID, models.EntryTypeIncome, models.CategorySalary, 4000, occurredAt),
		)
	}
	series := buildMonthlySeries(entries)

	predictions := forecastCategories(series, now.AddDate(0, 1, 0), 1)

	s.Contains(predictions, models.CategoryGroceries)
	s.Contains(predictions, models.CategoryHousing)
	s.Contains(predictions, models.CategorySalary)
	for name, prediction := range predictions {
		s.GreaterOrEqual(prediction.Amount, 0.0, "category %s", name)
		s.True(isFinite(prediction.Amount))
	}
	s.Equal(models.EntryTypeIncome, predictions[models.CategorySalary].Type)
	s.Equal(models.EntryTypeExpense, predictions[models.CategoryGroceries].Type)
}

func (s *CategoryForecasterTestSuite) TestSparseCategoryUsesRecentAverage() {
	userID := uuid.New()
	now := time.Now()
	entries := []models.LedgerEntry{
		ledgerEntry(userID, models.EntryTypeExpense, models.CategoryGroceries, 200, now.AddDate(0, -2, 0)),
		ledgerEntry(userID, models.EntryTypeExpense, models.CategoryGroceries, 250, now.AddDate(0, -1, 0)),
		ledgerEntry(userID, models.EntryTypeExpense, models.CategoryTravel, 800, now.AddDate(0, -1, 0)),
	}
	series := buildMonthlySeries(entries)

	predictions := forecastCategories(series, now.AddDate(0, 1, 0), 1)

	travel, ok := predictions[models.CategoryTravel]
	s.True(ok)
	// One data point: recent average times the bounded variation.
	s.InDelta(800, travel.Amount, 800*0.11)
}

func ledgerEntry(userID uuid.UUID, entryType, category string, amount float64, occurredAt time.Time) models.LedgerEntry {
	return models.LedgerEntry{
		ID:         uuid.New(),
		UserID:     userID,
		EntryType:  entryType,
		Amount:     decimal.NewFromFloat(amount),
		Category:   category,
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
		UpdatedAt:  occurredAt,
	}
}
