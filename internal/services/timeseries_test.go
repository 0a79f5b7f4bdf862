package services

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TimeseriesTestSuite defines the test suite for monthly aggregation
type TimeseriesTestSuite struct {
	suite.Suite
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *TimeseriesTestSuite) SetupTest() {
	s.userID = uuid.New()
}

// TestTimeseriesSuite runs the test suite
func TestTimeseriesSuite(t *testing.T) {
	suite.Run(t, new(TimeseriesTestSuite))
}

// midMonth returns a stable mid-month timestamp back months before now,
// immune to end-of-month normalization surprises
func midMonth(back int) time.Time {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -back, 14)
}

func (s *TimeseriesTestSuite) TestEmptyInputProducesEmptySeries() {
	series := buildMonthlySeries(nil)

	s.Equal(0, series.Len())
	s.Equal(0, series.TransactionCount())
	s.Empty(series.NetSavings())
}

func (s *TimeseriesTestSuite) TestGroupsByCalendarMonth() {
	entries := []models.LedgerEntry{
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryGroceries, 100, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryDining, 50, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeIncome, models.CategorySalary, 3000, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryGroceries, 120, midMonth(0)),
	}

	series := buildMonthlySeries(entries)

	s.Equal(2, series.Len())
	s.Equal(4, series.TransactionCount())
	s.Equal(150.0, series.Expenses[0])
	s.Equal(3000.0, series.Incomes[0])
	s.Equal(120.0, series.Expenses[1])
	s.Equal(0.0, series.Incomes[1])
}

func (s *TimeseriesTestSuite) TestMonthsAreChronologicallyAscending() {
	entries := []models.LedgerEntry{
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryOther, 10, midMonth(0)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryOther, 10, midMonth(5)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryOther, 10, midMonth(2)),
	}

	series := buildMonthlySeries(entries)

	s.Require().Equal(3, series.Len())
	for i := 1; i < series.Len(); i++ {
		s.Less(series.Months[i-1], series.Months[i])
		s.True(series.Dates[i-1].Before(series.Dates[i]))
	}
}

func (s *TimeseriesTestSuite) TestGapsAreNotInterpolated() {
	entries := []models.LedgerEntry{
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryOther, 10, midMonth(6)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryOther, 10, midMonth(0)),
	}

	series := buildMonthlySeries(entries)

	s.Equal(2, series.Len(), "months without entries must not appear")
}

func (s *TimeseriesTestSuite) TestCategoryVectorsAlignWithMonths() {
	entries := []models.LedgerEntry{
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryGroceries, 200, midMonth(2)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryDining, 80, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryGroceries, 220, midMonth(0)),
	}

	series := buildMonthlySeries(entries)

	s.Require().Equal(3, series.Len())
	groceries := series.Categories[models.CategoryGroceries]
	s.Require().NotNil(groceries)
	s.Equal([]float64{200, 0, 220}, groceries.Amounts)

	dining := series.Categories[models.CategoryDining]
	s.Require().NotNil(dining)
	s.Equal([]float64{0, 80, 0}, dining.Amounts)
}

func (s *TimeseriesTestSuite) TestNetSavings() {
	entries := []models.LedgerEntry{
		ledgerEntry(s.userID, models.EntryTypeIncome, models.CategorySalary, 3000, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryHousing, 2500, midMonth(1)),
		ledgerEntry(s.userID, models.EntryTypeExpense, models.CategoryHousing, 4000, midMonth(0)),
	}

	series := buildMonthlySeries(entries)

	s.Equal([]float64{500, -4000}, series.NetSavings())
}
