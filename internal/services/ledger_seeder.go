package services

import (
	"fmt"
	"math/rand"
	"time"

	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDayOfMonth = 25
	salaryHour       = 9
	billPaymentHour  = 14
)

// ledgerSeeder generates realistic ledger history for demo users and local
// development. The forecasting engine treats seeded entries like any other
// ledger data.
type ledgerSeeder struct {
	ledgerRepo repositories.LedgerRepositoryInterface
	faker      *gofakeit.Faker
	rng        *rand.Rand
}

// NewLedgerSeeder creates a new ledger seeder
func NewLedgerSeeder(ledgerRepo repositories.LedgerRepositoryInterface) LedgerSeederInterface {
	seed := time.Now().UnixNano()
	return &ledgerSeeder{
		ledgerRepo: ledgerRepo,
		faker:      gofakeit.New(uint64(seed)),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// SeedHistory generates and persists a monthly salary, a set of recurring
// bills, and a spread of discretionary purchases over the trailing months
// window. All entries are written in one batch.
func (s *ledgerSeeder) SeedHistory(userID uuid.UUID, months int) ([]models.LedgerEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if months < 1 {
		months = 1
	}

	now := time.Now()
	baseSalary := s.faker.Float64Range(3000, 6500)

	entries := make([]models.LedgerEntry, 0, months*18)
	for back := months - 1; back >= 0; back-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)
		entries = append(entries, s.monthlySalary(userID, monthStart, baseSalary))
		entries = append(entries, s.monthlyBills(userID, monthStart)...)
		entries = append(entries, s.discretionaryPurchases(userID, monthStart)...)
	}

	if err := s.ledgerRepo.CreateBatch(entries); err != nil {
		return nil, fmt.Errorf("failed to persist seeded ledger history: %w", err)
	}
	return entries, nil
}

func (s *ledgerSeeder) monthlySalary(userID uuid.UUID, monthStart time.Time, baseSalary float64) models.LedgerEntry {
	// Small jitter keeps monthly income realistic without hiding the trend.
	amount := baseSalary * s.faker.Float64Range(0.97, 1.03)
	occurredAt := time.Date(monthStart.Year(), monthStart.Month(), salaryDayOfMonth, salaryHour, 0, 0, 0, time.UTC)

	return models.LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		EntryType:   models.EntryTypeIncome,
		Amount:      decimal.NewFromFloat(amount).Round(2),
		Category:    models.CategorySalary,
		Description: fmt.Sprintf("Salary - %s", s.faker.Company()),
		OccurredAt:  occurredAt,
		CreatedAt:   occurredAt,
		UpdatedAt:   occurredAt,
	}
}

func (s *ledgerSeeder) monthlyBills(userID uuid.UUID, monthStart time.Time) []models.LedgerEntry {
	bills := []struct {
		description string
		category    string
		min, max    float64
		day         int
	}{
		{"Rent Payment", models.CategoryHousing, 1100, 1800, 1},
		{"Electric Company", models.CategoryBillsUtilities, 60, 180, 5},
		{"Internet Provider", models.CategoryBillsUtilities, 45, 90, 8},
		{"Water Department", models.CategoryBillsUtilities, 25, 70, 12},
		{"Mobile Carrier", models.CategoryBillsUtilities, 35, 95, 15},
	}

	entries := make([]models.LedgerEntry, 0, len(bills))
	for _, bill := range bills {
		occurredAt := time.Date(monthStart.Year(), monthStart.Month(), bill.day, billPaymentHour, 0, 0, 0, time.UTC)
		entries = append(entries, models.LedgerEntry{
			ID:          uuid.New(),
			UserID:      userID,
			EntryType:   models.EntryTypeExpense,
			Amount:      decimal.NewFromFloat(s.faker.Float64Range(bill.min, bill.max)).Round(2),
			Category:    bill.category,
			Description: bill.description,
			OccurredAt:  occurredAt,
			CreatedAt:   occurredAt,
			UpdatedAt:   occurredAt,
		})
	}
	return entries
}

func (s *ledgerSeeder) discretionaryPurchases(userID uuid.UUID, monthStart time.Time) []models.LedgerEntry {
	categories := []struct {
		category string
		min, max float64
	}{
		{models.CategoryGroceries, 15, 220},
		{models.CategoryDining, 8, 95},
		{models.CategoryTransportation, 10, 70},
		{models.CategoryShopping, 20, 350},
		{models.CategoryEntertainment, 10, 60},
		{models.CategoryHealthcare, 15, 200},
	}

	count := 8 + s.rng.Intn(8)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	entries := make([]models.LedgerEntry, 0, count)
	for i := 0; i < count; i++ {
		pick := categories[s.rng.Intn(len(categories))]
		occurredAt := time.Date(
			monthStart.Year(), monthStart.Month(), 1+s.rng.Intn(daysInMonth),
			6+s.rng.Intn(16), s.rng.Intn(60), 0, 0, time.UTC)
		entries = append(entries, models.LedgerEntry{
			ID:          uuid.New(),
			UserID:      userID,
			EntryType:   models.EntryTypeExpense,
			Amount:      decimal.NewFromFloat(s.faker.Float64Range(pick.min, pick.max)).Round(2),
			Category:    pick.category,
			Description: s.faker.ProductName(),
			OccurredAt:  occurredAt,
			CreatedAt:   occurredAt,
			UpdatedAt:   occurredAt,
		})
	}
	return entries
}
