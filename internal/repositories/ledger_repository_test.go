package repositories

import (
	"testing"
	"time"

	"finsight/internal/database"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerRepositorySuite defines the test suite for LedgerRepository
type LedgerRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   LedgerRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *LedgerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLedgerRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *LedgerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLedgerRepositorySuite runs the test suite
func TestLedgerRepositorySuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

func (s *LedgerRepositorySuite) newEntry(entryType string, amount float64, occurredAt time.Time) *models.LedgerEntry {
	return &models.LedgerEntry{
		UserID:     s.userID,
		EntryType:  entryType,
		Amount:     decimal.NewFromFloat(amount),
		Category:   models.CategoryGroceries,
		OccurredAt: occurredAt,
	}
}

func (s *LedgerRepositorySuite) TestCreate() {
	entry := s.newEntry(models.EntryTypeExpense, 42.50, time.Now())

	err := s.repo.Create(entry)
	s.NoError(err)
	s.NotEqual(uuid.Nil, entry.ID)
	s.NotZero(entry.CreatedAt)
}

func (s *LedgerRepositorySuite) TestCreate_InvalidAmount() {
	entry := s.newEntry(models.EntryTypeExpense, -5, time.Now())

	err := s.repo.Create(entry)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *LedgerRepositorySuite) TestCreateBatch() {
	entries := []models.LedgerEntry{
		*s.newEntry(models.EntryTypeExpense, 10, time.Now().AddDate(0, 0, -2)),
		*s.newEntry(models.EntryTypeExpense, 20, time.Now().AddDate(0, 0, -1)),
		*s.newEntry(models.EntryTypeIncome, 3000, time.Now()),
	}

	err := s.repo.CreateBatch(entries)
	s.NoError(err)

	total, err := s.repo.CountByUserID(s.userID)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *LedgerRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *LedgerRepositorySuite) TestGetByID() {
	entry := s.newEntry(models.EntryTypeIncome, 3000, time.Now())
	s.NoError(s.repo.Create(entry))

	found, err := s.repo.GetByID(entry.ID)
	s.NoError(err)
	s.Equal(entry.ID, found.ID)
	s.True(found.Amount.Equal(entry.Amount))
}

func (s *LedgerRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrLedgerEntryNotFound)
}

func (s *LedgerRepositorySuite) TestGetByUserSince_WindowAndOrdering() {
	now := time.Now()
	old := s.newEntry(models.EntryTypeExpense, 5, now.AddDate(0, -8, 0))
	middle := s.newEntry(models.EntryTypeExpense, 10, now.AddDate(0, -2, 0))
	recent := s.newEntry(models.EntryTypeExpense, 15, now.AddDate(0, 0, -1))
	s.NoError(s.repo.Create(old))
	s.NoError(s.repo.Create(middle))
	s.NoError(s.repo.Create(recent))

	entries, err := s.repo.GetByUserSince(s.userID, now.AddDate(0, -6, 0))
	s.NoError(err)
	s.Len(entries, 2)
	// Ascending by occurred_at
	s.Equal(middle.ID, entries[0].ID)
	s.Equal(recent.ID, entries[1].ID)
}

func (s *LedgerRepositorySuite) TestGetByUserSince_IgnoresOtherUsers() {
	other := s.newEntry(models.EntryTypeExpense, 99, time.Now())
	other.UserID = uuid.New()
	s.NoError(s.repo.Create(other))
	s.NoError(s.repo.Create(s.newEntry(models.EntryTypeExpense, 10, time.Now())))

	entries, err := s.repo.GetByUserSince(s.userID, time.Now().AddDate(0, -1, 0))
	s.NoError(err)
	s.Len(entries, 1)
}

func (s *LedgerRepositorySuite) TestGetByUserID_Pagination() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		s.NoError(s.repo.Create(s.newEntry(models.EntryTypeExpense, float64(10+i), now.AddDate(0, 0, -i))))
	}

	entries, total, err := s.repo.GetByUserID(s.userID, 0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(entries, 3)
	// Newest first
	s.True(entries[0].OccurredAt.After(entries[1].OccurredAt))

	rest, _, err := s.repo.GetByUserID(s.userID, 3, 3)
	s.NoError(err)
	s.Len(rest, 2)
}
