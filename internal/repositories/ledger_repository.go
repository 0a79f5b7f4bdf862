package repositories

import (
	"errors"
	"fmt"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
)

// ledgerRepository implements LedgerRepositoryInterface
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

// Create creates a new ledger entry
func (r *ledgerRepository) Create(entry *models.LedgerEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// CreateBatch creates multiple ledger entries in a single database transaction
func (r *ledgerRepository) CreateBatch(entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to create batch ledger entries: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a ledger entry by ID
func (r *ledgerRepository) GetByID(id uuid.UUID) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{ID: id}
	if err := r.db.First(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

// GetByUserSince retrieves all entries for a user from the given date,
// chronologically ascending so callers can bucket by month without resorting
func (r *ledgerRepository) GetByUserSince(userID uuid.UUID, since time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("user_id = ? AND occurred_at >= ?", userID, since).
		Order("occurred_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger entries by window: %w", err)
	}
	return entries, nil
}

// GetByUserID retrieves entries for a user with pagination, newest first
func (r *ledgerRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error) {
	var entries []models.LedgerEntry
	var total int64

	if err := r.db.Model(&models.LedgerEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("occurred_at DESC").
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, total, nil
}

// CountByUserID counts all entries for a user
func (r *ledgerRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.Model(&models.LedgerEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return total, nil
}
