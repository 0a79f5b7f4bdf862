package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

var (
	ErrInvalidEntryType = errors.New("invalid ledger entry type")
	ErrInvalidAmount    = errors.New("ledger entry amount must be positive")
)

// LedgerEntry is a single income or expense record for a user. Entries are
// written by the CRUD layer and by the bank synchronization feed; the
// forecasting engine only ever reads them through the repository window
// queries.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	EntryType   string          `gorm:"type:varchar(20);not null" json:"entry_type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LedgerEntry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.Category == "" {
		e.Category = CategoryOther
	}

	return e.Validate()
}

// BeforeUpdate hook for LedgerEntry
func (e *LedgerEntry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the ledger entry fields
func (e *LedgerEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidEntryType(e.EntryType) {
		return ErrInvalidEntryType
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(e.Category) > 50 {
		return errors.New("category code too long")
	}

	return nil
}

// IsExpense returns true for expense entries
func (e *LedgerEntry) IsExpense() bool {
	return e.EntryType == EntryTypeExpense
}

// MonthKey returns the calendar month bucket the entry belongs to
func (e *LedgerEntry) MonthKey() string {
	return e.OccurredAt.Format("2006-01")
}

// TableName returns the table name for LedgerEntry
func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsValidEntryType checks if the entry type is valid
func IsValidEntryType(entryType string) bool {
	switch entryType {
	case EntryTypeIncome, EntryTypeExpense:
		return true
	default:
		return false
	}
}
