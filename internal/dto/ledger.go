package dto

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// CreateLedgerEntryRequest is the payload for recording a ledger entry
type CreateLedgerEntryRequest struct {
	EntryType   string     `json:"entryType" validate:"required,entry_type"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Category    string     `json:"category" validate:"omitempty,ledger_category"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	OccurredAt  *time.Time `json:"occurredAt,omitempty"`
}

// SeedLedgerRequest asks the demo seeder to generate history
type SeedLedgerRequest struct {
	Months int `json:"months" validate:"omitempty,min=1,max=36"`
}

// LedgerEntryResponse is the client view of a ledger entry
type LedgerEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	EntryType   string    `json:"entryType"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewLedgerEntryResponse converts a model to its response form
func NewLedgerEntryResponse(entry *models.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          entry.ID,
		UserID:      entry.UserID,
		EntryType:   entry.EntryType,
		Amount:      entry.Amount.StringFixed(2),
		Category:    entry.Category,
		Description: entry.Description,
		OccurredAt:  entry.OccurredAt,
		CreatedAt:   entry.CreatedAt,
	}
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListLedgerEntriesResponse represents the response for listing ledger entries
type ListLedgerEntriesResponse struct {
	Entries    []LedgerEntryResponse `json:"entries"`
	Pagination PaginationInfo        `json:"pagination"`
}
