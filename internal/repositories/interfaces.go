package repositories

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// LedgerRepositoryInterface defines the contract for ledger entry repository
// operations. The forecasting engine only consumes the window queries; the
// write methods back the CRUD layer and the demo seeder.
type LedgerRepositoryInterface interface {
	Create(entry *models.LedgerEntry) error
	CreateBatch(entries []models.LedgerEntry) error
	GetByID(id uuid.UUID) (*models.LedgerEntry, error)
	// GetByUserSince returns all entries for a user with occurred_at >= since,
	// ordered chronologically ascending.
	GetByUserSince(userID uuid.UUID, since time.Time) ([]models.LedgerEntry, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error)
	CountByUserID(userID uuid.UUID) (int64, error)
}

// GoalRepositoryInterface defines the contract for goal repository operations
type GoalRepositoryInterface interface {
	// Create persists a goal; when the goal is active it atomically
	// deactivates any previously active goal for the same user.
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	// GetActiveByUserID returns the single active goal, or ErrGoalNotFound.
	GetActiveByUserID(userID uuid.UUID) (*models.Goal, error)
	Update(goal *models.Goal) error
	DeactivateByUserID(userID uuid.UUID) error
}

// ForecastRepositoryInterface defines the contract for forecast record
// persistence. One record per user, upserted by the orchestrator.
type ForecastRepositoryInterface interface {
	Upsert(forecast *models.Forecast) error
	GetByUserID(userID uuid.UUID) (*models.Forecast, error)
	// UpdateProgress advances calculation status/progress for the user's
	// record. Progress never moves backwards within a run: writes with a
	// lower progress value than the stored one are dropped.
	UpdateProgress(userID uuid.UUID, status string, progress int) error
	// ResetProgress force-rewinds the record to in_progress/0 at the start
	// of a new run, bypassing the monotonic guard.
	ResetProgress(userID uuid.UUID) error
}
