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
	ErrForecastNotFound = errors.New("forecast not found")
)

// forecastRepository implements ForecastRepositoryInterface
type forecastRepository struct {
	db *gorm.DB
}

// NewForecastRepository creates a new forecast repository
func NewForecastRepository(db *gorm.DB) ForecastRepositoryInterface {
	return &forecastRepository{
		db: db,
	}
}

// Upsert writes the user's forecast record, replacing any previous one
func (r *forecastRepository) Upsert(forecast *models.Forecast) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Forecast
		err := tx.Where("user_id = ?", forecast.UserID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(forecast).Error; createErr != nil {
					return fmt.Errorf("failed to create forecast: %w", createErr)
				}
				return nil
			}
			return fmt.Errorf("failed to look up forecast: %w", err)
		}

		forecast.ID = existing.ID
		if forecast.LastUpdated.IsZero() {
			forecast.LastUpdated = time.Now()
		}
		if saveErr := tx.Save(forecast).Error; saveErr != nil {
			return fmt.Errorf("failed to update forecast: %w", saveErr)
		}
		return nil
	})
}

// ResetProgress rewinds the user's record to the start of a new run. Unlike
// UpdateProgress it ignores the monotonic guard; it is only called while the
// per-user run lock is held.
func (r *forecastRepository) ResetProgress(userID uuid.UUID) error {
	result := r.db.Model(&models.Forecast{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"calculation_status":   models.CalculationStatusInProgress,
			"calculation_progress": 0,
			"last_updated":         time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to reset forecast progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		seed := &models.Forecast{
			UserID:              userID,
			BudgetForecasts:     models.MonthProjectionList{},
			CalculationStatus:   models.CalculationStatusInProgress,
			CalculationProgress: 0,
			LastUpdated:         time.Now(),
		}
		if err := r.db.Create(seed).Error; err != nil {
			return fmt.Errorf("failed to seed forecast record: %w", err)
		}
	}
	return nil
}

// GetByUserID retrieves the user's forecast record
func (r *forecastRepository) GetByUserID(userID uuid.UUID) (*models.Forecast, error) {
	var forecast models.Forecast
	if err := r.db.Where("user_id = ?", userID).First(&forecast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForecastNotFound
		}
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}
	return &forecast, nil
}

// UpdateProgress advances the status/progress markers on the user's record.
// A write that would move progress backwards is silently dropped, which keeps
// progress monotonic within a run; interleaved writes from a concurrent run
// for the same user are an accepted relaxation.
func (r *forecastRepository) UpdateProgress(userID uuid.UUID, status string, progress int) error {
	if !models.IsValidCalculationStatus(status) {
		return models.ErrInvalidCalculationStatus
	}

	result := r.db.Model(&models.Forecast{}).
		Where("user_id = ? AND calculation_progress <= ?", userID, progress).
		Updates(map[string]interface{}{
			"calculation_status":   status,
			"calculation_progress": progress,
			"last_updated":         time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update forecast progress: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the record does not exist yet or the stored progress is
		// already ahead. Seed a record in the former case.
		var count int64
		if err := r.db.Model(&models.Forecast{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check forecast existence: %w", err)
		}
		if count == 0 {
			seed := &models.Forecast{
				UserID:              userID,
				BudgetForecasts:     models.MonthProjectionList{},
				CalculationStatus:   status,
				CalculationProgress: progress,
				LastUpdated:         time.Now(),
			}
			if err := r.db.Create(seed).Error; err != nil {
				return fmt.Errorf("failed to seed forecast record: %w", err)
			}
		}
	}

	return nil
}
