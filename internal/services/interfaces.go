package services

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// ForecastServiceInterface is the forecasting engine entry point. Engine
// invocations never surface computation errors: at worst they persist and
// return a default forecast record marked failed.
type ForecastServiceInterface interface {
	// UpdateForecasts recomputes and persists the user's full forecast
	// record. Concurrent invocations for the same user are serialized.
	UpdateForecasts(userID uuid.UUID) (*models.Forecast, error)
	// GetForecast returns the persisted record, computing one on demand
	// when the user has never been forecast.
	GetForecast(userID uuid.UUID) (*models.Forecast, error)
	// GetGoalForecast returns the active goal projection and the time it
	// was computed, serving a cached value when fresh.
	GetGoalForecast(userID uuid.UUID) (*models.GoalProjection, time.Time, error)
	// GetCategoryForecast returns per-category projection series across the
	// horizon, optionally filtered to a single category.
	GetCategoryForecast(userID uuid.UUID, category string) ([]models.CategoryForecastSeries, time.Time, error)
	// InvalidateUserCaches drops the user's cached projections. Called on
	// ledger and goal writes.
	InvalidateUserCaches(userID uuid.UUID)
}

// MetricsRecorderInterface abstracts metrics recording for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerSeederInterface generates realistic ledger history for demos and
// local development
type LedgerSeederInterface interface {
	SeedHistory(userID uuid.UUID, months int) ([]models.LedgerEntry, error)
}
