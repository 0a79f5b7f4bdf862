package dto

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// ForecastResponse is the client view of a persisted forecast record
type ForecastResponse struct {
	UserID              uuid.UUID                  `json:"userId"`
	BudgetForecasts     []models.MonthProjection   `json:"budgetForecasts"`
	GoalForecast        *models.GoalProjection     `json:"goalForecast,omitempty"`
	CalculationStatus   string                     `json:"calculationStatus"`
	CalculationProgress int                        `json:"calculationProgress"`
	ConfidenceScore     float64                    `json:"confidenceScore"`
	ForecastMethod      string                     `json:"forecastMethod,omitempty"`
	DataQuality         models.DataQuality         `json:"dataQuality"`
	LastUpdated         time.Time                  `json:"lastUpdated"`
}

// NewForecastResponse converts a model to its response form
func NewForecastResponse(forecast *models.Forecast) ForecastResponse {
	response := ForecastResponse{
		UserID:              forecast.UserID,
		BudgetForecasts:     forecast.BudgetForecasts,
		CalculationStatus:   forecast.CalculationStatus,
		CalculationProgress: forecast.CalculationProgress,
		ConfidenceScore:     forecast.ConfidenceScore,
		ForecastMethod:      forecast.ForecastMethod,
		DataQuality:         models.DataQuality(forecast.DataQuality),
		LastUpdated:         forecast.LastUpdated,
	}
	if forecast.GoalForecast != nil {
		projection := models.GoalProjection(*forecast.GoalForecast)
		response.GoalForecast = &projection
	}
	return response
}

// GoalForecastResponse wraps a goal projection with its computation time
type GoalForecastResponse struct {
	Projection *models.GoalProjection `json:"projection"`
	ComputedAt time.Time              `json:"computedAt"`
}

// CategoryForecastResponse lists per-category projection series
type CategoryForecastResponse struct {
	Categories  []models.CategoryForecastSeries `json:"categories"`
	LastUpdated time.Time                       `json:"lastUpdated"`
}
