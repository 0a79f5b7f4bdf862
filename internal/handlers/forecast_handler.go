package handlers

import (
	"net/http"
	"strings"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

// ForecastHandler handles forecast HTTP requests
type ForecastHandler struct {
	forecastService services.ForecastServiceInterface
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService services.ForecastServiceInterface) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetForecast retrieves the user's forecast record
// @Summary Get forecast
// @Description Retrieve the user's 12-month budget forecast, computing it on first access
// @Tags Forecasts
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.ForecastResponse "Forecast record"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_005 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/forecast [get]
func (h *ForecastHandler) GetForecast(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	forecast, err := h.forecastService.GetForecast(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewForecastResponse(forecast))
}

// RefreshForecast forces a synchronous forecast recompute
// @Summary Refresh forecast
// @Description Recompute and persist the user's forecast record immediately
// @Tags Forecasts
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.ForecastResponse "Recomputed forecast record"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_005 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/forecast/refresh [post]
func (h *ForecastHandler) RefreshForecast(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	forecast, err := h.forecastService.UpdateForecasts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewForecastResponse(forecast))
}

// GetGoalForecast retrieves the goal completion projection
// @Summary Get goal forecast
// @Description Retrieve the time-to-goal projection for the user's active goal
// @Tags Forecasts
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.GoalForecastResponse "Goal projection"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_005 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "GOAL_004 - No active goal"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/forecast/goal [get]
func (h *ForecastHandler) GetGoalForecast(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	projection, computedAt, err := h.forecastService.GetGoalForecast(userID)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNoActiveGoal)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalForecastResponse{
		Projection: projection,
		ComputedAt: computedAt,
	})
}

// GetCategoryForecast retrieves per-category projection series
// @Summary Get category forecast
// @Description Retrieve per-category projection series over the forecast horizon, optionally filtered to one category
// @Tags Forecasts
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param category query string false "Category code filter"
// @Success 200 {object} dto.CategoryForecastResponse "Category projection series"
// @Failure 400 {object} errors.ErrorResponse "FORECAST_004 - Unknown category"
// @Failure 404 {object} errors.ErrorResponse "FORECAST_003 - No data for category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/forecast/categories [get]
func (h *ForecastHandler) GetCategoryForecast(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	category := strings.TrimSpace(c.QueryParam("category"))
	if category != "" && !models.IsValidCategory(category) {
		return SendError(c, errors.ForecastInvalidCategory)
	}

	categories, lastUpdated, err := h.forecastService.GetCategoryForecast(userID, category)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.ForecastCategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryForecastResponse{
		Categories:  categories,
		LastUpdated: lastUpdated,
	})
}
