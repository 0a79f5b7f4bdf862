package handlers

import (
	"net/http"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalRepo        repositories.GoalRepositoryInterface
	forecastService services.ForecastServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(
	goalRepo repositories.GoalRepositoryInterface,
	forecastService services.ForecastServiceInterface,
) *GoalHandler {
	return &GoalHandler{
		goalRepo:        goalRepo,
		forecastService: forecastService,
	}
}

// CreateGoal creates a new active savings goal for a user
// @Summary Create savings goal
// @Description Create a savings goal; the previous active goal is deactivated
// @Tags Goals
// @Accept json
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse "Goal created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or GOAL_002 - Invalid target amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
		Deadline:      req.Deadline,
		IsActive:      true,
	}

	if err := h.goalRepo.Create(goal); err != nil {
		if err == models.ErrInvalidTargetAmount {
			return SendError(c, errors.GoalInvalidTarget)
		}
		if err == models.ErrNegativeProgress {
			return SendError(c, errors.GoalInvalidProgress)
		}
		return SendSystemError(c, err)
	}

	// The goal projection and its cache are keyed to the active goal, so a
	// new goal makes them stale.
	h.forecastService.InvalidateUserCaches(userID)

	return c.JSON(http.StatusCreated, dto.NewGoalResponse(goal))
}

// GetActiveGoal retrieves the user's single active goal
// @Summary Get active goal
// @Description Retrieve the user's currently active savings goal
// @Tags Goals
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.GoalResponse "Active goal"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_005 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "GOAL_004 - No active goal"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/goals/active [get]
func (h *GoalHandler) GetActiveGoal(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	goal, err := h.goalRepo.GetActiveByUserID(userID)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNoActiveGoal)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponse(goal))
}

// UpdateGoalProgress updates the saved amount on the active goal
// @Summary Update goal progress
// @Description Set the current saved amount on the user's active goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param request body dto.UpdateGoalProgressRequest true "New saved amount"
// @Success 200 {object} dto.GoalResponse "Updated goal"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or GOAL_003 - Negative amount"
// @Failure 404 {object} errors.ErrorResponse "GOAL_004 - No active goal"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/goals/active/progress [put]
func (h *GoalHandler) UpdateGoalProgress(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	goal, err := h.goalRepo.GetActiveByUserID(userID)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNoActiveGoal)
		}
		return SendSystemError(c, err)
	}

	goal.CurrentAmount = decimal.NewFromFloat(req.CurrentAmount)
	if err := h.goalRepo.Update(goal); err != nil {
		if err == models.ErrNegativeProgress {
			return SendError(c, errors.GoalInvalidProgress)
		}
		return SendSystemError(c, err)
	}

	h.forecastService.InvalidateUserCaches(userID)

	return c.JSON(http.StatusOK, dto.NewGoalResponse(goal))
}
