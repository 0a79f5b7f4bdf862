package handlers

import (
	"net/http"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedMonths = 12

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder          services.LedgerSeederInterface
	forecastService services.ForecastServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	seeder services.LedgerSeederInterface,
	forecastService services.ForecastServiceInterface,
) *DevHandler {
	return &DevHandler{
		seeder:          seeder,
		forecastService: forecastService,
	}
}

// SeedLedgerHistory generates realistic ledger history for a user
//
// Method: POST /api/v1/dev/users/:user_id/seed
// Environment: Development only
//
// Path parameters:
//   - user_id: User UUID
//
// Body (optional):
//   - months: Number of months of history to generate (default: 12, max: 36)
//
// Success Response: 200 OK
//   - message: Success message
//   - entries_created: Number of ledger entries created
func (h *DevHandler) SeedLedgerHistory(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	req := dto.SeedLedgerRequest{Months: defaultSeedMonths}
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if req.Months == 0 {
		req.Months = defaultSeedMonths
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	entries, err := h.seeder.SeedHistory(userID, req.Months)
	if err != nil {
		return SendSystemError(c, err)
	}

	// Seeded history invalidates anything already projected for this user.
	h.forecastService.InvalidateUserCaches(userID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "ledger history seeded successfully",
		"entries_created": len(entries),
		"months":          req.Months,
		"user_id":         userID,
	})
}
