package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrInvalidUserID is returned when the user_id path parameter is malformed
var ErrInvalidUserID = fmt.Errorf("invalid user id")

// getUserIDParam parses the user_id path parameter. Identity and access
// control are enforced upstream; this service only needs a well-formed ID.
func getUserIDParam(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("user_id")
	if raw == "" {
		return uuid.UUID{}, ErrInvalidUserID
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, ErrInvalidUserID
	}
	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
