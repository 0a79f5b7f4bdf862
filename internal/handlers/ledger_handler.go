package handlers

import (
	"net/http"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// LedgerHandler handles ledger entry HTTP requests. Writes invalidate the
// user's cached projections and kick off a forecast recompute in the
// background so the next read sees fresh numbers.
type LedgerHandler struct {
	ledgerRepo      repositories.LedgerRepositoryInterface
	forecastService services.ForecastServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	ledgerRepo repositories.LedgerRepositoryInterface,
	forecastService services.ForecastServiceInterface,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerRepo:      ledgerRepo,
		forecastService: forecastService,
	}
}

// CreateEntry records a new income or expense entry
// @Summary Create ledger entry
// @Description Record an income or expense entry for a user and schedule a forecast refresh
// @Tags Ledger
// @Accept json
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param request body dto.CreateLedgerEntryRequest true "Ledger entry details"
// @Success 201 {object} dto.LedgerEntryResponse "Entry created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or LEDGER_005 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/ledger [post]
func (h *LedgerHandler) CreateEntry(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	var req dto.CreateLedgerEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	entry := &models.LedgerEntry{
		UserID:      userID,
		EntryType:   req.EntryType,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
	}
	if req.OccurredAt != nil {
		entry.OccurredAt = *req.OccurredAt
	}

	if err := h.ledgerRepo.Create(entry); err != nil {
		if err == models.ErrInvalidEntryType {
			return SendError(c, errors.LedgerInvalidEntryType)
		}
		if err == models.ErrInvalidAmount {
			return SendError(c, errors.LedgerInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	h.refreshForecastInBackground(userID)

	return c.JSON(http.StatusCreated, dto.NewLedgerEntryResponse(entry))
}

// ListEntries retrieves paginated ledger entries for a user
// @Summary List ledger entries
// @Description Retrieve paginated ledger entries for a user, newest first
// @Tags Ledger
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListLedgerEntriesResponse "Ledger entries with pagination"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_005 - Invalid user ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{user_id}/ledger [get]
func (h *LedgerHandler) ListEntries(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidUserID)
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	entries, total, err := h.ledgerRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, dto.NewLedgerEntryResponse(&entries[i]))
	}

	return c.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries: responses,
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// refreshForecastInBackground drops stale caches immediately and recomputes
// the forecast off the request path. UpdateForecasts never returns a
// computation error, so the result does not need inspecting here.
func (h *LedgerHandler) refreshForecastInBackground(userID uuid.UUID) {
	h.forecastService.InvalidateUserCaches(userID)
	go func() {
		_, _ = h.forecastService.UpdateForecasts(userID)
	}()
}
