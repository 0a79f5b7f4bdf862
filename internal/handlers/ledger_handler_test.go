package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repositories/repository_mocks"
	"finsight/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	echo                *echo.Echo
	userID              uuid.UUID
	ctrl                *gomock.Controller
	mockLedgerRepo      *repository_mocks.MockLedgerRepositoryInterface
	mockForecastService *service_mocks.MockForecastServiceInterface
	handler             *LedgerHandler
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockLedgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.mockForecastService = service_mocks.NewMockForecastServiceInterface(s.ctrl)
	s.handler = NewLedgerHandler(s.mockLedgerRepo, s.mockForecastService)
}

func (s *LedgerHandlerTestSuite) newJSONRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues(s.userID.String())
	return c, rec
}

func (s *LedgerHandlerTestSuite) TestCreateEntry_Success() {
	body := `{"entryType":"expense","amount":42.50,"category":"GROCERIES","description":"weekly shop"}`
	c, rec := s.newJSONRequest(http.MethodPost, "/api/v1/users/"+s.userID.String()+"/ledger", body)

	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.LedgerEntry) error {
			s.Equal(s.userID, entry.UserID)
			s.Equal(models.EntryTypeExpense, entry.EntryType)
			s.Equal(models.CategoryGroceries, entry.Category)
			s.True(entry.Amount.Equal(decimal.NewFromFloat(42.50)))
			entry.ID = uuid.New()
			return nil
		})

	recomputed := make(chan struct{})
	s.mockForecastService.EXPECT().InvalidateUserCaches(s.userID)
	s.mockForecastService.EXPECT().
		UpdateForecasts(s.userID).
		DoAndReturn(func(uuid.UUID) (*models.Forecast, error) {
			close(recomputed)
			return &models.Forecast{}, nil
		})

	err := s.handler.CreateEntry(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	select {
	case <-recomputed:
	case <-time.After(2 * time.Second):
		s.Fail("background forecast recompute never ran")
	}

	var response dto.LedgerEntryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.userID, response.UserID)
	s.Equal("42.50", response.Amount)
}

func (s *LedgerHandlerTestSuite) TestCreateEntry_InvalidEntryType() {
	body := `{"entryType":"transfer","amount":10}`
	c, rec := s.newJSONRequest(http.MethodPost, "/api/v1/users/"+s.userID.String()+"/ledger", body)

	err := s.handler.CreateEntry(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *LedgerHandlerTestSuite) TestCreateEntry_NegativeAmount() {
	body := `{"entryType":"expense","amount":-5}`
	c, rec := s.newJSONRequest(http.MethodPost, "/api/v1/users/"+s.userID.String()+"/ledger", body)

	err := s.handler.CreateEntry(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LedgerHandlerTestSuite) TestCreateEntry_UnknownCategory() {
	body := `{"entryType":"expense","amount":10,"category":"YACHTS"}`
	c, rec := s.newJSONRequest(http.MethodPost, "/api/v1/users/"+s.userID.String()+"/ledger", body)

	err := s.handler.CreateEntry(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LedgerHandlerTestSuite) TestCreateEntry_InvalidUserID() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/not-a-uuid/ledger", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("not-a-uuid")

	err := s.handler.CreateEntry(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "LEDGER_005")
}

func (s *LedgerHandlerTestSuite) TestListEntries_ReturnsPaginatedEntries() {
	entries := make([]models.LedgerEntry, 3)
	for i := range entries {
		entries[i] = models.LedgerEntry{
			ID:         uuid.New(),
			UserID:     s.userID,
			EntryType:  models.EntryTypeExpense,
			Amount:     decimal.NewFromFloat(float64(10 + i)),
			Category:   models.CategoryGroceries,
			OccurredAt: time.Now().AddDate(0, 0, -i),
		}
	}

	s.mockLedgerRepo.EXPECT().
		GetByUserID(s.userID, 0, 20).
		Return(entries, int64(3), nil)

	c, rec := s.newJSONRequest(http.MethodGet, "/api/v1/users/"+s.userID.String()+"/ledger", "")

	err := s.handler.ListEntries(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListLedgerEntriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Entries, 3)
	s.Equal(int64(3), response.Pagination.Total)
	s.Equal(20, response.Pagination.Limit)
}

func (s *LedgerHandlerTestSuite) TestListEntries_ClampsLimit() {
	s.mockLedgerRepo.EXPECT().
		GetByUserID(s.userID, 0, maxPageLimit).
		Return([]models.LedgerEntry{}, int64(0), nil)

	target := fmt.Sprintf("/api/v1/users/%s/ledger?limit=500", s.userID)
	c, rec := s.newJSONRequest(http.MethodGet, target, "")

	err := s.handler.ListEntries(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerTestSuite) TestListEntries_RepositoryError() {
	s.mockLedgerRepo.EXPECT().
		GetByUserID(s.userID, 0, 20).
		Return(nil, int64(0), fmt.Errorf("connection refused"))

	c, rec := s.newJSONRequest(http.MethodGet, "/api/v1/users/"+s.userID.String()+"/ledger", "")

	err := s.handler.ListEntries(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
}
