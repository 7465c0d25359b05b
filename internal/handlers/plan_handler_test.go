package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budget-planner/internal/dto"
	"budget-planner/internal/models"
	"budget-planner/internal/services"
	"budget-planner/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PlanHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockPlannerServiceInterface
	handler     *PlanHandler
	sessionID   uuid.UUID
}

func TestPlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlanHandlerTestSuite))
}

func (s *PlanHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockService = service_mocks.NewMockPlannerServiceInterface(s.ctrl)
	s.handler = NewPlanHandler(s.mockService)
	s.sessionID = uuid.New()
}

func (s *PlanHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlanHandlerTestSuite) newSession() *services.PlanSession {
	pool := decimal.NewFromInt(4800)
	calculator := services.NewAllocationCalculator()
	return &services.PlanSession{
		ID:            s.sessionID,
		Year:          2026,
		Month:         9,
		Income:        decimal.NewFromInt(6000),
		SavingsRate:   decimal.NewFromInt(20),
		Savings:       decimal.NewFromInt(1200),
		AvailablePool: pool,
		Ledger:        services.NewAllocationLedger(pool, calculator.GenerateSuggestions(pool, nil, nil)),
	}
}

// ========================================
// POST /api/v1/plans Tests
// ========================================

func (s *PlanHandlerTestSuite) TestStartPlan_Success() {
	body := `{"monthly_income":"6000","savings_rate":"20","year":2026,"month":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockService.EXPECT().
		StartSession(decimal.NewFromInt(6000), decimal.NewFromInt(20), 2026, 9).
		Return(s.newSession(), nil)

	err := s.handler.StartPlan(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.PlanResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.sessionID.String(), response.SessionID)
	s.Len(response.Items, 10)
	s.True(decimal.NewFromInt(4800).Equal(response.AvailablePool))
	s.True(decimal.NewFromInt(3840).Equal(response.TotalAllocated))
	s.True(decimal.NewFromInt(960).Equal(response.RemainingPool))
}

func (s *PlanHandlerTestSuite) TestStartPlan_InvalidSavingsRate() {
	body := `{"monthly_income":"6000","savings_rate":"150","year":2026,"month":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.StartPlan(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *PlanHandlerTestSuite) TestStartPlan_InvalidMonth() {
	body := `{"monthly_income":"6000","savings_rate":"20","year":2026,"month":13}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.StartPlan(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *PlanHandlerTestSuite) TestStartPlan_MalformedIncome() {
	body := `{"monthly_income":"six thousand","savings_rate":"20","year":2026,"month":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.StartPlan(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// GET /api/v1/plans/:sessionId Tests
// ========================================

func (s *PlanHandlerTestSuite) TestGetPlan_Success() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().GetSession(s.sessionID).Return(s.newSession(), nil)

	err := s.handler.GetPlan(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PlanHandlerTestSuite) TestGetPlan_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().GetSession(s.sessionID).Return(nil, services.ErrSessionNotFound)

	err := s.handler.GetPlan(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PLAN_001", response.Error.Code)
}

func (s *PlanHandlerTestSuite) TestGetPlan_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetPlan(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// PUT /api/v1/plans/:sessionId/inputs Tests
// ========================================

func (s *PlanHandlerTestSuite) TestUpdateInputs_Success() {
	body := `{"monthly_income":"8000","savings_rate":"25"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().
		UpdateInputs(s.sessionID, decimal.NewFromInt(8000), decimal.NewFromInt(25)).
		Return(s.newSession(), nil)

	err := s.handler.UpdateInputs(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// ========================================
// Item mutation Tests
// ========================================

func (s *PlanHandlerTestSuite) TestToggleItem_Success() {
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId", "itemId")
	c.SetParamValues(s.sessionID.String(), "suggested-food")

	s.mockService.EXPECT().ToggleItem(s.sessionID, "suggested-food").Return(s.newSession(), nil)

	err := s.handler.ToggleItem(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PlanHandlerTestSuite) TestToggleItem_NotFound() {
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId", "itemId")
	c.SetParamValues(s.sessionID.String(), "missing-item")

	s.mockService.EXPECT().ToggleItem(s.sessionID, "missing-item").Return(nil, services.ErrAllocationNotFound)

	err := s.handler.ToggleItem(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PLAN_002", response.Error.Code)
}

func (s *PlanHandlerTestSuite) TestSetItemAmount_Success() {
	body := `{"amount":"725.5"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId", "itemId")
	c.SetParamValues(s.sessionID.String(), "suggested-food")

	s.mockService.EXPECT().
		SetItemAmount(s.sessionID, "suggested-food", decimal.NewFromFloat(725.50)).
		Return(s.newSession(), nil)

	err := s.handler.SetItemAmount(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PlanHandlerTestSuite) TestAddItem_Success() {
	body := `{"label":"Gym","category":"gym","type":"EXPENSE","amount":"60"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().
		AddCustomItem(s.sessionID, "Gym", "gym", "EXPENSE", decimal.NewFromInt(60)).
		Return(s.newSession(), nil)

	err := s.handler.AddItem(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PlanHandlerTestSuite) TestAddItem_Duplicate() {
	body := `{"label":"More Food","category":"food","type":"EXPENSE","amount":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().
		AddCustomItem(s.sessionID, "More Food", "food", "EXPENSE", decimal.NewFromInt(100)).
		Return(nil, services.ErrDuplicateAllocation)

	err := s.handler.AddItem(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PLAN_003", response.Error.Code)
}

func (s *PlanHandlerTestSuite) TestAddItem_NonPositiveAmount() {
	body := `{"label":"Gym","category":"gym","type":"EXPENSE","amount":"0"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	err := s.handler.AddItem(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *PlanHandlerTestSuite) TestRemoveItem_Success() {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId", "itemId")
	c.SetParamValues(s.sessionID.String(), "suggested-travel")

	s.mockService.EXPECT().RemoveItem(s.sessionID, "suggested-travel").Return(s.newSession(), nil)

	err := s.handler.RemoveItem(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// ========================================
// Conflict and commit Tests
// ========================================

func (s *PlanHandlerTestSuite) TestScreenConflicts_Success() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	month := 9
	conflicts := []services.Conflict{
		{
			Allocation: models.Allocation{
				ID:       "suggested-food",
				Label:    "Food",
				Category: models.CanonicalCategoryKey(models.CategoryFood),
				Amount:   decimal.NewFromInt(480),
				Type:     models.BudgetTypeExpense,
				Included: true,
				Origin:   models.OriginSuggested,
			},
			Existing: models.Budget{
				ID:       uuid.New(),
				Name:     "Food",
				Type:     models.BudgetTypeExpense,
				Category: models.CategoryFood,
				Amount:   decimal.NewFromInt(500),
				Period:   models.BudgetPeriodMonthly,
				Year:     2026,
				Month:    &month,
			},
		},
	}
	s.mockService.EXPECT().ScreenConflicts(s.sessionID).Return(conflicts, nil)

	err := s.handler.ScreenConflicts(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ConflictListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Equal("suggested-food", response.Conflicts[0].Allocation.ID)
}

func (s *PlanHandlerTestSuite) TestCommitPlan_AllCreated() {
	body := `{"include_income_budget":false,"remove_conflicting":false}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	result := &services.CommitResult{
		CreatedCount:      10,
		CreatedBudgets:    make([]models.Budget, 10),
		FailedAllocations: []models.Allocation{},
	}
	s.mockService.EXPECT().
		Commit(gomock.Any(), s.sessionID, services.CommitOptions{}).
		Return(result, nil)

	err := s.handler.CommitPlan(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CommitPlanResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(10, response.CreatedCount)
	s.Empty(response.FailedAllocations)
}

func (s *PlanHandlerTestSuite) TestCommitPlan_PartialFailure() {
	body := `{}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	result := &services.CommitResult{
		CreatedCount:   9,
		CreatedBudgets: make([]models.Budget, 9),
		FailedAllocations: []models.Allocation{
			{
				ID:       "suggested-food",
				Label:    "Food",
				Category: models.CanonicalCategoryKey(models.CategoryFood),
				Amount:   decimal.NewFromInt(480),
				Type:     models.BudgetTypeExpense,
				Included: true,
				Origin:   models.OriginSuggested,
			},
		},
	}
	s.mockService.EXPECT().
		Commit(gomock.Any(), s.sessionID, services.CommitOptions{}).
		Return(result, nil)

	err := s.handler.CommitPlan(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CommitPlanResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(9, response.CreatedCount)
	s.Require().Len(response.FailedAllocations, 1)
	s.Equal("suggested-food", response.FailedAllocations[0].ID)
}

func (s *PlanHandlerTestSuite) TestCommitPlan_BlockedByConflicts() {
	body := `{}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	conflictsErr := &services.ConflictsError{
		Conflicts: []services.Conflict{{}},
	}
	s.mockService.EXPECT().
		Commit(gomock.Any(), s.sessionID, services.CommitOptions{}).
		Return(nil, conflictsErr)

	err := s.handler.CommitPlan(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PLAN_004", response.Error.Code)
}

func (s *PlanHandlerTestSuite) TestDiscardPlan_Success() {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(s.sessionID.String())

	s.mockService.EXPECT().DiscardSession(s.sessionID)

	err := s.handler.DiscardPlan(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
