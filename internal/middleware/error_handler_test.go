package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "budget-planner/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUDGET_001")
	assert.Contains(t, rec.Body.String(), "route not found")
}

func TestCustomHTTPErrorHandler_GenericError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(errors.New("connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
}

func TestCustomHTTPErrorHandler_TooManyRequests(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestCustomHTTPErrorHandler_CommittedResponse(t *testing.T) {
	c, rec := newErrorContext(t)

	// Once the response is committed the handler must not write again
	assert.NoError(t, c.NoContent(http.StatusOK))
	CustomHTTPErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   apperrors.ErrorCode
	}{
		{http.StatusBadRequest, apperrors.ValidationGeneral},
		{http.StatusNotFound, apperrors.BudgetNotFound},
		{http.StatusMethodNotAllowed, apperrors.ValidationGeneral},
		{http.StatusConflict, apperrors.BudgetDuplicate},
		{http.StatusUnprocessableEntity, apperrors.ValidationGeneral},
		{http.StatusTooManyRequests, apperrors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, apperrors.SystemInternalError},
		{http.StatusServiceUnavailable, apperrors.SystemServiceUnavailable},
		{http.StatusTeapot, apperrors.SystemInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapHTTPStatusToErrorCode(tt.status), "status %d", tt.status)
	}
}
