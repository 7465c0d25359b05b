package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedContext(e *echo.Echo, ip string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(5, 10)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		c, rec := newRateLimitedContext(e, "10.0.0.1")
		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < 5; i++ {
		c, rec := newRateLimitedContext(e, "10.0.0.2")
		_ = handler(c)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimiter_RateLimitResponseBody(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c1, _ := newRateLimitedContext(e, "10.0.0.3")
	_ = handler(c1)

	c2, rec := newRateLimitedContext(e, "10.0.0.3")
	_ = handler(c2)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestRateLimiter_TracksVisitorsSeparately(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust the first visitor's budget
	c1, _ := newRateLimitedContext(e, "10.0.0.4")
	_ = handler(c1)
	c2, blocked := newRateLimitedContext(e, "10.0.0.4")
	_ = handler(c2)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	// A different visitor is unaffected
	c3, allowed := newRateLimitedContext(e, "10.0.0.5")
	err := handler(c3)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, allowed.Code)
}

func TestRateLimiter_UsesForwardedForHeader(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		_ = handler(c)

		if i > 0 {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code, fmt.Sprintf("request %d", i))
		}
	}
}
