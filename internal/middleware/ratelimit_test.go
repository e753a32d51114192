package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanda/offday-portal/internal/config"
)

func TestLoginLimiter_PassThroughWithoutRedis(t *testing.T) {
	// The limiter fails open: with no redis client it must not interfere.
	cfg := config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute}
	mw := NewLoginLimiter(cfg, nil)

	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLoginLimiter_DisabledByConfig(t *testing.T) {
	mw := NewLoginLimiter(config.RateLimitConfig{Enabled: false}, nil)

	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
