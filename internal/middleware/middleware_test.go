package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/zoos-api/internal/config"
	"github.com/deppfellow/zoos-api/internal/errs"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: config.DefaultConfig(), Logger: &logger}
}

func newTestEcho(s *server.Server) (*echo.Echo, *Middlewares) {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Metrics.Collect(),
		m.RateLimit.Limit(),
		m.Global.Secure(),
	)
	return e, m
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/ping")
		id := rec.Header().Get(RequestIDHeader)

		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestGetLoggerOutsideRequest(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
	assert.NotNil(t, LoggerFromContext(c.Request().Context()))
}

func TestSecureHeaders(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, http.MethodGet, "/ping")
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXFrameOptions))
}

func TestGlobalErrorHandler(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/not-found", func(c echo.Context) error {
		return errs.NewNotFoundError("Zoo with ID of 9 not found.", true, nil)
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection refused")
	})
	e.GET("/echo", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType)
	})

	t.Run("application error", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/not-found")
		body := decodeEnvelope(t, rec)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Zoo with ID of 9 not found.", body["message"])
	})

	t.Run("unclassified error", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/boom")
		body := decodeEnvelope(t, rec)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, errs.InternalMessage, body["message"])
		assert.Equal(t, "connection refused", body["error"])
	})

	t.Run("echo error keeps its status", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/echo")
		body := decodeEnvelope(t, rec)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", body["code"])
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/nowhere")
		body := decodeEnvelope(t, rec)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Route not found", body["message"])
	})

	t.Run("head writes no body", func(t *testing.T) {
		e.HEAD("/boom", func(c echo.Context) error { return errors.New("x") })
		rec := serve(e, http.MethodHead, "/boom")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	s.Config.Server.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1}

	e, _ := newTestEcho(s)
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/ping").Code)

	rec := serve(e, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeEnvelope(t, rec)["code"])
}

func TestRateLimitDisabled(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for range 50 {
		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/ping").Code)
	}
}

func TestMetrics(t *testing.T) {
	e, m := newTestEcho(newTestServer())
	e.GET("/api/zoos/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(m.Metrics.Handler()))

	serve(e, http.MethodGet, "/api/zoos/1")
	serve(e, http.MethodGet, "/api/zoos/2")

	rec := serve(e, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "zoos_api_http_requests_total")
	assert.Contains(t, body, `route="/api/zoos/:id"`)

	var series int
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "zoos_api_http_requests_total{") && strings.Contains(line, `route="/api/zoos/:id"`) {
			series++
			assert.True(t, strings.HasSuffix(line, " 2"), line)
		}
	}
	assert.Equal(t, 1, series)
	assert.Contains(t, body, "go_goroutines")
}
