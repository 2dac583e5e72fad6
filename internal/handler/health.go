package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/zoos-api/internal/database"
	"github.com/deppfellow/zoos-api/internal/middleware"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/labstack/echo/v4"
)

var errDatabaseUnavailable = errors.New("database not configured")

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	Handler
	db database.Pinger
}

// NewHealthHandler builds the handler; a nil db reports the database as
// unhealthy.
func NewHealthHandler(s *server.Server, db database.Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// CheckHealth answers 200 when the database ping succeeds and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	status := "healthy"
	check := map[string]interface{}{"status": "healthy"}

	err := h.pingDatabase(c.Request().Context())
	check["response_time"] = time.Since(start).String()
	if err != nil {
		status = "unhealthy"
		check["status"] = "unhealthy"
		check["error"] = err.Error()

		logger.Error().Err(err).Dur("response_time", time.Since(start)).Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(start).Milliseconds(),
				"error_message":    err.Error(),
			})
		}
	}

	response := map[string]interface{}{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"database": check,
		},
	}

	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errDatabaseUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	return h.db.Ping(ctx)
}
