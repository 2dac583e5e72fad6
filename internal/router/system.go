package router

import (
	"github.com/deppfellow/zoos-api/internal/handler"
	"github.com/deppfellow/zoos-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, metrics *middleware.MetricsMiddleware) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
