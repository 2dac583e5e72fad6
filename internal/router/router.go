// Package router builds the echo instance: the middleware chain, the
// error handler and every route.
package router

import (
	"github.com/deppfellow/zoos-api/internal/handler"
	"github.com/deppfellow/zoos-api/internal/middleware"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Collect(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, middlewares.Metrics)
	registerZooRoutes(router.Group("/api/zoos"), h.Zoo)

	return router
}
