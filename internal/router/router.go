// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the routes,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/txtstore/internal/handler"
	"github.com/deppfellow/txtstore/internal/middleware"
	"github.com/deppfellow/txtstore/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the full middleware chain and
// every route registered. Handlers reach the store only through the
// services they were constructed with.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler
	// Client IPs come from the connection, never from forwarding headers.
	router.IPExtractor = echo.ExtractIPDirect()

	// Order matters: the request id and the New Relic transaction must exist
	// before the request logger is built, and the logger before anything
	// that logs.
	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerRecordRoutes(router, h)

	return router
}
