package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shopgate/backend/internal/handler"
	"shopgate/backend/internal/service"
)

// NewRouter wires all handlers into an echo instance. Public admission and
// status routes live under /api, operator routes under /api/admin behind JWT.
func NewRouter(
	admissionHandler *handler.AdmissionHandler,
	blockHandler *handler.BlockHandler,
	incidentHandler *handler.IncidentHandler,
	busyModeHandler *handler.BusyModeHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())
	e.Use(ThrottleMiddleware(200, 400))

	api := e.Group("/api")
	admissionHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	admin := api.Group("/admin", JWTAuthMiddleware(authService))
	blockHandler.RegisterRoutes(admin)
	incidentHandler.RegisterRoutes(admin)
	busyModeHandler.RegisterRoutes(admin)

	return e
}
