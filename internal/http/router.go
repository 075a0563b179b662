package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"roteiro/backend/internal/handler"
	"roteiro/backend/internal/service"
)

// NewRouter assembles the Echo instance: public chat surface, health, and
// the JWT-guarded admin group, all behind the sliding-window rate limiter.
func NewRouter(
	chatHandler *handler.ChatHandler,
	rateLimitHandler *handler.RateLimitHandler,
	statsHandler *handler.StatsHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	authService service.AuthService,
	rateLimitService service.RateLimitService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api/v1", RateLimitMiddleware(rateLimitService))

	healthHandler.RegisterRoutes(api)
	chatHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	admin := api.Group("/admin", JWTAuthMiddleware(authService))
	rateLimitHandler.RegisterRoutes(admin)
	statsHandler.RegisterRoutes(admin)

	return e
}
