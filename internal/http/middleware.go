package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/handler"
	"roteiro/backend/internal/service"
	"roteiro/backend/pkg/logger"
)

// AuthCookieName mirrors the cookie set by the login handler.
const AuthCookieName = handler.AuthCookieName

// JWTAuthMiddleware rejects requests without a valid admin token. The token
// is read from the Authorization header, falling back to the auth cookie.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return handler.Error(c, http.StatusUnauthorized, "unauthorized")
			}

			ok, err := auth.ValidateToken(token)
			if err != nil {
				logger.Error("token validation failed", "error", err)
				return handler.Error(c, http.StatusUnauthorized, "unauthorized")
			}
			if !ok {
				return handler.Error(c, http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RateLimitMiddleware checks every request against the sliding-window
// limiter, keyed on client IP and endpoint name. Limit headers are set on
// allowed and rejected responses alike.
func RateLimitMiddleware(limits service.RateLimitService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the registered route pattern so path parameter values
			// don't multiply the endpoint keyspace.
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			decision := limits.Check(c.Request().Context(), c.RealIP(), endpointName(path), nil)

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt, 10))

			if !decision.Allowed {
				retryAfter := decision.ResetAt - time.Now().Unix()
				if retryAfter < 1 {
					retryAfter = 1
				}
				header.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return handler.Error(c, http.StatusTooManyRequests, "rate limited")
			}
			return next(c)
		}
	}
}

// endpointName maps a route path to the limiter's endpoint key by dropping
// the API prefix ("/api/v1/chat" -> "chat", "/api/v1/admin/login" ->
// "admin/login"). Default limits match by substring, so admin/login still
// falls under the login limit.
func endpointName(path string) string {
	path = strings.TrimPrefix(path, "/api/v1")
	path = strings.Trim(path, "/")
	if path == "" {
		return "root"
	}
	return path
}

// RequestLoggerMiddleware logs one line per request.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			args := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", args...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", args...)
			default:
				logger.Info("request", args...)
			}
			return nil
		}
	}
}
