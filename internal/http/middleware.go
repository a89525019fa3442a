package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"shopgate/backend/internal/service"
	"shopgate/backend/pkg/logger"
)

// AuthCookieName is the cookie operators can use instead of a Bearer header.
const AuthCookieName = "shopgate_token"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// JWTAuthMiddleware guards operator routes. It accepts a token from the
// Authorization header or from the auth cookie and rejects everything else
// with 401 without propagating an error.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}

			valid, err := authService.ValidateToken(token)
			if err != nil {
				logger.Warn("token validation failed", "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if !valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// RequestIDMiddleware assigns a correlation id to each request, preserving
// a caller-supplied one when present.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("requestId", id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs each request with method, path, status and
// latency at a level matching the response class.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"latency", time.Since(start).String(),
				"ip", c.RealIP(),
			}
			if id, ok := c.Get("requestId").(string); ok && id != "" {
				fields = append(fields, "requestId", id)
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}

// ThrottleMiddleware applies a process-wide token bucket in front of every
// route. It is a coarse backstop for the per-client limiter, sized to shed
// load only under aggressive floods.
func ThrottleMiddleware(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
