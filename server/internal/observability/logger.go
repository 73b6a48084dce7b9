// Package observability provides the request logging middleware of the
// HTTP server.
package observability

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// LogFieldRequestID is the field name for the request ID.
	LogFieldRequestID = "request_id"
	// LogFieldDuration is the field name for the duration in milliseconds.
	LogFieldDuration = "duration_ms"
)

// RequestIDHeader carries the request ID back to the client.
const RequestIDHeader = "X-Request-Id"

// RequestLogger returns an echo middleware that tags every request with
// a generated ID and logs method, path, status and duration via slog.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Response().Header().Set(RequestIDHeader, requestID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			slog.Info("request",
				LogFieldRequestID, requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				LogFieldDuration, time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}
