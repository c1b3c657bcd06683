package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EchoMiddleware creates an echo middleware that logs every request with
// method, path, status, latency and the caller's identity when known.
func EchoMiddleware(l *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			entry := l.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       path,
				"status":     c.Response().Status,
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"user_id":    userID,
			})

			switch {
			case err != nil:
				entry.WithField("error", err.Error()).Error("request failed")
			case c.Response().Status >= 500:
				entry.Error("request completed")
			case c.Response().Status >= 400:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}

			return err
		}
	}
}
