package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"farmbook/pkg/logger"
	"farmbook/pkg/metrics"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			kv := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			switch {
			case v.Status >= 500:
				log.Error("request", append(kv, "error", v.Error)...)
			case v.Status >= 400:
				log.Warn("request", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		},
	})
}

// Metrics records count and latency per route template. It goes outside
// RequestLogger, which renders handler errors, so the status is final here.
// An error that reaches it unrendered is rendered before recording.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
