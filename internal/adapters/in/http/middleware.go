package http

import (
	"strconv"
	"time"

	"sellerops/internal/pkg/logger"
	"sellerops/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// requestLogger attaches the request id to the request context and logs one line per request.
func requestLogger(log *logger.Logger, httpMetrics *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			req := ctx.Request()

			requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)
			reqCtx := log.WithRequestID(req.Context(), requestID)
			ctx.SetRequest(req.WithContext(reqCtx))

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			status := ctx.Response().Status
			latency := time.Since(start)
			httpMetrics.ObserveRequest(req.Method, ctx.Path(), strconv.Itoa(status), latency)

			fields := log.WithFields(reqCtx, map[string]any{
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     status,
				"latency_ms": latency.Milliseconds(),
			})
			if status >= 500 {
				log.Error(fields, "request completed", err)
			} else {
				log.Info(fields, "request completed")
			}
			return nil
		}
	}
}
