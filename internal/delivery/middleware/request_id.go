package middleware

import (
	"log/slog"

	deliverycontext "bikesafe/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID tags every request with an identifier: the caller's X-Request-Id
// when present, a fresh UUID otherwise. The ID is echoed back in the response
// header and travels in the request context together with a request-scoped
// logger, so log lines across the ingest and the worker correlate.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			reqLogger := logger.With(slog.String("request_id", requestID))

			ctx := c.Request().Context()
			ctx = deliverycontext.WithRequestID(ctx, requestID)
			ctx = deliverycontext.WithLogger(ctx, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
