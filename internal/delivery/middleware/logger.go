package middleware

import (
	"log/slog"
	"time"

	"bikesafe/config"
	deliverycontext "bikesafe/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request after it completes. Only active in debug;
// production request logging belongs to the ingress access log.
func RequestLogger(base *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	debug := cfg.Env.Debug

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !debug {
				return next(c)
			}

			start := time.Now()
			var err error
			// Deferred so a panic recovered upstream still gets a log line.
			defer func() {
				logRequest(base, c, start, err)
			}()

			err = next(c)

			return err
		}
	}
}

func logRequest(base *slog.Logger, c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if query := req.URL.RawQuery; query != "" {
		attrs = append(attrs, slog.String("query", query))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), base)
	logger.LogAttrs(req.Context(), level, "http request", attrs...)
}
