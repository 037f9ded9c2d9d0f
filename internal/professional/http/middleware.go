package http

import (
	"context"
	"net/http"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// LoggerMiddleware stores a request scoped logger and writes one access line
// per request once the handler returns.
func LoggerMiddleware(logger logs.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := middleware.GetReqID(r.Context())
			reqLogger := logger.With("request_id", requestID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				reqLogger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"client_ip", r.RemoteAddr,
				)
			}()

			ctx := context.WithValue(r.Context(), loggerKey, reqLogger)
			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

func LoggerFromContext(ctx context.Context) logs.Logger {
	if l, ok := ctx.Value(loggerKey).(logs.Logger); ok {
		return l
	}
	return nil
}
