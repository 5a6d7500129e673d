package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"ontime.transitdata.org/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLogging logs every request with method, path, status and duration.
func (api *RestAPI) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Add logger to context for downstream handlers
		ctx := logging.WithLogger(r.Context(), api.Logger)
		r = r.WithContext(ctx)

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default status
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		logging.LogHTTPRequest(api.Logger,
			r.Method,
			r.URL.Path, // Path without query parameters
			wrapped.statusCode,
			float64(duration.Nanoseconds())/1e6,
			slog.String("user_agent", r.Header.Get("User-Agent")),
			slog.String("component", "http_server"))
	})
}
