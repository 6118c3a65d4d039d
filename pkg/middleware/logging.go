package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type responseWriter struct {
	http.ResponseWriter
	errBody *bytes.Buffer
	status  int
	size    int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	// Keep error bodies around so failures are visible in the log.
	if rw.status >= http.StatusBadRequest {
		rw.errBody.Write(b)
	}

	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
			errBody:        &bytes.Buffer{},
		}

		next.ServeHTTP(rw, r)

		attrs := []any{
			"method", r.Method,
			"path", r.RequestURI,
			"status", rw.status,
			"bytes", rw.size,
			"duration", time.Since(start).String(),
			"request_id", chimiddleware.GetReqID(r.Context()),
		}

		if rw.status >= http.StatusBadRequest {
			slog.Error("request failed", append(attrs, "response_body", rw.errBody.String())...)
		} else {
			slog.Info("request completed", attrs...)
		}
	})
}
