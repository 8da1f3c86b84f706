package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type responseWriter struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status >= http.StatusBadRequest {
		rw.body.Write(b)
	}

	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// LoggingMiddleware logs one line per request; failed requests also carry
// the response body so validation failures show up in the log stream.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		logMsg := fmt.Sprintf(
			"%s %s - %d %dB in %s",
			r.Method,
			r.RequestURI,
			rw.status,
			rw.size,
			duration.String(),
		)

		if rw.status >= http.StatusBadRequest {
			slog.Error(logMsg,
				"request_id", chimiddleware.GetReqID(r.Context()),
				"response_body", rw.body.String(),
			)
		} else {
			slog.Info(logMsg,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		}
	})
}
