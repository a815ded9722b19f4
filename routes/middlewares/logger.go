package middlewares

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbolis/survey-backend/log"
)

// Logger writes one log entry per request once the handler has returned.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := log.WithFields(log.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     m.Code,
			"bytes":      m.Written,
			"duration":   m.Duration.String(),
			"remote":     r.RemoteAddr,
		})
		switch {
		case m.Code >= 500:
			entry.Error("request")
		case m.Code >= 400:
			entry.Debug("request")
		default:
			entry.Info("request")
		}
	})
}
