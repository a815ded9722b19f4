package middlewares

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	UploadBytes prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "survey",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		UploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "upload",
			Name:      "bytes_total",
			Help:      "Bytes written by accepted uploads.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.UploadBytes)
	return m
}

// Instrument records every request under its chi route pattern, so that
// path parameters don't blow up label cardinality.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snoop := httpsnoop.CaptureMetrics(next, w, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(snoop.Code)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(snoop.Duration.Seconds())
	})
}
