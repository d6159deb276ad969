// Package metrics exposes Prometheus instrumentation for completion calls and the HTTP API.
//
// Completion metrics:
//   - binder_completion_requests_total{operation, outcome}
//   - binder_completion_duration_seconds{operation}
//   - binder_recommendation_lines{operation}
//
// HTTP metrics:
//   - binder_http_requests_total{method, route, status}
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	CompletionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binder_completion_requests_total",
			Help: "Total completion pipeline runs by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "binder_completion_duration_seconds",
			Help:    "Duration of completion pipeline runs in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	ParsedLines = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "binder_recommendation_lines",
			Help:    "Number of lines parsed from a completion",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		},
		[]string{"operation"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binder_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

// RecordCompletion records the outcome and duration of one pipeline run
func RecordCompletion(operation string, duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	CompletionRequests.WithLabelValues(operation, outcome).Inc()
	CompletionDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordParsedLines records how many lines a parser produced
func RecordParsedLines(operation string, n int) {
	ParsedLines.WithLabelValues(operation).Observe(float64(n))
}

// Middleware counts requests by matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the default registry in Prometheus exposition format
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
