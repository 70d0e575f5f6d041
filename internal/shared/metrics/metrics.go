package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	assessmentSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_saved_total",
			Help: "Total number of assessment submissions persisted",
		},
		[]string{"kind"},
	)

	assessmentSaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_save_failures_total",
			Help: "Total number of assessment submissions rejected or failed",
		},
		[]string{"kind", "reason"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// IncSaved increments the persisted-submission counter for a kind.
func IncSaved(kind string) {
	assessmentSaved.WithLabelValues(kind).Inc()
}

// IncSaveFailure increments the failed-submission counter for a kind.
// Reason is one of "validation", "storage".
func IncSaveFailure(kind, reason string) {
	assessmentSaveFailures.WithLabelValues(kind, reason).Inc()
}

// ObserveRequest records a completed HTTP request.
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
