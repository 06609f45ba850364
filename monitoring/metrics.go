package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Domain metrics
	PlaysRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plays_recorded_total",
			Help: "Total number of play events written to the ledger",
		},
	)

	ReviewsUpserted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_upserted_total",
			Help: "Total number of review inserts and updates",
		},
	)

	RatingRecomputes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rating_recomputes_total",
			Help: "Total number of completed rating recomputations",
		},
	)

	AggregationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rating_recompute_failures_total",
			Help: "Total number of failed rating recomputations",
		},
	)

	AuthenticationAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authentication_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)
)

// InitMetrics registers all collectors.
func InitMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(PlaysRecorded)
	prometheus.MustRegister(ReviewsUpserted)
	prometheus.MustRegister(RatingRecomputes)
	prometheus.MustRegister(AggregationFailures)
	prometheus.MustRegister(AuthenticationAttempts)
}

// PrometheusMiddleware collects request metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		HttpRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		HttpRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(time.Since(start).Seconds())
	}
}

// PrometheusHandler exposes the /metrics endpoint.
func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
