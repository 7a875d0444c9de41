// Package metrics exposes Prometheus collectors for the tour service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Quote outcomes used as the status label.
const (
	QuoteStatusSuccess        = "success"
	QuoteStatusInvalidPackage = "invalid_package"
	QuoteStatusInvalidRequest = "invalid_request"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal counts quotes by package and outcome. Unknown package names
	// are recorded under "unknown" to keep label cardinality bounded.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_quotes_total",
			Help: "Total number of price quotes",
		},
		[]string{"package", "status"},
	)

	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tour_quote_duration_seconds",
			Help:    "Price quote computation time in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	QuoteMarginPercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tour_quote_margin_percent",
			Help:    "Margin percent requested in successful quotes",
			Buckets: []float64{0, 10, 15, 20, 25, 30, 35, 40, 50},
		},
	)

	CatalogPackages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tour_catalog_packages",
			Help: "Number of packages in the active catalog",
		},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware records duration and count for every request.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records the outcome and duration of one quote.
func RecordQuote(packageName, status string, duration time.Duration) {
	if status == QuoteStatusInvalidPackage || packageName == "" {
		packageName = "unknown"
	}
	QuotesTotal.WithLabelValues(packageName, status).Inc()
	QuoteDuration.Observe(duration.Seconds())
}

// ObserveMargin records the margin of a successful quote.
func ObserveMargin(marginPercent int) {
	QuoteMarginPercent.Observe(float64(marginPercent))
}

// SetCatalogSize publishes the number of packages loaded.
func SetCatalogSize(n int) {
	CatalogPackages.Set(float64(n))
}

// SetCircuitState publishes a circuit breaker state code.
func SetCircuitState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
