package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// 向量服务调用结果：success / rate_limited / transient_error / client_error
	ProviderRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedding_provider_requests_total",
			Help: "Total number of embedding provider calls by outcome",
		},
		[]string{"outcome"},
	)

	ProviderRetryCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "embedding_provider_retries_total",
			Help: "Total number of embedding provider retry attempts",
		},
	)

	RecommendationCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommendation sets generated",
		},
	)

	BackfillProcessedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "backfill_courses_processed_total",
			Help: "Total number of course embeddings written by the backfill job",
		},
	)

	BackfillFailedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "backfill_courses_failed_total",
			Help: "Total number of course embedding failures in the backfill job",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ProviderRequestCounter)
	prometheus.MustRegister(ProviderRetryCounter)
	prometheus.MustRegister(RecommendationCounter)
	prometheus.MustRegister(BackfillProcessedCounter)
	prometheus.MustRegister(BackfillFailedCounter)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
