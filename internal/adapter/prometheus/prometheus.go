package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	responseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	// Business metrics
	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_logins_total",
		Help: "Total number of successful admin logins",
	})

	pricingPreviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_previews_total",
		Help: "Total number of rental pricing previews computed",
	})
)

type PrometheusAdapter struct{}

func NewPrometheusAdapter() *PrometheusAdapter {
	return &PrometheusAdapter{}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	responseTime.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordLogin() {
	loginsTotal.Inc()
}

func (p *PrometheusAdapter) RecordPricingPreview() {
	pricingPreviewsTotal.Inc()
}
