// Package metrics exposes prometheus collectors for HTTP traffic and the
// inquiry lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all collectors
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	InquiriesCreated  prometheus.Counter
	InquiriesVerified prometheus.Counter
	NotificationsSent prometheus.Counter
	MailFailures      prometheus.Counter
}

// New creates the collectors on a private registry, so tests can hold
// independent instances
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "artmarket_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "artmarket_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		InquiriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "artmarket_inquiries_created_total",
			Help: "Inquiries submitted by visitors",
		}),
		InquiriesVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "artmarket_inquiries_verified_total",
			Help: "Inquiries that passed email verification",
		}),
		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "artmarket_inquiry_notifications_sent_total",
			Help: "Gallery notification emails sent",
		}),
		MailFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "artmarket_mail_failures_total",
			Help: "Outbound email delivery failures",
		}),
	}
}

// Handler returns the /metrics endpoint handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency per route
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
