// Package metrics exposes Prometheus counters for the service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "marketplace"

// Manager holds the registry and every custom metric.
type Manager struct {
	Registry *prometheus.Registry

	notificationsCreated *prometheus.CounterVec
	notificationsSkipped *prometheus.CounterVec
	realtimeFailures     *prometheus.CounterVec
	mediaCleanupFailures *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpLatency          *prometheus.HistogramVec
}

var _ service.Metrics = (*Manager)(nil)

// NewManager creates a registry with runtime collectors and the service metrics.
func NewManager(cfg *config.Config) *Manager {
	namespace := defaultNamespace
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = sanitizeNamespace(cfg.Env.ServiceName)
	}

	registry := prometheus.NewRegistry()

	m := &Manager{
		Registry: registry,
		notificationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Notifications persisted, by type.",
		}, []string{"type"}),
		notificationsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_skipped_total",
			Help:      "Message notifications not created because an unread one exists.",
		}, []string{"reason"}),
		realtimeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_publish_failures_total",
			Help:      "Realtime deliveries that failed, by event.",
		}, []string{"event"}),
		mediaCleanupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_cleanup_failures_total",
			Help:      "Best-effort media deletions that failed, by operation.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	registry.MustRegister(
		m.notificationsCreated,
		m.notificationsSkipped,
		m.realtimeFailures,
		m.mediaCleanupFailures,
		m.httpRequests,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func sanitizeNamespace(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func (m *Manager) NotificationCreated(notificationType string) {
	m.notificationsCreated.WithLabelValues(notificationType).Inc()
}

func (m *Manager) NotificationSkipped(reason string) {
	m.notificationsSkipped.WithLabelValues(reason).Inc()
}

func (m *Manager) RealtimePublishFailed(event string) {
	m.realtimeFailures.WithLabelValues(event).Inc()
}

func (m *Manager) MediaCleanupFailed(operation string) {
	m.mediaCleanupFailures.WithLabelValues(operation).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records request count and latency by route template.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			method := c.Request().Method
			m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.httpLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
