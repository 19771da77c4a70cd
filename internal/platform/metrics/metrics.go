package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's prometheus instruments. Each Collector
// owns its registry so tests can build as many as they need.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	RecordsCreated *prometheus.CounterVec
}

func NewCollector(serviceName string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "registry",
			Name:      "records_created_total",
			Help:      "Total person records created, by entity kind.",
		}, []string{"kind"}),
	}
}

// Handler serves the collector's registry in prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request count, latency, and in-flight gauge for
// every request passing through it.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			c.InFlightGauge.Inc()
			start := time.Now()

			err := next(ctx)

			c.InFlightGauge.Dec()
			status := strconv.Itoa(ctx.Response().Status)
			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			c.RequestsTotal.WithLabelValues(ctx.Request().Method, path, status).Inc()
			c.RequestDuration.WithLabelValues(ctx.Request().Method, path, status).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
