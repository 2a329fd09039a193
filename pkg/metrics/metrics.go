// Package metrics exposes the Prometheus registry and the application's
// metric instruments.
//
// Example:
//
//	if err := metrics.InitMetrics(cfg.Metrics); err != nil {
//		log.Fatal(err)
//	}
//
//	metrics.RequestCounter.WithLabelValues("GET", "/api/v1/nodes").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // registers the pprof endpoints on the default mux

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cotishq/cloudnest/pkg/configs"
)

var (
	// RequestCounter counts HTTP requests by method and path.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// UploadCounter counts accepted file uploads.
	UploadCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudnest_uploads_total",
			Help: "Total number of accepted file uploads",
		},
	)

	// DeleteCounter counts permanently deleted nodes, including trash sweeps.
	DeleteCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudnest_nodes_deleted_total",
			Help: "Total number of permanently deleted nodes",
		},
	)

	registry = prometheus.NewRegistry()
)

// InitMetrics registers the instruments on the registry.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	registry.MustRegister(RequestCounter, RequestDuration, UploadCounter, DeleteCounter)

	return nil
}

// StartMetricsServer mounts /metrics and the pprof endpoints on the debug
// engine.
func StartMetricsServer(config configs.MetricsConfig, debugEngine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	debugEngine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	debugEngine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))

	return nil
}

// GetRegistry returns the Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return registry
}
