package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config controls metric registration.
type Config struct {
	// Namespace and Subsystem prefix every metric name.
	// Defaults: "spyglass" / "scan".
	Namespace string
	Subsystem string
}

// ScanMetrics tracks the scan engine.
//
// Metrics:
//   - spyglass_scan_scans_total: completed scans
//   - spyglass_scan_scan_duration_seconds: scan wall time
//   - spyglass_scan_files_scanned_total: files evaluated
//   - spyglass_scan_matches_total: matches found
//   - spyglass_scan_errors_total: files that failed to read
type ScanMetrics struct {
	registry *prometheus.Registry

	ScansTotal   prometheus.Counter
	ScanDuration prometheus.Histogram
	FilesScanned prometheus.Counter
	Matches      prometheus.Counter
	ScanErrors   prometheus.Counter
}

// NewScanMetrics creates and registers the scan metrics. If registry is
// nil a fresh one is created, pre-loaded with the Go runtime collectors.
func NewScanMetrics(cfg Config, registry *prometheus.Registry) *ScanMetrics {
	if cfg.Namespace == "" {
		cfg.Namespace = "spyglass"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "scan"
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
	}

	m := &ScanMetrics{
		registry: registry,
		ScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "scans_total",
			Help:      "Total number of completed scans",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock duration of scans in seconds",
			// Scans range from a handful of files to whole trees.
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}),
		FilesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "files_scanned_total",
			Help:      "Total number of files evaluated",
		}),
		Matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "matches_total",
			Help:      "Total number of formula matches found",
		}),
		ScanErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "errors_total",
			Help:      "Total number of files that failed to read",
		}),
	}

	registry.MustRegister(m.ScansTotal, m.ScanDuration, m.FilesScanned, m.Matches, m.ScanErrors)
	return m
}

// Handler serves the registry in Prometheus exposition format, for the
// watch command's metrics endpoint.
func (m *ScanMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
