// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: f17efb82-f9ee-4ab8-9d2c-a98acced3963

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "iptc_organizer"

var (
	registerOnce sync.Once

	operationStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_started_total",
		Help:      "Total number of operations started by type",
	}, []string{"type"})
	operationCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_completed_total",
		Help:      "Total number of operations successfully completed by type",
	}, []string{"type"})
	operationFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_failed_total",
		Help:      "Total number of operations failed by type and error class",
	}, []string{"type", "class"})
	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Histogram of operation durations in seconds by type",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // ~0.5ms up to ~1s
	}, []string{"type"})

	datasetsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasets_decoded_total",
		Help:      "Total number of IIM datasets decoded",
	})
	bytesWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jpeg_bytes_written_total",
		Help:      "Total number of JPEG bytes produced by rewrites",
	})
	watchedFiles = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watch_pending_files",
		Help:      "Number of files waiting for the watcher debounce to expire",
	})
	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of cache lookups by cache and result",
	}, []string{"cache", "result"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(operationStarted, operationCompleted, operationFailed, operationDuration,
			datasetsProcessed, bytesWritten, watchedFiles, cacheLookups)
	})
}

// Operation lifecycle helpers
func IncOperationStarted(opType string)   { operationStarted.WithLabelValues(opType).Inc() }
func IncOperationCompleted(opType string) { operationCompleted.WithLabelValues(opType).Inc() }
func IncOperationFailed(opType, class string) {
	operationFailed.WithLabelValues(opType, class).Inc()
}
func ObserveOperationDuration(opType string, d time.Duration) {
	operationDuration.WithLabelValues(opType).Observe(d.Seconds())
}

// Track runs fn as an operation of the given type, recording start,
// completion or failure, and duration. classify maps a failure to a
// low-cardinality label.
func Track(opType string, classify func(error) string, fn func() error) error {
	IncOperationStarted(opType)
	start := time.Now()
	err := fn()
	ObserveOperationDuration(opType, time.Since(start))
	if err != nil {
		class := "error"
		if classify != nil {
			class = classify(err)
		}
		IncOperationFailed(opType, class)
		return err
	}
	IncOperationCompleted(opType)
	return nil
}

// Counters and gauges
func AddDatasets(n int)     { datasetsProcessed.Add(float64(n)) }
func AddBytesWritten(n int) { bytesWritten.Add(float64(n)) }
func SetWatchPending(n int) { watchedFiles.Set(float64(n)) }

// ObserveCacheLookup counts a hit or miss of the named cache.
func ObserveCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(cache, result).Inc()
}
