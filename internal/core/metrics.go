package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-local sync counters. Nothing in the engine reads these back; the
// ledger, not the metrics, is the source of truth for batch outcomes.
var (
	syncOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "syncbridge",
		Subsystem: "sync",
		Name:      "operations_total",
		Help:      "Sync batch attempts by model key and ledger outcome.",
	}, []string{"model", "status"})

	syncRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "syncbridge",
		Subsystem: "sync",
		Name:      "records_total",
		Help:      "Records persisted by model key.",
	}, []string{"model"})

	syncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "syncbridge",
		Subsystem: "sync",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of sync batch calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"model"})
)

// observeSync records one finished batch attempt.
func observeSync(model string, status SyncStatus, persisted int, elapsed time.Duration) {
	syncOperations.WithLabelValues(model, string(status)).Inc()
	if persisted > 0 {
		syncRecords.WithLabelValues(model).Add(float64(persisted))
	}
	syncDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}
