package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tiered read counters, labeled by the tier that answered.
	PortfolioReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_reads_total",
			Help: "Total number of portfolio reads by result tier",
		},
		[]string{"tier"}, // fast, durable, live, miss
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of fast cache errors",
		},
		[]string{"store", "operation"},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Duration of fast cache operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "store"},
	)

	KeysInvalidated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_keys_invalidated_total",
			Help: "Total number of fast cache keys removed by invalidation",
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of events published per topic",
		},
		[]string{"topic"},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_handler_errors_total",
			Help: "Total number of event handler failures per topic",
		},
		[]string{"topic"},
	)

	ReconciliationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_reconciliation_runs_total",
			Help: "Total number of webhook reconciliation passes per chain",
		},
		[]string{"chain", "result"}, // ok, skipped, failed
	)

	WebhookVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_signature_verifications_total",
			Help: "Total number of inbound webhook signature verifications",
		},
		[]string{"result"}, // ok, failed
	)
)

// RecordRead records a portfolio read answered by the given tier.
func RecordRead(tier string) {
	PortfolioReads.WithLabelValues(tier).Inc()
}

// RecordCacheError records a fast cache failure.
func RecordCacheError(store, operation string) {
	CacheErrors.WithLabelValues(store, operation).Inc()
}

// TimeCacheOperation returns a timer function for a cache operation.
func TimeCacheOperation(operation, store string) func() {
	timer := prometheus.NewTimer(CacheOperationDuration.WithLabelValues(operation, store))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordKeysInvalidated adds to the invalidated-key counter.
func RecordKeysInvalidated(n int) {
	KeysInvalidated.Add(float64(n))
}

// RecordEventPublished counts one published event.
func RecordEventPublished(topic string) {
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventHandlerError counts one failed handler invocation.
func RecordEventHandlerError(topic string) {
	EventHandlerErrors.WithLabelValues(topic).Inc()
}

// RecordReconciliation counts one reconciliation pass outcome.
func RecordReconciliation(chain, result string) {
	ReconciliationRuns.WithLabelValues(chain, result).Inc()
}

// RecordWebhookVerification counts one signature verification outcome.
func RecordWebhookVerification(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	WebhookVerifications.WithLabelValues(result).Inc()
}
