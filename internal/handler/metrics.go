package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

var (
	statusUpdatesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_updates_processed_total",
			Help:      "Total number of successfully applied status updates",
		},
	)

	statusUpdatesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_updates_failed_total",
			Help:      "Total number of failed status update attempts",
		},
	)

	statusUpdatesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_updates_dlq_total",
			Help:      "Total number of status updates written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	statusUpdateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_update_duration_seconds",
			Help:      "Histogram of status update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusUpdatesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_updates_in_progress",
			Help:      "Number of status updates currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by number",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by number",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by number",
		},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Order creation requests by result (created, replayed, invalid, failed)",
		},
		[]string{"result"},
	)
)

var (
	paymentVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "verifications_total",
			Help:      "Payment verifications by flow and result",
		},
		[]string{"flow", "result"},
	)

	paymentRecoveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "recovered_orders_total",
			Help:      "Verified payments that had no matching order and were recovered into a synthesized one",
		},
		[]string{"flow"},
	)

	paymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "verification_duration_seconds",
			Help:      "Histogram of payment verification durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"flow"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		statusUpdatesProcessed,
		statusUpdatesFailed,
		statusUpdatesDLQ,
		commitErrors,
		statusUpdateDuration,
		statusUpdatesInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
		ordersCreated,

		paymentVerifications,
		paymentRecoveries,
		paymentVerifyDuration,
	)
}
