package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceHTTP  = "http"
	sourceKafka = "kafka"
)

var (
	commandsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "commands_processed_total",
			Help:      "Total number of place-order commands turned into orders",
		},
	)

	commandsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "commands_failed_total",
			Help:      "Total number of place-order commands that could not be handled",
		},
	)

	commandsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "commands_dlq_total",
			Help:      "Total number of place-order commands written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	commandProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "command_processing_duration_seconds",
			Help:      "Histogram of place-order command processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	commandsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "canteen",
			Subsystem: "kafka_consumer",
			Name:      "commands_in_progress",
			Help:      "Number of place-order commands currently being processed",
		},
	)
)

var (
	ordersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders placed, by intake channel",
		},
		[]string{"source"},
	)

	ordersPlaceFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "orders",
			Name:      "place_failed_total",
			Help:      "Total number of rejected or failed order placements, by intake channel",
		},
		[]string{"source"},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of staff status updates, by new status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		commandsProcessed,
		commandsFailed,
		commandsDLQ,
		commitErrors,
		commandProcessingDuration,
		commandsInProgress,

		ordersPlaced,
		ordersPlaceFailed,
		statusUpdates,
	)
}
