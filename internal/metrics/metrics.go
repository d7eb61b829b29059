package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SensorReads counts sensor polls by sensor name and result (ok|error).
	SensorReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soil_buddy_sensor_reads_total",
			Help: "Total number of sensor reads",
		},
		[]string{"sensor", "result"},
	)

	// SamplesStored counts samples written to the store, by source (poll|ingest|seed).
	SamplesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soil_buddy_samples_stored_total",
			Help: "Total number of soil samples stored",
		},
		[]string{"source"},
	)

	// AlertsRaised counts alerts that became active, not repeat evaluations.
	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soil_buddy_alerts_raised_total",
			Help: "Total number of soil alerts raised",
		},
		[]string{"type", "severity"},
	)

	ReportsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "soil_buddy_reports_built_total",
			Help: "Total number of weekly reports built",
		},
	)

	// ChatRequests counts assistant requests by persona and outcome
	// (ok|fallback|rate_limited).
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soil_buddy_chat_requests_total",
			Help: "Total number of assistant chat requests",
		},
		[]string{"persona", "outcome"},
	)

	ChatDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "soil_buddy_chat_completion_duration_seconds",
			Help:    "Assistant completion latency distribution",
			Buckets: prometheus.DefBuckets,
		},
	)
)
