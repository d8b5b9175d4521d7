package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "disasterhub_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ScrapeCacheResults counts official-update lookups by outcome (hit|miss|error).
	ScrapeCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disasterhub_scrape_cache_results_total",
			Help: "Official-update cache lookups by outcome",
		},
		[]string{"result"},
	)

	// DisastersCreated counts successful disaster report insertions.
	DisastersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disasterhub_disasters_created_total",
			Help: "Total number of disaster reports created",
		},
	)

	// RealtimeClients tracks currently connected websocket clients.
	RealtimeClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "disasterhub_realtime_clients",
			Help: "Number of connected realtime clients",
		},
	)
)
