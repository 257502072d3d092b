package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniority_cache_lookups_total",
			Help: "Cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)

	InferenceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniority_inference_calls_total",
			Help: "Batch inference calls by outcome (ok, partial, failed)",
		},
		[]string{"outcome"},
	)

	InferenceBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seniority_inference_batch_size",
			Help:    "Number of entries sent in one inference batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	FilesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniority_files_processed_total",
			Help: "Processed postings files by status",
		},
		[]string{"status"},
	)
)
