package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "photonic"
	subsystem        = "backend"
)

var (
	probQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "prob_queries_total",
			Help:      "Total number of probability or amplitude queries",
		},
		[]string{"backend"},
	)

	permanentsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "permanents_total",
			Help:      "Total number of matrix permanents evaluated by the Naive backend",
		},
	)

	slosCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "slos_cache_hits_total",
			Help:      "Total number of SLOS partial tables served from the prefix cache",
		},
	)

	samplesDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "samples_total",
			Help:      "Total number of output states sampled",
		},
		[]string{"backend"},
	)
)
