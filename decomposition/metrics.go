package decomposition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "photonic"
	subsystem        = "decomposition"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total number of decompositions by shape and outcome",
		},
		[]string{"shape", "outcome"},
	)

	sitesSolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "sites_solved_total",
			Help:      "Total number of template sites solved",
		},
	)

	solverRestarts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "solver_restarts_total",
			Help:      "Total number of site solves restarted from a new random point",
		},
	)

	objectiveEvaluations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "objective_evaluations_total",
			Help:      "Total number of template unitaries evaluated by the solver",
		},
	)
)
