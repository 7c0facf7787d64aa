package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenroute_plans_total",
		Help: "Total number of route planning calls, labelled by outcome.",
	}, []string{"outcome"})

	FallbackRoutes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenroute_fallback_routes_total",
		Help: "Total number of searches that exhausted their frontier and returned the direct start/end pair.",
	}, []string{"objective"})

	SettledNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "greenroute_search_settled_nodes",
		Help:    "Number of nodes finalized by one search.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"objective"})

	PlanningDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "greenroute_planning_duration_ms",
		Help:    "Latency of one planning call in milliseconds, snapshot fetch excluded.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 1000},
	})

	SnapshotFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "greenroute_snapshot_fetch_failures_total",
		Help: "Total number of failed graph snapshot fetches.",
	})
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
