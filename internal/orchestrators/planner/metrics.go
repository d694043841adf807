package planner

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the planner's Prometheus collectors
type Metrics struct {
	mutations         *prometheus.CounterVec
	cascadeCleared    prometheus.Counter
	sessionsStarted   *prometheus.CounterVec
	tokenRejected     prometheus.Counter
	persistenceErrors *prometheus.CounterVec
	pointsSpent       prometheus.Histogram
}

// NewMetrics registers the planner collectors with reg. A nil reg keeps the
// collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skilltree_mutations_total",
			Help: "Build mutations by operation and whether the engine accepted them",
		}, []string{"operation", "changed"}),
		cascadeCleared: factory.NewCounter(prometheus.CounterOpts{
			Name: "skilltree_cascade_cleared_total",
			Help: "Skills cleared by cascading removal",
		}),
		sessionsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skilltree_sessions_started_total",
			Help: "Planning sessions started by initial build source",
		}, []string{"source"}),
		tokenRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "skilltree_share_token_rejected_total",
			Help: "Share tokens that failed to decode",
		}),
		persistenceErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skilltree_persistence_errors_total",
			Help: "Swallowed build repository failures by operation",
		}, []string{"operation"}),
		pointsSpent: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skilltree_build_points_spent",
			Help:    "Points spent in a build after each accepted mutation",
			Buckets: prometheus.LinearBuckets(0, 10, 9),
		}),
	}
}

func (m *Metrics) recordMutation(operation string, changed bool, cascaded, spent int) {
	m.mutations.WithLabelValues(operation, strconv.FormatBool(changed)).Inc()
	if cascaded > 0 {
		m.cascadeCleared.Add(float64(cascaded))
	}
	if changed {
		m.pointsSpent.Observe(float64(spent))
	}
}
