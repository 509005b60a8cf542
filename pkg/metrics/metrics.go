// Package metrics provides Prometheus metrics for the maturity service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maturity"

var (
	accessDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "access",
		Name:      "decisions_total",
		Help:      "Authorization decisions by module, action and outcome.",
	}, []string{"module", "action", "outcome"})

	scoreComputations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scoring",
		Name:      "computations_total",
		Help:      "Form score computations performed.",
	})

	scoreComputationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scoring",
		Name:      "computation_errors_total",
		Help:      "Form score computations that failed.",
	})

	snapshotUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history",
		Name:      "snapshot_upserts_total",
		Help:      "Per-form score snapshots written.",
	})

	backfillRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history",
		Name:      "backfill_rows_total",
		Help:      "Enterprise backfill rows by outcome (written, skipped, failed).",
	}, []string{"outcome"})
)

// AccessDecision counts one authorization decision.
func AccessDecision(module, action string, allowed bool) {
	outcome := "deny"
	if allowed {
		outcome = "allow"
	}
	accessDecisions.WithLabelValues(module, action, outcome).Inc()
}

// ScoreComputed counts one score computation, failed or not.
func ScoreComputed(err error) {
	if err != nil {
		scoreComputationErrors.Inc()
		return
	}
	scoreComputations.Inc()
}

// SnapshotUpserted counts one per-form snapshot write.
func SnapshotUpserted() { snapshotUpserts.Inc() }

// BackfillRow counts one backfill outcome.
func BackfillRow(outcome string) { backfillRows.WithLabelValues(outcome).Inc() }
