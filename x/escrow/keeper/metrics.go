package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the escrow module
type Metrics struct {
	SessionsFunded      prometheus.Counter
	SessionsSettled     prometheus.Counter
	VerificationsFailed prometheus.Counter
	EscrowedTotal       prometheus.Counter
	FeesCollected       prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers escrow metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SessionsFunded: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "drip",
					Subsystem: "escrow",
					Name:      "sessions_funded_total",
					Help:      "Total sessions funded",
				},
			),
			SessionsSettled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "drip",
					Subsystem: "escrow",
					Name:      "sessions_settled_total",
					Help:      "Total sessions settled",
				},
			),
			VerificationsFailed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "drip",
					Subsystem: "escrow",
					Name:      "verifications_failed_total",
					Help:      "Total settlement proofs rejected by the verifier",
				},
			),
			EscrowedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "drip",
					Subsystem: "escrow",
					Name:      "escrowed_total",
					Help:      "Cumulative tokens escrowed across all sessions",
				},
			),
			FeesCollected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "drip",
					Subsystem: "escrow",
					Name:      "fees_collected_total",
					Help:      "Cumulative protocol fees carved out of settlements",
				},
			),
		}
	})
	return metrics
}
