// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Optional Prometheus counters for a View.
// Concurrency:
//   - Counter updates are atomic; a nil *metrics is a valid no-op recorder.

package union

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "unionview"

// Weight resolution sources (label values of weight_resolutions_total).
const (
	sourceG1       = "g1"
	sourceG2       = "g2"
	sourceCombined = "combined"
)

type metrics struct {
	rejected *prometheus.CounterVec
	weights  *prometheus.CounterVec
}

// newMetrics registers the view counters on reg. A nil reg disables metrics.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	rejected, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "rejected_mutations_total",
		Help:      "Mutations rejected by read-only union views, by operation.",
	}, []string{"op"}))
	if err != nil {
		return nil, err
	}

	weights, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "weight_resolutions_total",
		Help:      "Edge weight lookups answered by union views, by source graph.",
	}, []string{"source"}))
	if err != nil {
		return nil, err
	}

	return &metrics{rejected: rejected, weights: weights}, nil
}

// registerCounterVec registers c, or returns the collector already registered
// under the same descriptor.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}

	return nil, fmt.Errorf("union: register metrics: %w", err)
}

func (m *metrics) rejectedMutation(op string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(op).Inc()
}

func (m *metrics) weightResolved(source string) {
	if m == nil {
		return
	}
	m.weights.WithLabelValues(source).Inc()
}
