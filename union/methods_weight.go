// SPDX-License-Identifier: MIT
//
// File: methods_weight.go
// Role: Edge weight resolution through the combiner.

package union

import (
	"fmt"

	"go.uber.org/zap"
)

// EdgeWeight resolves the weight of e:
//   - e in both graphs: combiner(w1, w2);
//   - e in one graph: that graph's weight;
//   - e in neither: ErrNoSuchEdge.
//
// Errors from a backing graph's EdgeWeight are returned wrapped.
func (u *View[V, E]) EdgeWeight(e E) (float64, error) {
	in1, in2 := u.g1.ContainsEdge(e), u.g2.ContainsEdge(e)

	switch {
	case in1 && in2:
		w1, err := u.g1.EdgeWeight(e)
		if err != nil {
			return 0, fmt.Errorf("EdgeWeight: g1: %w", err)
		}
		w2, err := u.g2.EdgeWeight(e)
		if err != nil {
			return 0, fmt.Errorf("EdgeWeight: g2: %w", err)
		}
		u.metrics.weightResolved(sourceCombined)

		return u.combiner(w1, w2), nil
	case in1:
		w, err := u.g1.EdgeWeight(e)
		if err != nil {
			return 0, fmt.Errorf("EdgeWeight: g1: %w", err)
		}
		u.metrics.weightResolved(sourceG1)

		return w, nil
	case in2:
		w, err := u.g2.EdgeWeight(e)
		if err != nil {
			return 0, fmt.Errorf("EdgeWeight: g2: %w", err)
		}
		u.metrics.weightResolved(sourceG2)

		return w, nil
	}

	return 0, fmt.Errorf("EdgeWeight %v: %w", e, ErrNoSuchEdge)
}

// SetEdgeWeight always fails with ErrReadOnly.
func (u *View[V, E]) SetEdgeWeight(_ E, _ float64) error {
	return u.reject("SetEdgeWeight")
}

// reject records a refused mutation and returns ErrReadOnly.
func (u *View[V, E]) reject(op string) error {
	u.log.Debug("rejected mutation", zap.String("op", op))
	u.metrics.rejectedMutation(op)

	return fmt.Errorf("%s: %w", op, ErrReadOnly)
}
