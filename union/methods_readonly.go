// SPDX-License-Identifier: MIT
//
// File: methods_readonly.go
// Role: graph.Writer methods and the degree family, all refused.
// Policy:
//   - Mutators return ErrReadOnly and never reach a backing graph.
//   - Degree and directed adjacency queries return ErrDegreeUnsupported.

package union

import (
	"fmt"

	"github.com/katalvlaran/unionview/graph"
)

// AddVertex always fails with ErrReadOnly.
func (u *View[V, E]) AddVertex(_ V) error { return u.reject("AddVertex") }

// RemoveVertex always fails with ErrReadOnly.
func (u *View[V, E]) RemoveVertex(_ V) error { return u.reject("RemoveVertex") }

// AddEdgeBetween always fails with ErrReadOnly.
func (u *View[V, E]) AddEdgeBetween(_, _ V) (E, error) {
	var zero E

	return zero, u.reject("AddEdgeBetween")
}

// AddEdgeWithID always fails with ErrReadOnly.
func (u *View[V, E]) AddEdgeWithID(_, _ V, _ E) error { return u.reject("AddEdgeWithID") }

// RemoveEdge always fails with ErrReadOnly.
func (u *View[V, E]) RemoveEdge(_ E) error { return u.reject("RemoveEdge") }

// RemoveEdgeBetween always fails with ErrReadOnly.
func (u *View[V, E]) RemoveEdgeBetween(_, _ V) (E, error) {
	var zero E

	return zero, u.reject("RemoveEdgeBetween")
}

// EdgeFactory always fails with ErrReadOnly.
func (u *View[V, E]) EdgeFactory() (graph.EdgeFactory[V, E], error) {
	return nil, u.reject("EdgeFactory")
}

// DegreeOf is not defined for a union.
func (u *View[V, E]) DegreeOf(_ V) (int, error) {
	return 0, fmt.Errorf("DegreeOf: %w", ErrDegreeUnsupported)
}

// InDegreeOf is not defined for a union.
func (u *View[V, E]) InDegreeOf(_ V) (int, error) {
	return 0, fmt.Errorf("InDegreeOf: %w", ErrDegreeUnsupported)
}

// OutDegreeOf is not defined for a union.
func (u *View[V, E]) OutDegreeOf(_ V) (int, error) {
	return 0, fmt.Errorf("OutDegreeOf: %w", ErrDegreeUnsupported)
}

// IncomingEdgesOf is not defined for a union.
func (u *View[V, E]) IncomingEdgesOf(_ V) ([]E, error) {
	return nil, fmt.Errorf("IncomingEdgesOf: %w", ErrDegreeUnsupported)
}

// OutgoingEdgesOf is not defined for a union.
func (u *View[V, E]) OutgoingEdgesOf(_ V) ([]E, error) {
	return nil, fmt.Errorf("OutgoingEdgesOf: %w", ErrDegreeUnsupported)
}
