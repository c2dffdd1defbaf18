// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: View type, construction validation and accessors.
// Policy:
//   - g1, g2 and the combiner are fixed at construction; there is no rebinding.
//   - The view stores graph.Reader handles only.

package union

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/unionview/graph"
)

var _ graph.Graph[string, string] = (*View[string, string])(nil)

// View is a read-only union of two graphs. Create it with New.
type View[V comparable, E comparable] struct {
	g1, g2   graph.Reader[V, E]
	combiner WeightCombiner
	log      *zap.Logger
	metrics  *metrics
}

// New builds the union of g1 and g2.
//
// Errors:
//   - ErrNilGraph: g1 or g2 is a nil interface or a typed nil.
//   - ErrSameGraph: g1 and g2 are the same instance. Only reference-typed
//     graphs (pointers, maps, chans) have an identity; two value-typed graphs
//     are always distinct, even when ==.
//   - a registration error when WithRegisterer's registry rejects the counters.
//
// Complexity: O(1); nothing is copied.
func New[V comparable, E comparable](g1, g2 graph.Reader[V, E], opts ...Option) (*View[V, E], error) {
	if isNil(g1) {
		return nil, fmt.Errorf("New: g1: %w", ErrNilGraph)
	}
	if isNil(g2) {
		return nil, fmt.Errorf("New: g2: %w", ErrNilGraph)
	}
	if sameInstance(g1, g2) {
		return nil, fmt.Errorf("New: %w", ErrSameGraph)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	m, err := newMetrics(s.registerer)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	u := &View[V, E]{
		g1:       g1,
		g2:       g2,
		combiner: s.combiner,
		log:      s.logger,
		metrics:  m,
	}
	u.log.Debug("union view created",
		zap.Stringer("g1_type", g1.Type()),
		zap.Stringer("g2_type", g2.Type()),
	)

	return u, nil
}

// First returns G1 unchanged.
func (u *View[V, E]) First() graph.Reader[V, E] { return u.g1 }

// Second returns G2 unchanged.
func (u *View[V, E]) Second() graph.Reader[V, E] { return u.g2 }

// Combiner returns the weight policy in effect.
func (u *View[V, E]) Combiner() WeightCombiner { return u.combiner }

// IsNil reports whether the receiver is a nil pointer, so a typed-nil view
// passed to New is rejected like any other nil graph.
func (u *View[V, E]) IsNil() bool { return u == nil }

// isNil catches nil interfaces, typed nil pointers (and other nil-able kinds)
// and values that declare themselves nil through IsNil.
func isNil(g any) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return true
		}
	}
	if n, ok := g.(interface{ IsNil() bool }); ok {
		return n.IsNil()
	}

	return false
}

// sameInstance reports whether a and b are the same reference (pointer, map,
// chan). Value-typed graphs have no identity, so two of them are never the
// same instance even when they compare equal.
func sameInstance(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return false
}
