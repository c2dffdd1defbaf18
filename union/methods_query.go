// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Membership and enumeration queries resolved against both graphs.
// Determinism:
//   - Set results list G1's items first (G1 order), then G2's items not seen in G1.
//   - Dedup is by identity (== on V or E).
// AI-HINT (file):
//   - A backing graph answers endpoint queries only if it holds both endpoints.
//   - Ties always go to G1.

package union

// ContainsVertex reports whether v is a vertex of G1 or G2.
func (u *View[V, E]) ContainsVertex(v V) bool {
	return u.g1.ContainsVertex(v) || u.g2.ContainsVertex(v)
}

// ContainsEdge reports whether e is an edge of G1 or G2.
func (u *View[V, E]) ContainsEdge(e E) bool {
	return u.g1.ContainsEdge(e) || u.g2.ContainsEdge(e)
}

// VertexSet returns a snapshot of V1 ∪ V2, each vertex once.
// Complexity: O(|V1| + |V2|).
func (u *View[V, E]) VertexSet() []V {
	return mergeUnique(u.g1.VertexSet(), u.g2.VertexSet())
}

// EdgeSet returns a snapshot of E1 ∪ E2: G1's edges first, then G2's new edges.
// Complexity: O(|E1| + |E2|).
func (u *View[V, E]) EdgeSet() []E {
	return mergeUnique(u.g1.EdgeSet(), u.g2.EdgeSet())
}

// AllEdges returns the edges from source to target in either graph. A graph
// is consulted only when it contains both endpoints. The result is empty,
// never nil, when no graph qualifies.
func (u *View[V, E]) AllEdges(source, target V) []E {
	var a, b []E
	if u.g1.ContainsVertex(source) && u.g1.ContainsVertex(target) {
		a = u.g1.AllEdges(source, target)
	}
	if u.g2.ContainsVertex(source) && u.g2.ContainsVertex(target) {
		b = u.g2.AllEdges(source, target)
	}

	return mergeUnique(a, b)
}

// EdgeBetween returns an edge from source to target, asking G1 first and
// G2 only when G1 has no answer.
func (u *View[V, E]) EdgeBetween(source, target V) (E, bool) {
	if u.g1.ContainsVertex(source) && u.g1.ContainsVertex(target) {
		if e, ok := u.g1.EdgeBetween(source, target); ok {
			return e, true
		}
	}
	if u.g2.ContainsVertex(source) && u.g2.ContainsVertex(target) {
		if e, ok := u.g2.EdgeBetween(source, target); ok {
			return e, true
		}
	}

	var zero E

	return zero, false
}

// EdgesOf returns the union of v's incident edges in the graphs that contain v.
func (u *View[V, E]) EdgesOf(v V) []E {
	var a, b []E
	if u.g1.ContainsVertex(v) {
		a = u.g1.EdgesOf(v)
	}
	if u.g2.ContainsVertex(v) {
		b = u.g2.EdgesOf(v)
	}

	return mergeUnique(a, b)
}

// EdgeSource returns the source of e, G1 checked first.
// The boolean is false when e is in neither graph.
func (u *View[V, E]) EdgeSource(e E) (V, bool) {
	if u.g1.ContainsEdge(e) {
		return u.g1.EdgeSource(e)
	}
	if u.g2.ContainsEdge(e) {
		return u.g2.EdgeSource(e)
	}

	var zero V

	return zero, false
}

// EdgeTarget returns the target of e, G1 checked first.
// The boolean is false when e is in neither graph.
func (u *View[V, E]) EdgeTarget(e E) (V, bool) {
	if u.g1.ContainsEdge(e) {
		return u.g1.EdgeTarget(e)
	}
	if u.g2.ContainsEdge(e) {
		return u.g2.EdgeTarget(e)
	}

	var zero V

	return zero, false
}

// mergeUnique returns a followed by the items of b not in a, each item once.
// The result is never nil.
func mergeUnique[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	seen := make(map[T]struct{}, len(a)+len(b))
	for _, s := range [2][]T{a, b} {
		for _, x := range s {
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}

	return out
}
