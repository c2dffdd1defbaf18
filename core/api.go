// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Configuration flags are immutable after construction; getters still
//     take muVert.RLock so the race detector sees a consistent read.

package core

// GraphStats is a point-in-time summary of a Graph's configuration and size.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewMixedGraph creates a Graph that accepts per-edge WithEdgeDirected overrides.
// WithMixedEdges() is applied first; the caller's opts slice is not modified.
//
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge and SetEdgeWeight reject non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
// It does not say whether the graph currently holds directed edges;
// use HasDirectedEdges for that.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge WithEdgeDirected overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a snapshot of configuration flags and catalog sizes,
// classifying edges by their Directed flag.
//
// The two locks are taken one after the other, never together, so under
// concurrent mutation the vertex and edge halves may come from different moments.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
