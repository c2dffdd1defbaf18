// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus feature queries and filtered removals. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic per graph (prefix + decimal); the default
//     prefix is unique per Graph instance.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - WithEdgeDirected requires WithMixedEdges(); WithID is legal everywhere.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge creates a new edge from 'from' to 'to' and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops and per-edge overrides.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint and ID uniqueness.
//  4. Take the WithID identity or generate one.
//  5. Store the edge, link adjacency, mirror when undirected and not a loop.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMixedEdgesNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrEmptyEdgeID, ErrEdgeIDExists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	var spec edgeSpec
	var opt EdgeOption
	for _, opt = range opts {
		opt(&spec)
	}
	if spec.hasDirected && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if spec.hasID && spec.id == "" {
		return "", ErrEmptyEdgeID
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	var eid string
	if spec.hasID {
		if _, taken := g.edges[spec.id]; taken {
			return "", ErrEdgeIDExists
		}
		eid = spec.id
	} else {
		eid = nextEdgeID(g)
	}

	directed := g.directed
	if spec.hasDirected {
		directed = spec.directed
	}
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: removing an absent edge is never silently ignored.
//
// Complexity: O(1) removal + cleanup of empty buckets.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored in adjacency, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is the live catalog entry; treat it as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate.
// pred must not call back into g: the edge lock is held while it runs.
// Complexity: O(E) scan + bucket cleanup.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	cleanupAdjacency(g)
}

// nextEdgeID returns a new unique textual edge ID (prefix + decimal).
//
// The counter is atomic; the catalog check skips numbers already claimed by
// WithID. Must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	for {
		n := atomic.AddUint64(&g.nextEdgeID, 1)
		buf := make([]byte, 0, len(g.idPrefix)+20)
		buf = append(buf, g.idPrefix...)
		buf = strconv.AppendUint(buf, n, 10)
		id := string(buf)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}
