// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Copied edges keep their IDs (a clone shares identity with its source).
//   - A clone with a WithEdgeIDPrefix prefix continues the source's sequence;
//     otherwise it gets its own instance prefix, so edges generated later on
//     the clone and on the source never share an ID.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return cloneVerticesLocked(g)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Vertex Metadata maps are shared, not copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := cloneVerticesLocked(g)
	var (
		eid   string
		e, ne *Edge
	)
	for eid, e = range g.edges {
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// cloneVerticesLocked copies flags, the ID sequence and the vertex catalog.
// Caller holds both read locks on g.
func cloneVerticesLocked(g *Graph) *Graph {
	clone := &Graph{
		directed:      g.directed,
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		allowMixed:    g.allowMixed,
		idPrefix:      g.idPrefix,
		customPrefix:  g.customPrefix,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	if g.customPrefix {
		atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	} else {
		clone.idPrefix = instancePrefix()
	}

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so generated IDs resume from prefix+"1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
