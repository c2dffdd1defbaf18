// SPDX-License-Identifier: MIT
//
// File: methods_graph.go
// Role: graph.Graph[string,string] implementation on top of the catalogs.
// Determinism:
//   - Every slice result is sorted (vertex IDs or edge IDs, lex asc).
// Concurrency:
//   - Same locking model as the rest of the package (muVert -> muEdgeAdj).
// AI-HINT (file):
//   - Vertex identity is the vertex ID, edge identity is the edge ID.
//   - Unknown vertices yield empty results here, unlike Neighbors/Degree which return sentinels.

package core

import (
	"sort"

	"github.com/katalvlaran/unionview/graph"
)

var _ graph.Graph[string, string] = (*Graph)(nil)

// ContainsVertex reports whether id is a vertex of g.
func (g *Graph) ContainsVertex(id string) bool { return g.HasVertex(id) }

// ContainsEdge reports whether an edge with the given ID is in the catalog.
func (g *Graph) ContainsEdge(eid string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// VertexSet returns all vertex IDs sorted lex asc.
func (g *Graph) VertexSet() []string { return g.Vertices() }

// EdgeSet returns all edge IDs sorted lex asc.
func (g *Graph) EdgeSet() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	return ids
}

// AllEdges returns the IDs of edges usable from source to target: directed
// edges source→target plus undirected edges between the two. The result is
// empty (never nil) when either endpoint is unknown.
// Complexity: O(k log k) for k matching edges.
func (g *Graph) AllEdges(source, target string) []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.hasVertexLocked(source) || !g.hasVertexLocked(target) {
		return []string{}
	}

	return sortedBucket(g, source, target)
}

// EdgeBetween returns the lowest edge ID connecting source to target.
func (g *Graph) EdgeBetween(source, target string) (string, bool) {
	ids := g.AllEdges(source, target)
	if len(ids) == 0 {
		return "", false
	}

	return ids[0], true
}

// EdgesOf returns every edge touching id, directed edges in both directions included.
// Complexity: O(E log E).
func (g *Graph) EdgesOf(id string) []string {
	return g.collectIncident(id, func(e *Edge) bool { return true })
}

// EdgeSource returns e.From.
func (g *Graph) EdgeSource(eid string) (string, bool) {
	e, err := g.GetEdge(eid)
	if err != nil {
		return "", false
	}

	return e.From, true
}

// EdgeTarget returns e.To.
func (g *Graph) EdgeTarget(eid string) (string, bool) {
	e, err := g.GetEdge(eid)
	if err != nil {
		return "", false
	}

	return e.To, true
}

// EdgeWeight returns the stored weight of the edge.
// Unweighted graphs store 0 for every edge.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) EdgeWeight(eid string) (float64, error) {
	e, err := g.GetEdge(eid)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Type classifies g: Mixed when per-edge overrides are enabled, otherwise
// by the default directedness. Policy flags come from the capability getters.
func (g *Graph) Type() graph.Type {
	d := graph.Undirected
	switch {
	case g.MixedEdges():
		d = graph.Mixed
	case g.Directed():
		d = graph.Directed
	}

	return graph.NewType(d, g.Weighted(), true, g.Looped(), g.Multigraph())
}

// DegreeOf returns in + out + undirected as computed by Degree.
func (g *Graph) DegreeOf(id string) (int, error) {
	in, out, undirected, err := g.Degree(id)
	if err != nil {
		return 0, err
	}

	return in + out + undirected, nil
}

// InDegreeOf counts incoming directed edges plus undirected incidences.
func (g *Graph) InDegreeOf(id string) (int, error) {
	in, _, undirected, err := g.Degree(id)
	if err != nil {
		return 0, err
	}

	return in + undirected, nil
}

// OutDegreeOf counts outgoing directed edges plus undirected incidences.
func (g *Graph) OutDegreeOf(id string) (int, error) {
	_, out, undirected, err := g.Degree(id)
	if err != nil {
		return 0, err
	}

	return out + undirected, nil
}

// IncomingEdgesOf returns directed edges ending at id and undirected edges touching id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) IncomingEdgesOf(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}

	return g.collectIncident(id, func(e *Edge) bool { return !e.Directed || e.To == id }), nil
}

// OutgoingEdgesOf returns directed edges leaving id and undirected edges touching id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) OutgoingEdgesOf(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}

	return g.collectIncident(id, func(e *Edge) bool { return !e.Directed || e.From == id }), nil
}

// AddEdgeBetween adds a zero-weight edge with a generated ID.
func (g *Graph) AddEdgeBetween(source, target string) (string, error) {
	return g.AddEdge(source, target, 0)
}

// AddEdgeWithID adds a zero-weight edge carrying the given ID.
func (g *Graph) AddEdgeWithID(source, target, eid string) error {
	_, err := g.AddEdge(source, target, 0, WithID(eid))

	return err
}

// RemoveEdgeBetween removes the lowest-ID edge connecting source to target.
//
// Errors:
//   - ErrEdgeNotFound when no such edge exists.
func (g *Graph) RemoveEdgeBetween(source, target string) (string, error) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	ids := sortedBucket(g, source, target)
	if len(ids) == 0 {
		return "", ErrEdgeNotFound
	}
	e := g.edges[ids[0]]
	delete(g.edges, e.ID)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return e.ID, nil
}

// SetEdgeWeight overwrites the weight of an existing edge.
//
// Errors:
//   - ErrBadWeight: non-zero weight on an unweighted graph.
//   - ErrEdgeNotFound.
func (g *Graph) SetEdgeWeight(eid string, weight float64) error {
	if !g.Weighted() && weight != 0 {
		return ErrBadWeight
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// EdgeFactory returns a generator that reserves IDs from g's sequence.
// Reserved IDs are not inserted; pass them to AddEdgeWithID.
func (g *Graph) EdgeFactory() (graph.EdgeFactory[string, string], error) {
	return func(_, _ string) string {
		g.muEdgeAdj.Lock()
		defer g.muEdgeAdj.Unlock()

		return nextEdgeID(g)
	}, nil
}

// hasVertexLocked is HasVertex for callers already holding muVert.
func (g *Graph) hasVertexLocked(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// checkVertex validates id against the vertex catalog.
func (g *Graph) checkVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}

	return nil
}

// collectIncident scans the edge catalog for edges touching id that satisfy keep.
// Unknown vertices simply produce an empty slice.
func (g *Graph) collectIncident(id string, keep func(*Edge) bool) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := []string{}
	var e *Edge
	for _, e = range g.edges {
		if e.From != id && e.To != id {
			continue
		}
		if keep(e) {
			ids = append(ids, e.ID)
		}
	}
	sort.Strings(ids)

	return ids
}
