// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph types, construction options and sentinel errors.
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyEdgeID indicates WithID was given an empty identifier.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrEdgeIDExists indicates WithID named an identifier already in the catalog.
	ErrEdgeIDExists = errors.New("core: edge ID already exists")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// graphSeq numbers Graph instances so each one gets its own default edge ID
// prefix ("g1e", "g2e", ...). Generated IDs never collide across graphs.
var graphSeq atomic.Uint64

// instancePrefix returns a process-unique default edge ID prefix.
func instancePrefix() string {
	return "g" + strconv.FormatUint(graphSeq.Add(1), 10) + "e"
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// ID is the edge identity. Two graphs holding an edge with the same ID hold
// the same edge as far as set operations across graphs are concerned.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// IsNil reports whether the receiver is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// WithEdgeIDPrefix replaces the per-instance default prefix of generated
// edge IDs, giving readable IDs (prefix+"1", prefix+"2", ...). Two graphs
// with the same prefix generate the same IDs, so their edges share identity
// across graphs; an empty prefix is ignored.
func WithEdgeIDPrefix(prefix string) GraphOption {
	return func(g *Graph) {
		if prefix != "" {
			g.idPrefix = prefix
			g.customPrefix = true
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeSpec)

// edgeSpec collects per-edge overrides before the Edge is built.
type edgeSpec struct {
	id          string
	hasID       bool
	directed    bool
	hasDirected bool
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Only legal in mixed graphs.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(s *edgeSpec) {
		s.directed = directed
		s.hasDirected = true
	}
}

// WithID assigns a caller-chosen identity instead of a generated one.
// Legal in every graph mode.
func WithID(id string) EdgeOption {
	return func(s *edgeSpec) {
		s.id = id
		s.hasID = true
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool   // default directedness
	weighted   bool   // allow non-zero weights
	allowMulti bool   // allow parallel edges
	allowLoops bool   // allow self-loops
	allowMixed bool   // allow mixed directed edges
	idPrefix   string // textual prefix of generated edge IDs

	customPrefix bool // idPrefix came from WithEdgeIDPrefix

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges,
// and generated edge IDs carry a prefix unique to this instance.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.customPrefix {
		g.idPrefix = instancePrefix()
	}

	return g
}

// IsNil reports whether the receiver is a nil pointer, so a typed-nil *Graph
// stored in an interface can be detected without reflection.
func (g *Graph) IsNil() bool { return g == nil }
