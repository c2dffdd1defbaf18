// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Capability interfaces consumed and produced by graph implementations.
// Determinism:
//   - Set-returning methods return each element once. Ordering is defined by
//     the implementation and documented there.
// Concurrency:
//   - The contracts make no thread-safety promise; implementations document theirs.

package graph

// EdgeFactory produces a fresh edge identity for the given endpoints.
type EdgeFactory[V comparable, E comparable] func(source, target V) E

// Reader is the query side of a graph.
//
// Set-returning methods never return an error for unknown vertices: they
// return an empty result. Lookups that can miss report presence with a bool.
// EdgeWeight is the exception: asking for the weight of an unknown edge is a
// caller error and is reported as one.
type Reader[V comparable, E comparable] interface {
	// ContainsVertex reports whether v is a member of the graph.
	ContainsVertex(v V) bool
	// ContainsEdge reports whether e is a member of the graph (by identity).
	ContainsEdge(e E) bool

	// VertexSet returns every vertex once.
	VertexSet() []V
	// EdgeSet returns every edge once.
	EdgeSet() []E

	// AllEdges returns the edges connecting source to target.
	AllEdges(source, target V) []E
	// EdgeBetween returns one edge connecting source to target, if any.
	EdgeBetween(source, target V) (E, bool)
	// EdgesOf returns every edge touching v.
	EdgesOf(v V) []E

	// EdgeSource returns the source endpoint of e.
	EdgeSource(e E) (V, bool)
	// EdgeTarget returns the target endpoint of e.
	EdgeTarget(e E) (V, bool)
	// EdgeWeight returns the weight of e.
	EdgeWeight(e E) (float64, error)

	// Type describes the graph's directedness and policy flags.
	Type() Type

	DegreeOf(v V) (int, error)
	InDegreeOf(v V) (int, error)
	OutDegreeOf(v V) (int, error)
	IncomingEdgesOf(v V) ([]E, error)
	OutgoingEdgesOf(v V) ([]E, error)
}

// Writer is the mutation side of a graph.
type Writer[V comparable, E comparable] interface {
	AddVertex(v V) error
	RemoveVertex(v V) error

	// AddEdgeBetween connects source to target with a factory-generated edge.
	AddEdgeBetween(source, target V) (E, error)
	// AddEdgeWithID connects source to target using the caller's edge identity.
	AddEdgeWithID(source, target V, e E) error

	RemoveEdge(e E) error
	// RemoveEdgeBetween removes one edge connecting source to target and returns it.
	RemoveEdgeBetween(source, target V) (E, error)

	SetEdgeWeight(e E, weight float64) error
	EdgeFactory() (EdgeFactory[V, E], error)
}

// Graph is the full read/write contract.
type Graph[V comparable, E comparable] interface {
	Reader[V, E]
	Writer[V, E]
}
