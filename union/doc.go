// SPDX-License-Identifier: MIT

// Package union provides View, a read-only composite of two graphs.
//
// Given G1=(V1,E1) and G2=(V2,E2), a View behaves as G=(V1∪V2, E1∪E2)
// without copying either input. Every query is answered by asking both
// backing graphs at call time, so the view always reflects their current
// state and never caches anything.
//
// Identity:
//
//	A vertex or edge present in both graphs (same key, compared with ==)
//	appears once in every set-returning method. Endpoints never decide edge
//	identity.
//
// Weights:
//
//	An edge present in both graphs has weight combiner(w1, w2); an edge in
//	one graph keeps that graph's weight. The combiner is injected with
//	WithCombiner and defaults to Sum.
//
// Priority:
//
//	EdgeBetween, EdgeSource and EdgeTarget consult G1 before G2.
//
// Read-only:
//
//	The view holds its backing graphs as graph.Reader values, so it has no
//	way to call a mutator on them. View still satisfies graph.Graph so it can
//	stand in wherever a full graph is expected, including as a backing graph
//	of another View; every Writer method returns ErrReadOnly.
//
// Concurrency:
//
//	View holds no locks and no mutable state. Concurrent queries are as safe
//	as concurrent reads on the two backing graphs. Separate calls are not
//	atomic with respect to each other.
//
// Errors:
//
//	ErrNilGraph          - New got a nil backing graph (invalid argument).
//	ErrSameGraph         - New got the same graph twice (invalid argument).
//	ErrNoSuchEdge        - EdgeWeight on an edge in neither graph (invalid argument).
//	ErrReadOnly          - any mutation (unsupported).
//	ErrDegreeUnsupported - degree / directed adjacency queries (unsupported).
//	ErrUnknownCombiner   - CombinerByName miss (invalid argument).
//	ErrInvalidConfig     - Config failed validation (invalid argument).
package union
