// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph that serves as a
// backing graph for unionview.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted), weights are float64
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Caller-chosen edge identities (WithID) and generated ones, unique per
//     Graph instance by default (“g7e1”, “g7e2”, …) or readable with
//     WithEdgeIDPrefix (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Identity:
//
// Vertices are identified by their ID string and edges by their edge ID.
// Two graphs that each hold an edge "x" hold the same edge for the purpose of
// set operations across graphs (see package union). Use WithID to share an
// edge deliberately. Generated IDs of two graphs never coincide unless both
// graphs were given the same WithEdgeIDPrefix.
//
// *Graph implements graph.Graph[string, string]; every enumeration it
// returns is sorted, so results are stable across runs.
//
// Errors:
//
//	ErrEmptyVertexID         zero-length vertex ID
//	ErrVertexNotFound        missing vertex
//	ErrEdgeNotFound          missing edge
//	ErrEmptyEdgeID           WithID("")
//	ErrEdgeIDExists          WithID reuses an ID already in the graph
//	ErrBadWeight             non-zero weight on unweighted graph
//	ErrLoopNotAllowed        self-loop when loops disabled
//	ErrMultiEdgeNotAllowed   parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed  per-edge direction override without mixed mode
package core
