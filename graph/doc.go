// SPDX-License-Identifier: MIT

// Package graph defines the capability contracts shared by every graph in
// unionview: the read side (Reader), the write side (Writer), and the Type
// classification used to describe directedness and policy flags.
//
// Concrete graphs (core.Graph) implement the full Graph contract. Read-only
// graphs such as union.View implement it too, but every Writer method returns
// an error wrapping ErrUnsupported. Consumers that only need queries should
// accept a Reader: a value typed as Reader has no mutating methods at all.
//
// Identity:
//
//	V and E are compared with ==. Two graphs share a vertex or an edge exactly
//	when they hold identical keys; endpoints never participate in edge identity.
//
// Errors:
//
//	ErrUnsupported     - capability not supported by this graph (permanent).
//	ErrInvalidArgument - caller passed an argument the graph cannot accept.
//
// Packages derive their own sentinels from these two categories with %w, so
// errors.Is(err, graph.ErrUnsupported) works across implementations.
package graph
