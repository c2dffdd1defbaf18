// SPDX-License-Identifier: MIT

// Package unionview presents two independently owned graphs as one
// read-only graph, without copying either of them.
//
// Layout:
//
//	graph/  Reader, Writer and Graph interfaces, the Type classification
//	        and the shared error categories
//	core/   thread-safe in-memory Graph implementing graph.Graph[string, string]
//	union/  View, the read-only union of two graph.Reader values, plus
//	        weight combiners, Config, logging and Prometheus hooks
//
// Quick start:
//
//	g1 := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g2 := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g1.AddEdge("A", "B", 2, core.WithID("ab"))
//	g2.AddEdge("B", "C", 5, core.WithID("bc"))
//
//	u, err := union.New[string, string](g1, g2, union.WithCombiner(union.Max))
//	// u.VertexSet() == [A B C], u.EdgeWeight("bc") == 5
//
// Every query re-reads both graphs, so the view always reflects their current
// state. Mutating methods return union.ErrReadOnly.
package unionview
