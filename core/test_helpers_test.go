// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"github.com/katalvlaran/unionview/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	Weight2_5 = 2.5
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// NewGraphFull returns a graph with weights, multi-edges and loops enabled.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// edgeIDs extracts IDs preserving order.
func edgeIDs(edges []*core.Edge) []string {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}

	return ids
}
