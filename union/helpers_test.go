// SPDX-License-Identifier: MIT

package union_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionview/core"
	"github.com/katalvlaran/unionview/graph"
)

// Common vertex IDs used across union tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
	VertexY = "Y"
	VertexZ = "Z"
)

// Edge identities shared by the fixtures.
const (
	EdgeAB = "ab"
	EdgeBC = "bc"
	EdgeXY = "xy"
)

var errBoom = errors.New("boom")

// directedPair builds G1 = {A->B (2)} and G2 = {B->C (5)}.
func directedPair(t *testing.T) (*core.Graph, *core.Graph) {
	t.Helper()
	g1 := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithEdgeIDPrefix("g1e"))
	g2 := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithEdgeIDPrefix("g2e"))
	_, err := g1.AddEdge(VertexA, VertexB, 2, core.WithID(EdgeAB))
	require.NoError(t, err)
	_, err = g2.AddEdge(VertexB, VertexC, 5, core.WithID(EdgeBC))
	require.NoError(t, err)

	return g1, g2
}

// sharedPair builds two undirected graphs that both hold X-Y, weighted 3 and 4.
func sharedPair(t *testing.T) (*core.Graph, *core.Graph) {
	t.Helper()
	g1 := core.NewGraph(core.WithWeighted())
	g2 := core.NewGraph(core.WithWeighted())
	_, err := g1.AddEdge(VertexX, VertexY, 3, core.WithID(EdgeXY))
	require.NoError(t, err)
	_, err = g2.AddEdge(VertexX, VertexY, 4, core.WithID(EdgeXY))
	require.NoError(t, err)

	return g1, g2
}

// snapshot is a structural fingerprint of a core graph.
type snapshot struct {
	Vertices []string
	Edges    []core.Edge
	Stats    core.GraphStats
}

func takeSnapshot(g *core.Graph) snapshot {
	s := snapshot{Vertices: g.Vertices(), Stats: *g.Stats()}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, *e)
	}

	return s
}

// unlabeled wraps a Reader in a non-comparable value type.
type unlabeled struct {
	graph.Reader[string, string]
	tags []string
}

// failingWeights reports every edge weight lookup as failed.
type failingWeights struct {
	*core.Graph
}

func (failingWeights) EdgeWeight(string) (float64, error) { return 0, errBoom }
