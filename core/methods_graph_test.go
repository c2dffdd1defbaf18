// SPDX-License-Identifier: MIT
// Package core_test verifies the graph.Graph[string,string] surface of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionview/core"
	"github.com/katalvlaran/unionview/graph"
)

// buildMixed returns A->B (directed, 2), B-C (undirected, 5), C->A (directed, 1).
func buildMixed(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewMixedGraph(core.WithWeighted())
	_, err := g.AddEdge(VertexA, VertexB, Weight2, core.WithEdgeDirected(true), core.WithID("ab"))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC, 5, core.WithID("bc"))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexC, VertexA, Weight1, core.WithEdgeDirected(true), core.WithID("ca"))
	require.NoError(t, err)

	return g
}

func TestGraphReader_Membership(t *testing.T) {
	var r graph.Reader[string, string] = buildMixed(t)

	assert.True(t, r.ContainsVertex(VertexA))
	assert.False(t, r.ContainsVertex(VertexX))
	assert.True(t, r.ContainsEdge("ab"))
	assert.False(t, r.ContainsEdge("ba"))

	assert.Equal(t, []string{VertexA, VertexB, VertexC}, r.VertexSet())
	assert.Equal(t, []string{"ab", "bc", "ca"}, r.EdgeSet())
}

func TestGraphReader_AllEdgesAndEdgeBetween(t *testing.T) {
	g := buildMixed(t)

	assert.Equal(t, []string{"ab"}, g.AllEdges(VertexA, VertexB))
	assert.Empty(t, g.AllEdges(VertexB, VertexA), "directed edge is one-way")
	assert.Equal(t, []string{"bc"}, g.AllEdges(VertexC, VertexB), "undirected edge works both ways")

	unknown := g.AllEdges(VertexA, VertexX)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)

	eid, ok := g.EdgeBetween(VertexC, VertexA)
	assert.True(t, ok)
	assert.Equal(t, "ca", eid)

	_, ok = g.EdgeBetween(VertexA, VertexC)
	assert.False(t, ok)
}

func TestGraphReader_IncidenceAndEndpoints(t *testing.T) {
	g := buildMixed(t)

	assert.Equal(t, []string{"ab", "ca"}, g.EdgesOf(VertexA), "incoming directed edges are included")
	assert.Empty(t, g.EdgesOf(VertexX))

	src, ok := g.EdgeSource("bc")
	assert.True(t, ok)
	assert.Equal(t, VertexB, src)
	dst, ok := g.EdgeTarget("bc")
	assert.True(t, ok)
	assert.Equal(t, VertexC, dst)

	_, ok = g.EdgeSource("zz")
	assert.False(t, ok)
	_, ok = g.EdgeTarget("zz")
	assert.False(t, ok)
}

func TestGraphReader_EdgeWeight(t *testing.T) {
	g := buildMixed(t)

	w, err := g.EdgeWeight("bc")
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)

	_, err = g.EdgeWeight("zz")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraphReader_Type(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want graph.Type
	}{
		{"default", core.NewGraph(), graph.NewType(graph.Undirected, false, true, false, false)},
		{"directed weighted", core.NewGraph(core.WithDirected(true), core.WithWeighted()), graph.NewType(graph.Directed, true, true, false, false)},
		{"mixed overrides default", core.NewMixedGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges()), graph.NewType(graph.Mixed, false, true, true, true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.g.Type())
		})
	}
}

func TestGraphReader_TypeFollowsGetters(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
	}{
		{"plain", core.NewGraph()},
		{"loops only", core.NewGraph(core.WithLoops())},
		{"multi only", core.NewGraph(core.WithMultiEdges(), core.WithDirected(true))},
		{"mixed weighted", core.NewMixedGraph(core.WithWeighted())},
		{"everything", core.NewMixedGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tp := tc.g.Type()
			assert.Equal(t, tc.g.Weighted(), tp.IsWeighted())
			assert.Equal(t, tc.g.Looped(), tp.AllowsSelfLoops())
			assert.Equal(t, tc.g.Multigraph(), tp.AllowsMultipleEdges())
			assert.Equal(t, tc.g.MixedEdges(), tp.IsMixed())
			assert.Equal(t, tc.g.Directed() && !tc.g.MixedEdges(), tp.IsDirected())
			assert.True(t, tp.IsModifiable())
		})
	}
}

func TestGraphReader_Degrees(t *testing.T) {
	g := buildMixed(t)

	deg, err := g.DegreeOf(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	in, err := g.InDegreeOf(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 2, in, "A->B in, B-C undirected")

	out, err := g.OutDegreeOf(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 1, out, "only B-C")

	incoming, err := g.IncomingEdgesOf(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca"}, incoming)

	outgoing, err := g.OutgoingEdgesOf(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, outgoing)

	_, err = g.IncomingEdgesOf(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.OutgoingEdgesOf(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.DegreeOf(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraphWriter_Mutations(t *testing.T) {
	var w graph.Graph[string, string] = core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	eid, err := w.AddEdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	require.NoError(t, w.AddEdgeWithID(VertexA, VertexB, "manual"))
	require.ErrorIs(t, w.AddEdgeWithID(VertexB, VertexC, "manual"), core.ErrEdgeIDExists)

	require.NoError(t, w.SetEdgeWeight("manual", Weight3))
	got, err := w.EdgeWeight("manual")
	require.NoError(t, err)
	assert.Equal(t, Weight3, got)
	require.ErrorIs(t, w.SetEdgeWeight("zz", Weight1), core.ErrEdgeNotFound)

	removed, err := w.RemoveEdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, eid, removed, "lowest ID goes first")
	_, err = w.RemoveEdgeBetween(VertexC, VertexA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	factory, err := w.EdgeFactory()
	require.NoError(t, err)
	next := factory(VertexA, VertexC)
	assert.False(t, w.ContainsEdge(next), "factory reserves without inserting")
	require.NoError(t, w.AddEdgeWithID(VertexA, VertexC, next))
	assert.True(t, w.ContainsEdge(next))
}

func TestGraphWriter_SetEdgeWeightUnweighted(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdgeBetween(VertexA, VertexB)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetEdgeWeight(eid, Weight1), core.ErrBadWeight)
	require.NoError(t, g.SetEdgeWeight(eid, Weight0))
}

func TestGraph_IsNil(t *testing.T) {
	var g *core.Graph
	assert.True(t, g.IsNil())
	assert.False(t, core.NewGraph().IsNil())
}
