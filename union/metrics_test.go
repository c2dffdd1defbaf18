// SPDX-License-Identifier: MIT

package union

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/unionview/core"
)

func newSharedView(t *testing.T, opts ...Option) *View[string, string] {
	t.Helper()
	g1 := core.NewGraph(core.WithWeighted())
	g2 := core.NewGraph(core.WithWeighted())
	_, err := g1.AddEdge("A", "B", 1, core.WithID("ab"))
	require.NoError(t, err)
	_, err = g1.AddEdge("A", "C", 1, core.WithID("ac"))
	require.NoError(t, err)
	_, err = g2.AddEdge("A", "B", 2, core.WithID("ab"))
	require.NoError(t, err)
	_, err = g2.AddEdge("B", "D", 2, core.WithID("bd"))
	require.NoError(t, err)

	u, err := New[string, string](g1, g2, opts...)
	require.NoError(t, err)

	return u
}

func TestMetrics_Disabled(t *testing.T) {
	u := newSharedView(t)
	assert.Nil(t, u.metrics)

	// nil recorder must be safe
	require.ErrorIs(t, u.AddVertex("Z"), ErrReadOnly)
	_, err := u.EdgeWeight("ab")
	require.NoError(t, err)
}

func TestMetrics_CountsRejectionsAndSources(t *testing.T) {
	reg := prometheus.NewRegistry()
	u := newSharedView(t, WithRegisterer(reg))

	require.Error(t, u.AddVertex("Z"))
	require.Error(t, u.AddVertex("Z"))
	require.Error(t, u.SetEdgeWeight("ab", 3))

	for _, eid := range []string{"ab", "ac", "bd", "bd"} {
		_, err := u.EdgeWeight(eid)
		require.NoError(t, err)
	}
	_, err := u.EdgeWeight("zz")
	require.ErrorIs(t, err, ErrNoSuchEdge)

	assert.Equal(t, 2.0, testutil.ToFloat64(u.metrics.rejected.WithLabelValues("AddVertex")))
	assert.Equal(t, 1.0, testutil.ToFloat64(u.metrics.rejected.WithLabelValues("SetEdgeWeight")))
	assert.Equal(t, 1.0, testutil.ToFloat64(u.metrics.weights.WithLabelValues(sourceCombined)))
	assert.Equal(t, 1.0, testutil.ToFloat64(u.metrics.weights.WithLabelValues(sourceG1)))
	assert.Equal(t, 2.0, testutil.ToFloat64(u.metrics.weights.WithLabelValues(sourceG2)))
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newSharedView(t, WithRegisterer(reg))
	b := newSharedView(t, WithRegisterer(reg))

	require.Error(t, a.RemoveEdge("ab"))
	require.Error(t, b.RemoveEdge("ab"))

	assert.Same(t, a.metrics.rejected, b.metrics.rejected)
	assert.Equal(t, 2.0, testutil.ToFloat64(b.metrics.rejected.WithLabelValues("RemoveEdge")))

	n, err := testutil.GatherAndCount(reg, metricsNamespace+"_rejected_mutations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_RegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "rejected_mutations_total",
		Help:      "something else",
	}, []string{"op"}))

	_, err := New[string, string](core.NewGraph(), core.NewGraph(), WithRegisterer(reg))
	require.Error(t, err)
	assert.ErrorContains(t, err, "register metrics")
}

func TestLogging_DebugEvents(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	u := newSharedView(t, WithLogger(zap.New(obs)))

	created := logs.FilterMessage("union view created").All()
	require.Len(t, created, 1)
	assert.Equal(t, "undirected,weighted,modifiable", created[0].ContextMap()["g1_type"])

	_, err := u.RemoveEdgeBetween("A", "B")
	require.ErrorIs(t, err, ErrReadOnly)

	rejected := logs.FilterMessage("rejected mutation").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.DebugLevel, rejected[0].Level)
	assert.Equal(t, "RemoveEdgeBetween", rejected[0].ContextMap()["op"])

	// reads are not logged
	_ = u.EdgeSet()
	assert.Equal(t, 2, logs.Len())
}

func TestWithLogger_NilKeepsNop(t *testing.T) {
	u := newSharedView(t, WithLogger(nil))
	require.NotNil(t, u.log)
	require.ErrorIs(t, u.AddVertex("Z"), ErrReadOnly)
}

func TestMergeUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2, 4}, mergeUnique([]int{3, 1, 3}, []int{2, 1, 4}))

	empty := mergeUnique[int](nil, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestIsNilAndSameInstance(t *testing.T) {
	var g *core.Graph
	var m map[string]int
	assert.True(t, isNil(nil))
	assert.True(t, isNil(g))
	assert.True(t, isNil(m))
	assert.False(t, isNil(core.NewGraph()))

	a, b := core.NewGraph(), core.NewGraph()
	assert.True(t, sameInstance(a, a))
	assert.False(t, sameInstance(a, b))
	assert.False(t, sameInstance([]int{1}, []int{1}))
	assert.False(t, sameInstance(a, 1))

	type valueGraph struct{ n int }
	assert.False(t, sameInstance(valueGraph{1}, valueGraph{1}), "values have no identity")
	m1, m2 := map[string]int{}, map[string]int{}
	assert.True(t, sameInstance(m1, m1))
	assert.False(t, sameInstance(m1, m2))
}
