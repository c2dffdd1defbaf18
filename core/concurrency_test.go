// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
//
// Goroutines never touch *testing.T; failures travel back over a channel.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionview/core"
)

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	errCh := make(chan error, NConcurrentAdds)
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id), Weight0); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	require.Len(t, g.EdgesOf(VertexX), NConcurrentAdds)
	require.Len(t, g.EdgeSet(), NConcurrentAdds, "generated IDs are unique")
}

func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for i := 0; i < NReaders; i++ {
		_, err := g.AddEdge(VertexA, VertexA, float64(i))
		require.NoError(t, err)
	}

	errCh := make(chan error, NReaders+NCloners)
	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(VertexA)
			if err != nil {
				errCh <- err
				return
			}
			if len(nbs) != NReaders {
				errCh <- fmt.Errorf("Neighbors(A): got %d edges, want %d", len(nbs), NReaders)
			}
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			if c := g.Clone(); c.EdgeCount() != NReaders {
				errCh <- fmt.Errorf("Clone: got %d edges, want %d", c.EdgeCount(), NReaders)
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
}
