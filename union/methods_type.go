// SPDX-License-Identifier: MIT

package union

import "github.com/katalvlaran/unionview/graph"

// Type classifies the union. It is directed when both graphs are directed,
// undirected when both are undirected and mixed otherwise; it is always
// weighted and unmodifiable. Recomputed on every call.
func (u *View[V, E]) Type() graph.Type {
	t1, t2 := u.g1.Type(), u.g2.Type()

	t := graph.MixedType()
	switch {
	case t1.IsDirected() && t2.IsDirected():
		t = t.AsDirected()
	case t1.IsUndirected() && t2.IsUndirected():
		t = t.AsUndirected()
	}

	return t.AsWeighted().AsUnmodifiable()
}
