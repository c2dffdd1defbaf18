// SPDX-License-Identifier: MIT

package union

import (
	"fmt"

	"github.com/katalvlaran/unionview/graph"
)

// Sentinel errors. Each wraps one of the graph error categories, so
// errors.Is(err, graph.ErrUnsupported) and errors.Is(err, graph.ErrInvalidArgument)
// work on everything this package returns.
var (
	// ErrNilGraph indicates a backing graph was nil.
	ErrNilGraph = fmt.Errorf("union: graph is nil: %w", graph.ErrInvalidArgument)

	// ErrSameGraph indicates both backing graphs are the same instance.
	ErrSameGraph = fmt.Errorf("union: g1 is equal to g2: %w", graph.ErrInvalidArgument)

	// ErrNoSuchEdge indicates a weight lookup for an edge in neither backing graph.
	ErrNoSuchEdge = fmt.Errorf("union: no such edge in the union: %w", graph.ErrInvalidArgument)

	// ErrReadOnly is returned by every mutating method.
	ErrReadOnly = fmt.Errorf("union: union of graphs is read-only: %w", graph.ErrUnsupported)

	// ErrDegreeUnsupported is returned by degree and directed adjacency queries.
	ErrDegreeUnsupported = fmt.Errorf("union: degree queries are not defined for a union: %w", graph.ErrUnsupported)

	// ErrUnknownCombiner indicates CombinerByName was given an unknown name.
	ErrUnknownCombiner = fmt.Errorf("union: unknown weight combiner: %w", graph.ErrInvalidArgument)

	// ErrInvalidConfig indicates a Config that failed validation.
	ErrInvalidConfig = fmt.Errorf("union: invalid config: %w", graph.ErrInvalidArgument)
)
