// SPDX-License-Identifier: MIT
//
// File: combiner.go
// Role: Weight combination policies for edges present in both backing graphs.

package union

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// WeightCombiner merges the weight of an edge in G1 (w1) with its weight in
// G2 (w2). It must be pure and deterministic.
type WeightCombiner func(w1, w2 float64) float64

// Sum returns w1 + w2. It is the default policy.
func Sum(w1, w2 float64) float64 { return w1 + w2 }

// Min returns the smaller weight (math.Min semantics for NaN and ±0).
func Min(w1, w2 float64) float64 { return math.Min(w1, w2) }

// Max returns the larger weight (math.Max semantics for NaN and ±0).
func Max(w1, w2 float64) float64 { return math.Max(w1, w2) }

// Multiply returns w1 * w2.
func Multiply(w1, w2 float64) float64 { return w1 * w2 }

// First returns G1's weight.
func First(w1, _ float64) float64 { return w1 }

// Second returns G2's weight.
func Second(_, w2 float64) float64 { return w2 }

// combiners is the named catalog used by CombinerByName and Config.
var combiners = map[string]WeightCombiner{
	"sum":      Sum,
	"min":      Min,
	"max":      Max,
	"multiply": Multiply,
	"first":    First,
	"second":   Second,
}

// CombinerByName resolves a catalog name, ignoring case and surrounding spaces.
//
// Errors:
//   - ErrUnknownCombiner when the name is not in the catalog.
func CombinerByName(name string) (WeightCombiner, error) {
	c, ok := lookupCombiner(name)
	if !ok {
		return nil, fmt.Errorf("CombinerByName %q: %w", name, ErrUnknownCombiner)
	}

	return c, nil
}

// lookupCombiner is the catalog lookup shared by CombinerByName and the
// "combiner" validation tag.
func lookupCombiner(name string) (WeightCombiner, bool) {
	c, ok := combiners[strings.ToLower(strings.TrimSpace(name))]

	return c, ok
}

// CombinerNames lists the catalog names in sorted order.
func CombinerNames() []string {
	names := make([]string, 0, len(combiners))
	for name := range combiners {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
