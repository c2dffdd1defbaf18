// SPDX-License-Identifier: MIT
//
// File: type.go
// Role: Immutable graph classification (directedness + policy flags).
// Determinism:
//   - Type is a comparable value; As* methods return modified copies.

package graph

import "strings"

// Directedness classifies how a graph orients its edges.
type Directedness uint8

const (
	// Mixed graphs may hold directed and undirected edges at once.
	Mixed Directedness = iota
	// Directed graphs hold only directed edges.
	Directed
	// Undirected graphs hold only undirected edges.
	Undirected
)

// String returns the lowercase name of d.
func (d Directedness) String() string {
	switch d {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "mixed"
	}
}

// Type describes a graph: its directedness plus the weighted, modifiable,
// self-loop and multi-edge policy flags.
//
// The zero value is an unweighted, unmodifiable mixed graph that forbids
// loops and parallel edges. Use the constructors below for common starting points.
type Type struct {
	directedness Directedness
	weighted     bool
	modifiable   bool
	selfLoops    bool
	multiEdges   bool
}

// MixedType returns the permissive mixed type: loops and parallel edges
// allowed, unweighted, modifiable.
func MixedType() Type {
	return Type{directedness: Mixed, modifiable: true, selfLoops: true, multiEdges: true}
}

// NewType builds a Type from explicit flags.
func NewType(d Directedness, weighted, modifiable, selfLoops, multiEdges bool) Type {
	return Type{
		directedness: d,
		weighted:     weighted,
		modifiable:   modifiable,
		selfLoops:    selfLoops,
		multiEdges:   multiEdges,
	}
}

// Directedness returns the orientation class.
func (t Type) Directedness() Directedness { return t.directedness }

// IsDirected is true only for Directed graphs.
func (t Type) IsDirected() bool { return t.directedness == Directed }

// IsUndirected is true only for Undirected graphs.
func (t Type) IsUndirected() bool { return t.directedness == Undirected }

// IsMixed is true only for Mixed graphs.
func (t Type) IsMixed() bool { return t.directedness == Mixed }

// IsWeighted reports whether edge weights are meaningful.
func (t Type) IsWeighted() bool { return t.weighted }

// IsModifiable reports whether Writer methods may succeed.
func (t Type) IsModifiable() bool { return t.modifiable }

// AllowsSelfLoops reports whether v->v edges may exist.
func (t Type) AllowsSelfLoops() bool { return t.selfLoops }

// AllowsMultipleEdges reports whether parallel edges may exist.
func (t Type) AllowsMultipleEdges() bool { return t.multiEdges }

// AsDirected returns a copy classified as Directed.
func (t Type) AsDirected() Type { t.directedness = Directed; return t }

// AsUndirected returns a copy classified as Undirected.
func (t Type) AsUndirected() Type { t.directedness = Undirected; return t }

// AsMixed returns a copy classified as Mixed.
func (t Type) AsMixed() Type { t.directedness = Mixed; return t }

// AsWeighted returns a weighted copy.
func (t Type) AsWeighted() Type { t.weighted = true; return t }

// AsUnweighted returns an unweighted copy.
func (t Type) AsUnweighted() Type { t.weighted = false; return t }

// AsModifiable returns a modifiable copy.
func (t Type) AsModifiable() Type { t.modifiable = true; return t }

// AsUnmodifiable returns an unmodifiable copy.
func (t Type) AsUnmodifiable() Type { t.modifiable = false; return t }

// String renders t as a comma-separated list, e.g. "directed,weighted,unmodifiable".
// Loop and multi-edge flags are appended only when set.
func (t Type) String() string {
	parts := make([]string, 0, 5)
	parts = append(parts, t.directedness.String())
	if t.weighted {
		parts = append(parts, "weighted")
	} else {
		parts = append(parts, "unweighted")
	}
	if t.modifiable {
		parts = append(parts, "modifiable")
	} else {
		parts = append(parts, "unmodifiable")
	}
	if t.selfLoops {
		parts = append(parts, "loops")
	}
	if t.multiEdges {
		parts = append(parts, "multi")
	}

	return strings.Join(parts, ",")
}
