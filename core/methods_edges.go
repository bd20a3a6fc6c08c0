// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in first-insertion order.
// Invariant:
//   - Weight(a,b) == Weight(b,a) for every edge; both directions are written
//     by every AddEdge.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects two existing vertices with an undirected edge of the given weight.
//
// Steps:
//  1. Validate labels and weight.
//  2. Resolve both endpoints; a missing one yields ErrInvalidEdge and no mutation.
//  3. Write adjacency in both directions.
//  4. Register the edge in the catalog on first insertion; later insertions
//     overwrite the weight and keep the original position and orientation.
//
// Errors:
//   - ErrEmptyLabel: from or to is empty.
//   - ErrNegativeWeight: weight < 0 or NaN.
//   - ErrInvalidEdge (wrapping ErrVertexNotFound): an endpoint was never added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyLabel
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	// 2) Both endpoints must already exist.
	a, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %s→%s: %w %q", ErrInvalidEdge, from, to, ErrVertexNotFound, from)
	}
	b, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %s→%s: %w %q", ErrInvalidEdge, from, to, ErrVertexNotFound, to)
	}

	// 3) Mirror the weight.
	g.vertices[a].adjacent[b] = weight
	g.vertices[b].adjacent[a] = weight

	// 4) Catalog.
	key := newEdgeKey(a, b)
	if _, seen := g.edgeIndex[key]; !seen {
		g.edgeIndex[key] = len(g.edges)
		g.edges = append(g.edges, edgeRef{from: a, to: b})
	}

	return nil
}

// HasEdge reports whether an edge connects a and b.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of the edge between a and b.
func (g *Graph) Weight(a, b string) (float64, bool) {
	ia, ok := g.index[a]
	if !ok {
		return 0, false
	}
	ib, ok := g.index[b]
	if !ok {
		return 0, false
	}
	w, ok := g.vertices[ia].adjacent[ib]

	return w, ok
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every undirected edge once, in first-insertion order and
// first-insertion orientation, with its current weight.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		from, to := g.vertices[e.from], g.vertices[e.to]
		out[i] = Edge{From: from.label, To: to.label, Weight: from.adjacent[to.index]}
	}

	return out
}
