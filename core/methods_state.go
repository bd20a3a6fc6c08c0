// File: methods_state.go
// Role: Algorithmic vertex state owned by the Graph: reset, distance and
//       predecessor updates, visitation, neighbor iteration and path
//       reconstruction from predecessor indices.
//
// State written here is only meaningful between a Reset and the next one;
// a computation that skips Reset would start from the previous run's state.

package core

import (
	"fmt"
	"math"
	"sort"
)

// Reset restores every vertex to distance +Inf, unvisited and without
// predecessor. Edges are untouched.
// Complexity: O(V)
func (g *Graph) Reset() {
	for _, v := range g.vertices {
		v.reset()
	}
}

// SetDistance records d as the best-known distance of vertex i, reached
// through vertex prev (NoPrevious for a source). It panics if i is out of range.
func (g *Graph) SetDistance(i int, d float64, prev int) {
	v := g.vertices[i]
	v.distance = d
	v.previous = prev
}

// MarkVisited finalizes vertex i. It panics if i is out of range.
func (g *Graph) MarkVisited(i int) { g.vertices[i].visited = true }

// EachNeighbor calls fn for every neighbor of vertex i in ascending neighbor
// index, i.e. in the neighbors' insertion order.
// Complexity: O(d·log d) where d is the degree of i.
func (g *Graph) EachNeighbor(i int, fn func(j int, weight float64)) {
	adj := g.vertices[i].adjacent
	order := make([]int, 0, len(adj))
	for j := range adj {
		order = append(order, j)
	}
	sort.Ints(order)

	for _, j := range order {
		fn(j, adj[j])
	}
}

// Distances returns a snapshot of every vertex's current distance.
// Complexity: O(V)
func (g *Graph) Distances() map[string]float64 {
	out := make(map[string]float64, len(g.vertices))
	for _, v := range g.vertices {
		out[v.label] = v.distance
	}

	return out
}

// VisitedLabels returns the labels of finalized vertices in insertion order.
func (g *Graph) VisitedLabels() []string {
	out := make([]string, 0, len(g.vertices))
	for _, v := range g.vertices {
		if v.visited {
			out = append(out, v.label)
		}
	}

	return out
}

// PathTo reconstructs the best-known path from the last source to target by
// walking predecessor indices back to a vertex without predecessor, then
// reversing the walk.
//
// Returns:
//   - the labels source→…→target; a single label when target is the source.
//
// Errors:
//   - ErrVertexNotFound: target is absent.
//   - ErrUnreachable: target's distance is +Inf (including before any run).
//
// Complexity: O(path length)
func (g *Graph) PathTo(target string) ([]string, error) {
	i, ok := g.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if math.IsInf(g.vertices[i].distance, 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	// Walk back; the guard bounds the walk even if the predecessor chain were corrupted.
	var path []string
	for steps := 0; i != NoPrevious && steps <= len(g.vertices); steps++ {
		path = append(path, g.vertices[i].label)
		i = g.vertices[i].previous
	}

	// Reverse in place.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}
