// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Labels() and VertexAt() follow insertion order.
package core

import "fmt"

// AddVertex inserts a new vertex with the given label.
//
// Behavior highlights:
//   - Rejects duplicates: an existing label returns ErrDuplicateVertex and the
//     existing vertex (with its edges and state) is left untouched.
//   - The new vertex starts unreached: distance +Inf, unvisited, no previous.
//
// Errors:
//   - ErrEmptyLabel: if label == "".
//   - ErrDuplicateVertex: if label is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(label string) (*Vertex, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if _, exists := g.index[label]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
	}

	v := &Vertex{
		label:    label,
		index:    len(g.vertices),
		adjacent: make(map[int]float64),
	}
	v.reset()
	g.vertices = append(g.vertices, v)
	g.index[label] = v.index

	return v, nil
}

// HasVertex reports whether the label identifies a vertex (empty label ⇒ false).
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Vertex returns the vertex with the given label.
func (g *Graph) Vertex(label string) (*Vertex, bool) {
	i, ok := g.index[label]
	if !ok {
		return nil, false
	}

	return g.vertices[i], true
}

// IndexOf returns the insertion index of label, or -1 if absent.
func (g *Graph) IndexOf(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}

	return -1
}

// VertexAt returns the vertex at insertion index i. It panics if i is out of range.
func (g *Graph) VertexAt(i int) *Vertex { return g.vertices[i] }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Labels returns all vertex labels in insertion order.
// Complexity: O(V)
func (g *Graph) Labels() []string {
	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.label
	}

	return out
}

// Neighbors returns the adjacency of label ordered by neighbor insertion index.
//
// Errors:
//   - ErrVertexNotFound: label is absent.
//
// Complexity: O(d·log d) where d is the degree of label.
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	v, ok := g.Vertex(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	out := make([]Neighbor, 0, len(v.adjacent))
	g.EachNeighbor(v.index, func(j int, w float64) {
		out = append(out, Neighbor{Label: g.vertices[j].label, Weight: w})
	})

	return out, nil
}
