// Package core defines the Graph and Vertex types backing the shortest-path
// store: a vertex table in insertion order, undirected weighted adjacency and
// the per-vertex algorithmic state (distance, visited, previous) that
// shortest-path computations mutate in place.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel       - vertex label is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrDuplicateVertex  - label already present in the graph.
//	ErrInvalidEdge      - edge references a vertex that was never added.
//	ErrNegativeWeight   - edge weight is negative or NaN.
//	ErrUnreachable      - no path from the last source to the vertex.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that the provided vertex label is empty.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with a label that
	// already identifies a vertex in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrInvalidEdge indicates AddEdge referenced an endpoint that is not a vertex.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrUnreachable indicates a path was requested to a vertex that the last
	// computation never reached.
	ErrUnreachable = errors.New("core: vertex unreachable from source")
)

// NoPrevious marks a vertex with no predecessor on its best-known path.
const NoPrevious = -1

// Vertex is a labeled point in the graph together with the state a
// shortest-path computation keeps for it.
//
// Neighbors are referenced by their index in the owning Graph's vertex table,
// never by pointer, so a Vertex cannot outlive or escape its Graph's ownership.
type Vertex struct {
	label    string
	index    int
	adjacent map[int]float64 // neighbor index → weight

	distance float64
	visited  bool
	previous int
}

// Label returns the vertex label.
func (v *Vertex) Label() string { return v.label }

// Index returns the vertex position in its Graph's insertion order.
func (v *Vertex) Index() int { return v.index }

// Distance returns the best-known distance from the last source (+Inf if unreached).
func (v *Vertex) Distance() float64 { return v.distance }

// Visited reports whether the last computation finalized this vertex.
func (v *Vertex) Visited() bool { return v.visited }

// Previous returns the index of the predecessor on the best-known path,
// or NoPrevious.
func (v *Vertex) Previous() int { return v.previous }

// Degree returns the number of distinct neighbors.
func (v *Vertex) Degree() int { return len(v.adjacent) }

// reset restores the pre-computation state.
func (v *Vertex) reset() {
	v.distance = math.Inf(1)
	v.visited = false
	v.previous = NoPrevious
}

// Edge is an undirected weighted connection, reported in the orientation of
// its first insertion.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is one adjacency entry of a vertex.
type Neighbor struct {
	Label  string
	Weight float64
}

// edgeKey identifies an undirected edge independent of orientation.
type edgeKey struct{ lo, hi int }

// edgeRef is a catalog entry: endpoint indices in first-insertion orientation.
type edgeRef struct{ from, to int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]*Vertex, 0, n)
			g.index = make(map[string]int, n)
		}
	}
}

// Graph is the in-memory undirected weighted graph.
//
// Graph exclusively owns its vertices: callers read them through accessors
// and every mutation goes through a Graph method. Graph is not safe for
// concurrent use.
type Graph struct {
	vertices []*Vertex      // insertion order
	index    map[string]int // label → position in vertices

	edges     []edgeRef       // first-insertion order
	edgeIndex map[edgeKey]int // edge → position in edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[string]int),
		edgeIndex: make(map[edgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
