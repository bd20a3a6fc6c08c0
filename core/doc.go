// Package core provides the in-memory graph behind pathtrace: labeled
// vertices, undirected weighted edges and the per-vertex state that a
// shortest-path computation reads and writes.
//
// The Graph G = (V,E) guarantees:
//
//   - Unique labels: AddVertex rejects an existing label with ErrDuplicateVertex
//     instead of replacing the vertex and orphaning its edges.
//   - Undirected symmetry: every AddEdge writes weight(a→b) and weight(b→a).
//   - Explicit endpoints: AddEdge never creates vertices; a missing endpoint
//     returns ErrInvalidEdge and leaves the graph unchanged.
//   - Non-negative weights: negative or NaN weights return ErrNegativeWeight.
//   - Deterministic iteration: Labels() in insertion order, Edges() in
//     first-insertion order, neighbors in neighbor insertion order.
//
// Vertex state:
//
//	distance  float64 // +Inf until reached
//	visited   bool    // finalized by the last computation
//	previous  int     // predecessor index, NoPrevious if none
//
// Predecessors are indices into the owning Graph's vertex table, so path
// reconstruction (PathTo) never follows pointers across graphs.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(label string) (*Vertex, error)  // O(1)
//	HasVertex(label string) bool               // O(1)
//	Vertex(label string) (*Vertex, bool)       // O(1)
//	Labels() []string                          // O(V), insertion order
//
//	// Edges
//	AddEdge(from, to string, w float64) error  // O(1)
//	Weight(a, b string) (float64, bool)        // O(1)
//	Neighbors(label string) ([]Neighbor, error)// O(d·log d)
//	Edges() []Edge                             // O(E)
//
//	// Algorithmic state
//	Reset()                                    // O(V)
//	SetDistance(i int, d float64, prev int)    // O(1)
//	MarkVisited(i int)                         // O(1)
//	PathTo(label string) ([]string, error)     // O(path)
//
// Graph is not safe for concurrent use; callers serialize access.
package core
