package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Vertices are added explicitly, in the order they should enumerate.
	g := core.NewGraph()
	for _, l := range []string{"A", "B", "C"} {
		if _, err := g.AddVertex(l); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// 2) Edges are undirected: one call writes both directions.
	_ = g.AddEdge("A", "B", 1.5)
	_ = g.AddEdge("B", "C", 2)

	w, _ := g.Weight("B", "A")
	fmt.Println("Vertices:", g.Labels())
	fmt.Println("weight(B,A):", w)
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// weight(B,A): 1.5
	// Edges: 2
}

// ExampleGraph_AddVertex shows that a duplicate label is rejected rather than replaced.
func ExampleGraph_AddVertex() {
	g := core.NewGraph()
	_, _ = g.AddVertex("A")

	_, err := g.AddVertex("A")
	fmt.Println(errors.Is(err, core.ErrDuplicateVertex))

	// Output:
	// true
}

// ExampleGraph_AddEdge shows that edges never create their endpoints.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_, _ = g.AddVertex("A")

	err := g.AddEdge("A", "Z", 1)
	fmt.Println(errors.Is(err, core.ErrInvalidEdge), g.HasVertex("Z"))

	// Output:
	// true false
}
