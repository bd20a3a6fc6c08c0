// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
)

// Common vertex labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// squareWithDiagonal is the reference graph: A—B(1), B—C(2), A—C(4), C—D(1).
func squareWithDiagonal() []core.Edge {
	return []core.Edge{
		{From: VertexA, To: VertexB, Weight: 1},
		{From: VertexB, To: VertexC, Weight: 2},
		{From: VertexA, To: VertexC, Weight: 4},
		{From: VertexC, To: VertexD, Weight: 1},
	}
}

// mustGraph builds a graph from labels (in order) and edges, failing the test on any error.
func mustGraph(t *testing.T, labels []string, edges []core.Edge) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithCapacity(len(labels)))
	for _, l := range labels {
		_, err := g.AddVertex(l)
		require.NoError(t, err, "AddVertex(%q)", l)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight), "AddEdge(%s,%s)", e.From, e.To)
	}

	return g
}
