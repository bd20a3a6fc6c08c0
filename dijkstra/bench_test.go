package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// benchGraph builds a seeded sparse graph, failing the benchmark on error.
func benchGraph(b *testing.B, n int, p float64) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(n)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithIntWeight(1, 100)},
		builder.Cycle(n), builder.RandomSparse(n, p),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkStrategy(b *testing.B, n int, p float64, s dijkstra.Strategy) {
	g := benchGraph(b, n, p)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, dijkstra.Source("0"), dijkstra.WithStrategy(s))
	}
}

// BenchmarkDijkstra_Linear_Sparse500 measures the O(V²) scan; each step also
// snapshots V distances, so the trace dominates on larger graphs.
func BenchmarkDijkstra_Linear_Sparse500(b *testing.B) {
	benchmarkStrategy(b, 500, 0.01, dijkstra.LinearScan)
}

// BenchmarkDijkstra_Heap_Sparse500 measures the heap selector on the same graph.
func BenchmarkDijkstra_Heap_Sparse500(b *testing.B) {
	benchmarkStrategy(b, 500, 0.01, dijkstra.Heap)
}

// BenchmarkDijkstra_Heap_Dense200 measures the heap selector on a dense graph.
func BenchmarkDijkstra_Heap_Dense200(b *testing.B) {
	benchmarkStrategy(b, 200, 0.5, dijkstra.Heap)
}
