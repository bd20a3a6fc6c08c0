// Package builder generates deterministic weighted undirected graphs for
// tests, benchmarks and examples.
//
// Graphs are assembled by BuildGraph from Constructors applied in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeight(0, 9)},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Constructors:
//
//	Path(n)            – P_n, edges i-1 — i
//	Cycle(n)           – C_n, edges i — (i+1) mod n
//	Star(n)            – hub "Center" plus n-1 leaves
//	Complete(n)        – K_n, every pair i<j once
//	RandomSparse(n, p) – each pair i<j kept with probability p
//
// Vertex labels come from the configured IDFn (decimal by default) and are
// added in index order. A label that already exists is reused, so several
// constructors can be composed over the same vertex set. Edge weights come
// from the configured WeightFn (constant 1 by default).
//
// Determinism: the same options, seed and constructor order always yield the
// same vertices, edges, insertion order and weights.
//
// Errors:
//
//	ErrTooFewVertices     – n below the constructor minimum
//	ErrInvalidProbability – p outside [0,1]
//	ErrNeedRandSource     – RandomSparse with 0<p<1 and no RNG
//	ErrConstructFailed    – nil constructor passed to BuildGraph
package builder
