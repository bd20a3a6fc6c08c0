// Package pathtrace computes single-source shortest paths over weighted
// undirected graphs and records how the computation unfolds.
//
// A run finalizes one vertex per step, always the unvisited vertex with the
// smallest tentative distance, and appends a snapshot of the visited set and
// every distance to the trace. Predecessors left on the graph rebuild the
// shortest path to any reachable target.
//
// Layout:
//
//	core/            Graph, Vertex and Edge; per-vertex distance/visited/previous state
//	dijkstra/        the step-traced computation (linear scan or heap selection)
//	persist/         the Adapter port, AdapterError, Noop and a SQL statement adapter
//	persist/sqlite/  Adapter backed by modernc.org/sqlite
//	persist/memory/  recording Adapter for dry runs and tests
//	store/           Graph Store: in-memory graph mirrored to an Adapter
//	config/          YAML run description
//	cmd/pathtrace/   command-line entry point
//
// Quick example:
//
//	s := store.New(store.WithAdapter(memory.New()))
//	_ = s.AddVertex(ctx, "A")
//	_ = s.AddVertex(ctx, "B")
//	_ = s.AddEdge(ctx, "A", "B", 1)
//	run, _ := s.ShortestPaths("A")
//	fmt.Println(run.Trace.Finalized()) // [A B]
package pathtrace
