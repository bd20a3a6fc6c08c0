// Package dijkstra computes single-source shortest paths over a core.Graph
// and records the computation step by step.
//
// Overview:
//
//   - Dijkstra finalizes one vertex per iteration, the unvisited vertex with
//     the smallest best-known distance, then relaxes its unvisited neighbors.
//   - After every finalization a Step is appended to the Trace: the vertex just
//     finalized, all finalized labels so far and every vertex's current distance.
//   - Distances, visited flags and predecessors live on the graph's vertices,
//     so core.Graph.PathTo can rebuild any path once the run completes.
//
// Reset semantics:
//
//   - Every run starts by resetting all vertices (distance +Inf, unvisited, no
//     predecessor). Running twice from the same source yields identical traces;
//     running from another source never sees stale state.
//
// Selection and ties:
//
//   - LinearScan (default) scans the unvisited vertices each iteration and keeps
//     the first one, in vertex insertion order, with the smallest distance.
//   - Heap orders candidates by (distance, insertion index) and skips stale
//     entries, reproducing LinearScan's choices exactly.
//   - When the smallest unvisited distance is +Inf the run stops: unreachable
//     vertices keep +Inf and never appear in the trace.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source was not set.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: Source is not a vertex of the graph (also matches
//     core.ErrVertexNotFound). No trace is produced.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (Trace, error)
//
//	  - opts:
//	      • Source(label):          required starting vertex.
//	      • WithStrategy(Strategy): LinearScan (default) or Heap.
//	      • WithOnStep(fn):         receive each Step as it is recorded.
//
// Thread safety:
//
//   - Dijkstra mutates the graph's vertex state; callers must not run it
//     concurrently with other operations on the same graph.
package dijkstra
