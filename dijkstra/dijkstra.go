// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra finalizes vertices in order of increasing distance from the source,
// relaxing the edges of each finalized vertex, and records one Step per
// finalized vertex.
//
// Complexity:
//
//   - LinearScan: Time O(V² + E) for selection and relaxation.
//   - Heap:       Time O((V + E) log V) for selection and relaxation.
//   - Both strategies copy a V-sized distance snapshot into every Step, so a
//     full trace costs O(V²) time and space regardless of strategy.
//
// Notes on implementation choices:
//
//   - The runner resets every vertex before it starts, so repeated runs on the
//     same graph never observe a previous run's distances.
//   - Ties on distance go to the lowest vertex insertion index. The heap is
//     keyed by (distance, index) so both strategies pick the same vertex.
//   - Selection stops as soon as the smallest unvisited distance is +Inf;
//     unreachable vertices are never finalized and never logged.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathtrace/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of
// g, mutating each vertex's distance, visited flag and predecessor in place,
// and returns the step trace.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// On a validation error no trace is returned and g is not modified.
// Edge weights are non-negative by construction (core.AddEdge rejects others).
//
// After a successful run, g.PathTo(v) reconstructs the path to any reached v.
func Dijkstra(g *core.Graph, opts ...Option) (Trace, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	src := g.IndexOf(cfg.Source)
	if src < 0 {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pick the selector.
	var sel selector
	switch cfg.Strategy {
	case Heap:
		sel = &heapSelector{g: g}
	default:
		sel = &linearSelector{g: g}
	}

	r := &runner{
		g:       g,
		options: cfg,
		sel:     sel,
		trace:   make(Trace, 0, g.VertexCount()),
	}

	// 4) Reset, seed the source and run.
	r.init(src)
	r.process()

	return r.trace, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	sel     selector
	trace   Trace
}

// init resets every vertex and sets the source distance to zero.
func (r *runner) init(src int) {
	r.g.Reset()
	r.g.SetDistance(src, 0, core.NoPrevious)
	r.sel.reached(src, 0)
}

// process is the main loop: select, finalize, relax, record.
//
// Loop termination conditions:
//
//   - Every vertex has been finalized.
//   - The smallest unvisited distance is +Inf (the rest are unreachable).
func (r *runner) process() {
	for {
		// 1) Select the unvisited vertex with minimum distance.
		u, ok := r.sel.next()
		if !ok {
			return
		}

		// 2) Finalize it.
		r.g.MarkVisited(u)

		// 3) Relax its neighbors.
		r.relax(u)

		// 4) Record the step.
		r.record(u)
	}
}

// relax improves the distance of every unvisited neighbor v of u when
// dist(u) + w(u,v) is strictly smaller than dist(v).
func (r *runner) relax(u int) {
	du := r.g.VertexAt(u).Distance()
	r.g.EachNeighbor(u, func(v int, w float64) {
		nv := r.g.VertexAt(v)
		if nv.Visited() {
			return
		}
		if alt := du + w; alt < nv.Distance() {
			r.g.SetDistance(v, alt, u)
			r.sel.reached(v, alt)
		}
	})
}

// record appends the Step for the vertex just finalized and fires the hook.
func (r *runner) record(u int) {
	step := Step{
		Current:   r.g.VertexAt(u).Label(),
		Visited:   r.g.VisitedLabels(),
		Distances: r.g.Distances(),
	}
	r.trace = append(r.trace, step)
	if r.options.OnStep != nil {
		r.options.OnStep(step)
	}
}

// selector yields the next vertex to finalize.
type selector interface {
	// reached notes that vertex i now has best-known distance d.
	reached(i int, d float64)
	// next returns the unvisited vertex with minimum finite distance,
	// lowest index among ties, or false if none is left.
	next() (int, bool)
}

// linearSelector scans the vertex table on every call.
type linearSelector struct {
	g *core.Graph
}

func (s *linearSelector) reached(int, float64) {}

func (s *linearSelector) next() (int, bool) {
	best, bestDist := -1, math.Inf(1)
	n := s.g.VertexCount()
	for i := 0; i < n; i++ {
		v := s.g.VertexAt(i)
		if v.Visited() {
			continue
		}
		// Strict comparison keeps the first vertex encountered among ties.
		if best < 0 || v.Distance() < bestDist {
			best, bestDist = i, v.Distance()
		}
	}
	if best < 0 || math.IsInf(bestDist, 1) {
		return 0, false
	}

	return best, true
}

// heapSelector keeps reached vertices in a lazy min-heap.
type heapSelector struct {
	g  *core.Graph
	pq nodePQ
}

func (s *heapSelector) reached(i int, d float64) {
	heap.Push(&s.pq, &nodeItem{index: i, dist: d})
}

func (s *heapSelector) next() (int, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*nodeItem)
		// Skip stale entries: the vertex was finalized through a shorter entry.
		if s.g.VertexAt(item.index).Visited() {
			continue
		}

		return item.index, true
	}

	return 0, false
}

// nodeItem represents a vertex and a distance it was reached with.
type nodeItem struct {
	index int     // vertex insertion index
	dist  float64 // distance at push time
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, index) ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
