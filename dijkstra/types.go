// Package dijkstra defines the trace types and configuration options
// for Dijkstra's shortest-path computation on a core.Graph.
//
// Options:
//
//	– Source:       label of the starting vertex (must be non-empty and present).
//	– Strategy:     LinearScan (default) or Heap minimum selection; both produce
//	                the same trace.
//	– OnStep:       optional hook invoked with every Step as it is appended.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source label is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//
// Example usage:
//
//	trace, err := Dijkstra(g, Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, step := range trace {
//	    fmt.Println(step.Current, step.Visited, step.Distances)
//	}
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source label is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex label is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the
	// graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: start %w", core.ErrVertexNotFound)
)

// Strategy selects how the next vertex to finalize is found.
type Strategy int

const (
	// LinearScan scans all unvisited vertices each iteration: O(V²).
	LinearScan Strategy = iota

	// Heap keeps reached vertices in a min-heap keyed by (distance, index)
	// with lazy decrease-key: O((V + E) log V).
	Heap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear" / "heap" (and "" → LinearScan) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "linear":
		return LinearScan, nil
	case "heap":
		return Heap, nil
	default:
		return LinearScan, fmt.Errorf("dijkstra: unknown strategy %q", s)
	}
}

// Step is one entry of the trace, appended after a vertex is finalized and
// its neighbors relaxed.
type Step struct {
	// Current is the label of the vertex just finalized.
	Current string

	// Visited lists every finalized label so far, in vertex insertion order.
	Visited []string

	// Distances holds the best-known distance of every vertex (+Inf if unreached).
	Distances map[string]float64
}

// Trace is the ordered log of one computation: one Step per finalized
// vertex, in finalization order. Unreachable vertices never appear as Current.
type Trace []Step

// Finalized returns the Current label of every step, in order.
func (t Trace) Finalized() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Current
	}

	return out
}

// Last returns the final step, whose Distances are the computation's result.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}

	return t[len(t)-1], true
}

// Options configures the behavior of the Dijkstra computation.
type Options struct {
	Source   string     // Label of the source vertex
	Strategy Strategy   // Minimum-selection strategy
	OnStep   func(Step) // Called with each step as it is recorded; may be nil
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex label. Must be called.
func Source(label string) Option {
	return func(o *Options) {
		o.Source = label
	}
}

// WithStrategy selects the minimum-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnStep registers a hook that receives each Step as it is appended.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// DefaultOptions returns Options for the given source with LinearScan selection
// and no hook.
func DefaultOptions(source string) Options {
	return Options{
		Source:   source,
		Strategy: LinearScan,
	}
}
