// Package store is the Graph Store: a core.Graph paired with an injected
// persist.Adapter. Every insertion is committed in memory first and then
// mirrored to the adapter; shortest-path runs happen purely in memory and
// their results can be persisted on demand.
//
// Errors:
//
//	core.ErrDuplicateVertex, core.ErrInvalidEdge, core.ErrNegativeWeight  - rejected insertions
//	dijkstra.ErrVertexNotFound                                            - unknown source
//	core.ErrUnreachable                                                   - no path to target
//	ErrInvalidPath                                                        - path not backed by edges
//	*persist.AdapterError                                                 - adapter failure; memory is kept
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/persist"
)

// ErrInvalidPath indicates a path whose consecutive labels are not connected.
var ErrInvalidPath = errors.New("store: invalid path")

// Option configures a Store.
type Option func(*Store)

// WithAdapter injects the persistence adapter. The Store takes ownership:
// Store.Close closes it. Defaults to persist.Noop.
func WithAdapter(a persist.Adapter) Option {
	return func(s *Store) {
		if a != nil {
			s.adapter = a
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStrategy selects the minimum-selection strategy for ShortestPaths.
func WithStrategy(st dijkstra.Strategy) Option {
	return func(s *Store) { s.strategy = st }
}

// Store is the Graph Store. It is not safe for concurrent use.
type Store struct {
	graph    *core.Graph
	adapter  persist.Adapter
	log      *slog.Logger
	strategy dijkstra.Strategy

	closeOnce sync.Once
	closeErr  error
}

// Run is the result of one shortest-path computation.
type Run struct {
	ID        uuid.UUID
	Source    string
	Trace     dijkstra.Trace
	Distances map[string]float64 // final distance per label, +Inf if unreachable
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		graph:    core.NewGraph(),
		adapter:  persist.Noop{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		strategy: dijkstra.LinearScan,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph returns the underlying graph for read access. Callers must not
// mutate it; use the Store methods so the adapter stays in step.
func (s *Store) Graph() *core.Graph { return s.graph }

// AddVertex adds a vertex and mirrors it to the adapter.
//
// A duplicate label returns core.ErrDuplicateVertex and issues no adapter call.
// An adapter failure is returned as *persist.AdapterError; the vertex stays
// in memory.
func (s *Store) AddVertex(ctx context.Context, label string) error {
	if _, err := s.graph.AddVertex(label); err != nil {
		return err
	}

	if err := s.adapter.CreateVertex(ctx, label); err != nil {
		s.log.Error("persist vertex failed", "label", label, "error", err)
		return persist.Wrap(persist.OpCreateVertex, label, err)
	}

	return nil
}

// AddEdge adds an undirected edge between existing vertices and mirrors it.
//
// Both endpoints must have been added first: otherwise the edge is dropped,
// a warning is logged and core.ErrInvalidEdge is returned. An adapter failure
// is returned as *persist.AdapterError; the edge stays in memory.
func (s *Store) AddEdge(ctx context.Context, from, to string, weight float64) error {
	if err := s.graph.AddEdge(from, to, weight); err != nil {
		if errors.Is(err, core.ErrInvalidEdge) {
			s.log.Warn("edge dropped", "from", from, "to", to, "weight", weight, "error", err)
		}
		return err
	}

	if err := s.adapter.CreateEdge(ctx, from, to, weight); err != nil {
		s.log.Error("persist edge failed", "from", from, "to", to, "error", err)
		return persist.Wrap(persist.OpCreateEdge, from+"→"+to, err)
	}

	return nil
}

// ShortestPaths runs Dijkstra from source, resetting all vertex state first,
// and returns the run with its trace. Each step is logged at debug level.
func (s *Store) ShortestPaths(source string) (*Run, error) {
	run := &Run{ID: uuid.New(), Source: source}
	log := s.log.With("run_id", run.ID.String(), "source", source)

	trace, err := dijkstra.Dijkstra(s.graph,
		dijkstra.Source(source),
		dijkstra.WithStrategy(s.strategy),
		dijkstra.WithOnStep(func(step dijkstra.Step) {
			log.Debug("vertex finalized",
				"current", step.Current,
				"visited", step.Visited,
				"distance", step.Distances[step.Current])
		}),
	)
	if err != nil {
		return nil, err
	}

	run.Trace = trace
	run.Distances = s.graph.Distances()
	log.Info("shortest paths computed",
		"strategy", s.strategy.String(),
		"finalized", len(trace),
		"vertices", s.graph.VertexCount())

	return run, nil
}

// PathTo returns the shortest path source→…→target of the last run.
func (s *Store) PathTo(target string) ([]string, error) {
	return s.graph.PathTo(target)
}

// SaveGraph overwrites the adapter's contents with the current graph: Clear,
// then CreateVertex for every vertex in insertion order, then CreateEdge for
// every undirected edge in first-insertion order. It stops at the first
// adapter failure.
func (s *Store) SaveGraph(ctx context.Context) error {
	if err := s.adapter.Clear(ctx); err != nil {
		return persist.Wrap(persist.OpClear, "", err)
	}

	for _, label := range s.graph.Labels() {
		if err := s.adapter.CreateVertex(ctx, label); err != nil {
			return persist.Wrap(persist.OpCreateVertex, label, err)
		}
	}

	edges := s.graph.Edges()
	for _, e := range edges {
		if err := s.adapter.CreateEdge(ctx, e.From, e.To, e.Weight); err != nil {
			return persist.Wrap(persist.OpCreateEdge, e.From+"→"+e.To, err)
		}
	}

	s.log.Info("graph saved", "vertices", s.graph.VertexCount(), "edges", len(edges))

	return nil
}

// SaveShortestPath marks every consecutive pair of path in the adapter.
// A path shorter than two labels marks nothing.
//
// Errors:
//   - core.ErrVertexNotFound: a label is not a vertex.
//   - ErrInvalidPath: two consecutive labels share no edge.
//   - *persist.AdapterError: the adapter failed; earlier marks remain.
func (s *Store) SaveShortestPath(ctx context.Context, path []string) error {
	// Validate the whole path before the first adapter call.
	for i, label := range path {
		if !s.graph.HasVertex(label) {
			return fmt.Errorf("%w: %q", core.ErrVertexNotFound, label)
		}
		if i > 0 && !s.graph.HasEdge(path[i-1], label) {
			return fmt.Errorf("%w: no edge %s—%s", ErrInvalidPath, path[i-1], label)
		}
	}

	for i := 0; i+1 < len(path); i++ {
		if err := s.adapter.MarkShortestPathEdge(ctx, path[i], path[i+1]); err != nil {
			return persist.Wrap(persist.OpMarkPath, path[i]+"→"+path[i+1], err)
		}
	}

	if len(path) > 1 {
		s.log.Info("shortest path saved", "from", path[0], "to", path[len(path)-1], "hops", len(path)-1)
	}

	return nil
}

// SavePathTo reconstructs the path to target from the last run and saves it.
func (s *Store) SavePathTo(ctx context.Context, target string) ([]string, error) {
	path, err := s.graph.PathTo(target)
	if err != nil {
		return nil, err
	}
	if err := s.SaveShortestPath(ctx, path); err != nil {
		return path, err
	}

	return path, nil
}

// Close releases the adapter. It is safe to call more than once; later calls
// return the first call's result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = persist.Wrap(persist.OpClose, "", s.adapter.Close())
	})

	return s.closeErr
}
