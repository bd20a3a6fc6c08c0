// Package persist defines the boundary between the in-memory graph store and
// an external graph store: the Adapter port, its failure type and the
// adapters that need no external system.
//
// Errors:
//
//	*AdapterError - any failure reported by an adapter, tagged with the operation.
//	ErrClosed     - the adapter was used after Close.
package persist

import (
	"context"
	"errors"
	"fmt"
)

// ErrClosed indicates an adapter call after Close.
var ErrClosed = errors.New("persist: adapter closed")

// Op names an adapter operation in an AdapterError.
type Op string

// Adapter operations.
const (
	OpCreateVertex Op = "create vertex"
	OpCreateEdge   Op = "create edge"
	OpMarkPath     Op = "mark shortest path edge"
	OpClear        Op = "clear"
	OpClose        Op = "close"
)

//go:generate mockgen -package mocks -destination mocks/mock_adapter.go github.com/katalvlaran/pathtrace/persist Adapter

// Adapter receives the side effects of graph mutations and path saves.
//
// Calls are side-effect only: nothing they return feeds back into the
// computation. Implementations report failures as errors; callers wrap them
// in *AdapterError.
type Adapter interface {
	// CreateVertex persists a vertex label.
	CreateVertex(ctx context.Context, label string) error

	// CreateEdge persists an undirected weighted edge.
	CreateEdge(ctx context.Context, from, to string, weight float64) error

	// MarkShortestPathEdge records that from→to lies on a computed shortest path.
	MarkShortestPathEdge(ctx context.Context, from, to string) error

	// Clear removes every persisted vertex, edge and path mark.
	Clear(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

// AdapterError reports a failed adapter call.
type AdapterError struct {
	Op  Op
	Arg string // labels involved, e.g. "A" or "A→B"
	Err error
}

// Error implements error.
func (e *AdapterError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("persist: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("persist: %s %s: %v", e.Op, e.Arg, e.Err)
}

// Unwrap returns the adapter's own error.
func (e *AdapterError) Unwrap() error { return e.Err }

// Wrap returns nil for a nil err, otherwise an *AdapterError.
func Wrap(op Op, arg string, err error) error {
	if err == nil {
		return nil
	}

	return &AdapterError{Op: op, Arg: arg, Err: err}
}

// Noop satisfies Adapter without persisting anything. It is the default when
// no external store is configured.
type Noop struct{}

var _ Adapter = Noop{}

// CreateVertex is a no-op.
func (Noop) CreateVertex(context.Context, string) error { return nil }

// CreateEdge is a no-op.
func (Noop) CreateEdge(context.Context, string, string, float64) error { return nil }

// MarkShortestPathEdge is a no-op.
func (Noop) MarkShortestPathEdge(context.Context, string, string) error { return nil }

// Clear is a no-op.
func (Noop) Clear(context.Context) error { return nil }

// Close is a no-op.
func (Noop) Close() error { return nil }
