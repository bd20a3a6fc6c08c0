// Package memory provides an in-process persist.Adapter that records every
// call. It backs dry runs and tests that need to inspect what would have been
// persisted, including the exact call order.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/persist"
)

// Call is one recorded adapter invocation.
type Call struct {
	Op     persist.Op
	From   string // label for OpCreateVertex
	To     string
	Weight float64
}

// String renders the call compactly, e.g. "create edge A→B 1".
func (c Call) String() string {
	switch c.Op {
	case persist.OpCreateVertex:
		return fmt.Sprintf("%s %s", c.Op, c.From)
	case persist.OpCreateEdge:
		return fmt.Sprintf("%s %s→%s %v", c.Op, c.From, c.To, c.Weight)
	case persist.OpMarkPath:
		return fmt.Sprintf("%s %s→%s", c.Op, c.From, c.To)
	default:
		return string(c.Op)
	}
}

// Adapter is an in-memory persist.Adapter. It is safe for concurrent use.
type Adapter struct {
	mu sync.RWMutex

	vertices []string
	edges    []core.Edge
	marks    [][2]string
	calls    []Call

	failures map[persist.Op]failure
	closed   bool
}

// failure is an injected error, returned once skip reaches zero.
type failure struct {
	skip int
	err  error
}

var _ persist.Adapter = (*Adapter)(nil)

// New returns an empty adapter.
func New() *Adapter {
	return &Adapter{failures: make(map[persist.Op]failure)}
}

// FailOn makes every later call of op fail with err (nil clears it).
// Failing calls are still recorded in Calls but change no state.
func (a *Adapter) FailOn(op persist.Op, err error) {
	a.FailAfter(op, 0, err)
}

// FailAfter lets the next n calls of op succeed and fails every call after
// them with err (nil clears it).
func (a *Adapter) FailAfter(op persist.Op, n int, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err == nil {
		delete(a.failures, op)
		return
	}
	a.failures[op] = failure{skip: n, err: err}
}

// CreateVertex records the label; duplicates are ignored.
func (a *Adapter) CreateVertex(_ context.Context, label string) error {
	return a.apply(Call{Op: persist.OpCreateVertex, From: label}, func() {
		for _, v := range a.vertices {
			if v == label {
				return
			}
		}
		a.vertices = append(a.vertices, label)
	})
}

// CreateEdge records the edge; an existing edge between the same endpoints
// (either orientation) has its weight replaced.
func (a *Adapter) CreateEdge(_ context.Context, from, to string, weight float64) error {
	return a.apply(Call{Op: persist.OpCreateEdge, From: from, To: to, Weight: weight}, func() {
		for i, e := range a.edges {
			if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
				a.edges[i].Weight = weight
				return
			}
		}
		a.edges = append(a.edges, core.Edge{From: from, To: to, Weight: weight})
	})
}

// MarkShortestPathEdge records the directed mark; duplicates are ignored.
func (a *Adapter) MarkShortestPathEdge(_ context.Context, from, to string) error {
	return a.apply(Call{Op: persist.OpMarkPath, From: from, To: to}, func() {
		for _, m := range a.marks {
			if m == [2]string{from, to} {
				return
			}
		}
		a.marks = append(a.marks, [2]string{from, to})
	})
}

// Clear drops every vertex, edge and mark. The call log is kept.
func (a *Adapter) Clear(context.Context) error {
	return a.apply(Call{Op: persist.OpClear}, func() {
		a.vertices, a.edges, a.marks = nil, nil, nil
	})
}

// Close marks the adapter closed; later calls return persist.ErrClosed.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true

	return nil
}

// Closed reports whether Close was called.
func (a *Adapter) Closed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.closed
}

// Vertices returns the recorded labels in first-creation order.
func (a *Adapter) Vertices() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]string(nil), a.vertices...)
}

// Edges returns the recorded edges in first-creation order.
func (a *Adapter) Edges() []core.Edge {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]core.Edge(nil), a.edges...)
}

// PathEdges returns the recorded path marks in first-creation order.
func (a *Adapter) PathEdges() [][2]string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([][2]string(nil), a.marks...)
}

// Calls returns every call received, including failed ones, in order.
func (a *Adapter) Calls() []Call {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]Call(nil), a.calls...)
}

// apply records c and, unless closed or failing, runs mutate under the lock.
func (a *Adapter) apply(c Call, mutate func()) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return persist.ErrClosed
	}
	a.calls = append(a.calls, c)
	if f, ok := a.failures[c.Op]; ok {
		if f.skip == 0 {
			return f.err
		}
		f.skip--
		a.failures[c.Op] = f
	}
	mutate()

	return nil
}
