package persist

import (
	"context"
	"database/sql"
	"io"
	"sync"
)

// Executor runs a parameterized write statement. *sql.DB, *sql.Conn and
// *sql.Tx satisfy it. Returned results are never inspected beyond the error.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Statements is the set of write statements a StatementAdapter issues.
//
// Statements receive named parameters:
//
//	CreateVertex: :label
//	CreateEdge:   :from, :to, :weight
//	MarkPath:     :from, :to
//	Clear:        none; executed in order
type Statements struct {
	CreateVertex string
	CreateEdge   string
	MarkPath     string
	Clear        []string
}

// StatementAdapter implements Adapter by issuing Statements through an Executor.
type StatementAdapter struct {
	exec   Executor
	stmts  Statements
	closer io.Closer

	mu     sync.Mutex
	closed bool
}

var _ Adapter = (*StatementAdapter)(nil)

// NewStatementAdapter returns an adapter over exec. closer, if non-nil, is
// closed by Close (typically the *sql.DB behind exec).
func NewStatementAdapter(exec Executor, stmts Statements, closer io.Closer) *StatementAdapter {
	return &StatementAdapter{exec: exec, stmts: stmts, closer: closer}
}

// CreateVertex executes Statements.CreateVertex.
func (a *StatementAdapter) CreateVertex(ctx context.Context, label string) error {
	return a.run(ctx, a.stmts.CreateVertex, sql.Named("label", label))
}

// CreateEdge executes Statements.CreateEdge.
func (a *StatementAdapter) CreateEdge(ctx context.Context, from, to string, weight float64) error {
	return a.run(ctx, a.stmts.CreateEdge,
		sql.Named("from", from), sql.Named("to", to), sql.Named("weight", weight))
}

// MarkShortestPathEdge executes Statements.MarkPath.
func (a *StatementAdapter) MarkShortestPathEdge(ctx context.Context, from, to string) error {
	return a.run(ctx, a.stmts.MarkPath, sql.Named("from", from), sql.Named("to", to))
}

// Clear executes every Statements.Clear entry in order, stopping at the first failure.
func (a *StatementAdapter) Clear(ctx context.Context) error {
	for _, q := range a.stmts.Clear {
		if err := a.run(ctx, q); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the underlying closer once; later calls return nil.
func (a *StatementAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	if a.closer == nil {
		return nil
	}

	return a.closer.Close()
}

func (a *StatementAdapter) run(ctx context.Context, query string, args ...any) error {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return ErrClosed
	}

	_, err := a.exec.ExecContext(ctx, query, args...)
	return err
}
