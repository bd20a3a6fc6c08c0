package persist_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/persist"
)

// execCall records one ExecContext invocation.
type execCall struct {
	query string
	args  []any
}

// recordingExec is an Executor that records calls and optionally fails.
type recordingExec struct {
	calls  []execCall
	failOn string
	err    error
}

func (r *recordingExec) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	r.calls = append(r.calls, execCall{query: query, args: args})
	if query == r.failOn {
		return nil, r.err
	}

	return nil, nil
}

// closeCounter counts Close calls.
type closeCounter struct{ n int }

func (c *closeCounter) Close() error { c.n++; return nil }

var testStatements = persist.Statements{
	CreateVertex: "V",
	CreateEdge:   "E",
	MarkPath:     "P",
	Clear:        []string{"C1", "C2"},
}

func TestStatementAdapter_IssuesNamedParameters(t *testing.T) {
	exec := &recordingExec{}
	a := persist.NewStatementAdapter(exec, testStatements, nil)
	ctx := context.Background()

	require.NoError(t, a.CreateVertex(ctx, "A"))
	require.NoError(t, a.CreateEdge(ctx, "A", "B", 2.5))
	require.NoError(t, a.MarkShortestPathEdge(ctx, "A", "B"))
	require.NoError(t, a.Clear(ctx))

	want := []execCall{
		{query: "V", args: []any{sql.Named("label", "A")}},
		{query: "E", args: []any{sql.Named("from", "A"), sql.Named("to", "B"), sql.Named("weight", 2.5)}},
		{query: "P", args: []any{sql.Named("from", "A"), sql.Named("to", "B")}},
		{query: "C1", args: nil},
		{query: "C2", args: nil},
	}
	assert.Equal(t, want, exec.calls)
}

func TestStatementAdapter_ClearStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	exec := &recordingExec{failOn: "C1", err: boom}
	a := persist.NewStatementAdapter(exec, testStatements, nil)

	err := a.Clear(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, exec.calls, 1)
}

func TestStatementAdapter_CloseOnce(t *testing.T) {
	closer := &closeCounter{}
	a := persist.NewStatementAdapter(&recordingExec{}, testStatements, closer)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, 1, closer.n)

	assert.ErrorIs(t, a.CreateVertex(context.Background(), "A"), persist.ErrClosed)
}

func TestAdapterError(t *testing.T) {
	boom := errors.New("unreachable store")

	assert.NoError(t, persist.Wrap(persist.OpCreateVertex, "A", nil))

	err := persist.Wrap(persist.OpCreateEdge, "A→B", boom)
	var aerr *persist.AdapterError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, persist.OpCreateEdge, aerr.Op)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "persist: create edge A→B: unreachable store", err.Error())

	err = persist.Wrap(persist.OpClear, "", boom)
	assert.Equal(t, "persist: clear: unreachable store", err.Error())
}

func TestNoop(t *testing.T) {
	var a persist.Adapter = persist.Noop{}
	ctx := context.Background()
	assert.NoError(t, a.CreateVertex(ctx, "A"))
	assert.NoError(t, a.CreateEdge(ctx, "A", "B", 1))
	assert.NoError(t, a.MarkShortestPathEdge(ctx, "A", "B"))
	assert.NoError(t, a.Clear(ctx))
	assert.NoError(t, a.Close())
}
