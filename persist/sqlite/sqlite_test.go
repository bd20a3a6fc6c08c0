package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/persist"
)

// newTestAdapter opens an in-memory SQLite adapter closed at test end.
func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := Open(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test adapter")
	t.Cleanup(func() {
		a.Close()
	})

	return a
}

func TestAdapter_VerticesAndEdges(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	for _, l := range []string{"A", "B", "C"} {
		require.NoError(t, a.CreateVertex(ctx, l))
	}
	require.NoError(t, a.CreateEdge(ctx, "B", "A", 1))
	require.NoError(t, a.CreateEdge(ctx, "B", "C", 2))

	labels, err := a.Vertices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, labels)

	edges, err := a.Edges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, edges)
}

func TestAdapter_Upserts(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, a.CreateVertex(ctx, "A"))
	require.NoError(t, a.CreateVertex(ctx, "A"))
	require.NoError(t, a.CreateVertex(ctx, "B"))

	// Either orientation addresses the same undirected edge.
	require.NoError(t, a.CreateEdge(ctx, "A", "B", 5))
	require.NoError(t, a.CreateEdge(ctx, "B", "A", 3))

	require.NoError(t, a.MarkShortestPathEdge(ctx, "A", "B"))
	require.NoError(t, a.MarkShortestPathEdge(ctx, "A", "B"))

	labels, err := a.Vertices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels)

	edges, err := a.Edges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "A", To: "B", Weight: 3}}, edges)

	marks, err := a.PathEdges(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"A", "B"}}, marks)
}

func TestAdapter_EdgeRequiresVertices(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()
	require.NoError(t, a.CreateVertex(ctx, "A"))

	assert.Error(t, a.CreateEdge(ctx, "A", "Z", 1), "foreign key must reject unknown endpoint")
	assert.Error(t, a.MarkShortestPathEdge(ctx, "A", "Z"))
}

func TestAdapter_Clear(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, a.CreateVertex(ctx, "A"))
	require.NoError(t, a.CreateVertex(ctx, "B"))
	require.NoError(t, a.CreateEdge(ctx, "A", "B", 1))
	require.NoError(t, a.MarkShortestPathEdge(ctx, "A", "B"))

	require.NoError(t, a.Clear(ctx))

	labels, err := a.Vertices(ctx)
	require.NoError(t, err)
	assert.Empty(t, labels)
	edges, err := a.Edges(ctx)
	require.NoError(t, err)
	assert.Empty(t, edges)
	marks, err := a.PathEdges(ctx)
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestAdapter_FileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "graph.db")

	a, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, a.CreateVertex(ctx, "A"))
	require.NoError(t, a.Close())
	assert.ErrorIs(t, a.CreateVertex(ctx, "B"), persist.ErrClosed)

	b, err := Open(ctx, path)
	require.NoError(t, err)
	defer b.Close()

	labels, err := b.Vertices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, labels)
}

func TestWithForeignKeys(t *testing.T) {
	cases := map[string]string{
		":memory:":                     ":memory:?_pragma=foreign_keys(1)",
		"/tmp/g.db":                    "/tmp/g.db?_pragma=foreign_keys(1)",
		"file:g.db?cache=shared":       "file:g.db?cache=shared&_pragma=foreign_keys(1)",
		"g.db?_pragma=foreign_keys(0)": "g.db?_pragma=foreign_keys(0)",
	}
	for in, want := range cases {
		assert.Equal(t, want, withForeignKeys(in), in)
	}
}

// TestAdapter_ForeignKeysOnEveryConnection: a connection opened after
// migration still enforces foreign keys.
func TestAdapter_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, filepath.Join(t.TempDir(), "graph.db"))
	require.NoError(t, err)
	defer a.Close()

	a.db.SetMaxOpenConns(2)
	first, err := a.db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := a.db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, c := range []*sql.Conn{first, second} {
		var on int
		require.NoError(t, c.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on))
		assert.Equal(t, 1, on)
	}
}
