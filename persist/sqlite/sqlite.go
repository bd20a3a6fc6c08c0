// Package sqlite implements persist.Adapter on SQLite through the pure-Go
// modernc.org/sqlite driver.
//
// Schema:
//
//	vertices(label)                              one row per vertex
//	edges(from_label, to_label, weight)          one row per undirected edge,
//	                                             endpoints in lexical order
//	shortest_path_edges(from_label, to_label)    directed path marks
//
// Edges and path marks reference vertices with ON DELETE CASCADE, so an edge
// whose endpoints were never persisted is rejected by the database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/persist"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Statements are the SQLite write statements used by Adapter.
var Statements = persist.Statements{
	CreateVertex: `INSERT INTO vertices (label) VALUES (:label)
		ON CONFLICT(label) DO NOTHING`,
	CreateEdge: `INSERT INTO edges (from_label, to_label, weight)
		VALUES (min(:from, :to), max(:from, :to), :weight)
		ON CONFLICT(from_label, to_label) DO UPDATE SET weight = excluded.weight`,
	MarkPath: `INSERT INTO shortest_path_edges (from_label, to_label) VALUES (:from, :to)
		ON CONFLICT(from_label, to_label) DO NOTHING`,
	Clear: []string{
		`DELETE FROM shortest_path_edges`,
		`DELETE FROM edges`,
		`DELETE FROM vertices`,
	},
}

// Adapter is a persist.Adapter backed by a SQLite database.
type Adapter struct {
	*persist.StatementAdapter
	db *sql.DB
}

var _ persist.Adapter = (*Adapter)(nil)

// Open opens (creating if needed) the SQLite database at dsn and migrates the
// schema. dsn is passed to the driver unchanged; ":memory:" gives a private
// in-memory database. Foreign keys are enabled on every connection through
// the DSN's _pragma parameter.
func Open(ctx context.Context, dsn string) (*Adapter, error) {
	db, err := sql.Open(DriverName, withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: an in-memory database lives and dies with its connection,
	// and SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	a := &Adapter{
		StatementAdapter: persist.NewStatementAdapter(db, Statements, db),
		db:               db,
	}
	if err := a.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return a, nil
}

// withForeignKeys appends _pragma=foreign_keys(1) to dsn unless it already
// sets that pragma.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_pragma=foreign_keys(1)"
}

func (a *Adapter) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS vertices (
		label TEXT PRIMARY KEY,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS edges (
		from_label TEXT NOT NULL,
		to_label TEXT NOT NULL,
		weight REAL NOT NULL CHECK (weight >= 0),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (from_label, to_label),
		FOREIGN KEY (from_label) REFERENCES vertices(label) ON DELETE CASCADE,
		FOREIGN KEY (to_label) REFERENCES vertices(label) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS shortest_path_edges (
		from_label TEXT NOT NULL,
		to_label TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (from_label, to_label),
		FOREIGN KEY (from_label) REFERENCES vertices(label) ON DELETE CASCADE,
		FOREIGN KEY (to_label) REFERENCES vertices(label) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_label);
	`

	_, err := a.db.ExecContext(ctx, schema)
	return err
}

// Vertices returns persisted labels in insertion order.
func (a *Adapter) Vertices(ctx context.Context) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT label FROM vertices ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vertices: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan vertex: %w", err)
		}
		out = append(out, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vertices: %w", err)
	}

	return out, nil
}

// Edges returns persisted edges in insertion order, endpoints in lexical order.
func (a *Adapter) Edges(ctx context.Context) ([]core.Edge, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT from_label, to_label, weight FROM edges ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	var out []core.Edge
	for rows.Next() {
		var e core.Edge
		if err := rows.Scan(&e.From, &e.To, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edges: %w", err)
	}

	return out, nil
}

// PathEdges returns persisted shortest-path marks as [from, to] pairs in insertion order.
func (a *Adapter) PathEdges(ctx context.Context) ([][2]string, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT from_label, to_label FROM shortest_path_edges ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query path edges: %w", err)
	}
	defer rows.Close()

	var out [][2]string
	for rows.Next() {
		var p [2]string
		if err := rows.Scan(&p[0], &p[1]); err != nil {
			return nil, fmt.Errorf("failed to scan path edge: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating path edges: %w", err)
	}

	return out, nil
}
