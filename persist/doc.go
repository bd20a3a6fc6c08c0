// Package persist is the port between pathtrace's in-memory graph and an
// external graph store.
//
// # Adapter
//
// The store issues four kinds of side-effect requests: create vertex, create
// edge, mark shortest-path edge and clear. Adapter captures them together
// with Close, so the connection is acquired once by the owner, injected into
// the store and released on shutdown.
//
// # Implementations
//
//   - Noop: default; persists nothing.
//   - StatementAdapter: issues parameterized write statements through any
//     Executor (*sql.DB, *sql.Tx). The sqlite subpackage provides the schema
//     and statements for SQLite.
//   - memory: records everything in process; used by tests and dry runs.
//   - mocks: gomock mock for call-order assertions.
//
// # Failures
//
// Adapter failures never roll back in-memory state. Callers wrap them with
// Wrap into *AdapterError, which names the operation and unwraps to the
// adapter's own error.
package persist
