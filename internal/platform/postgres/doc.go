// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, together with the embedded goose
// migrations that create their schema. Stores accept a store.DBTX so the same
// code runs against a connection pool or inside a caller's transaction.
package postgres
