//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Tests share one migrated PostgreSQL database per test binary and isolate
// themselves by running inside a transaction that is always rolled back:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        store := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database comes from DATABASE_URL or TASKBOARD_TEST_DB_URL. When neither
// is set, a disposable postgres:16 container is started with testcontainers.
package testdb
